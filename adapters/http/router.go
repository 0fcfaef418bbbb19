package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/zthechelon/portfolio/pkg/logger"
)

type Handlers struct {
	Content  *ContentHandler
	Contact  *ContactHandler
	Showcase *ShowcaseHandler
	RSS      *RSSHandler
}

func NewRouter(h Handlers, serviceName string, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(Recovery(log))
	router.Use(otelgin.Middleware(serviceName))
	router.Use(RequestLogger(log))
	router.Use(ErrorMiddleware(log))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		api.GET("/profile", h.Content.GetProfile)
		api.GET("/experiences", h.Content.ListExperiences)
		api.GET("/education", h.Content.ListEducation)
		api.GET("/projects", h.Content.ListProjects)
		api.GET("/projects/rss", h.RSS.GenerateRSS)
		api.GET("/skills", h.Content.ListSkills)
		api.GET("/showcase", h.Showcase.GetShowcase)

		api.POST("/contact", h.Contact.Submit)
	}
	return router
}
