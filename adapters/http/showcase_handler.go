package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	showcaseUC "github.com/zthechelon/portfolio/internal/application/usecase/showcase"
	"github.com/zthechelon/portfolio/pkg/logger"
)

type ShowcaseHandler struct {
	showcaseUseCase *showcaseUC.ShowcaseUseCase
	logger          logger.Logger
}

func NewShowcaseHandler(uc *showcaseUC.ShowcaseUseCase, log logger.Logger) *ShowcaseHandler {
	return &ShowcaseHandler{
		showcaseUseCase: uc,
		logger:          log,
	}
}

func (h *ShowcaseHandler) GetShowcase(c *gin.Context) {
	view := h.showcaseUseCase.Execute(c.Request.Context())
	c.JSON(http.StatusOK, ToShowcaseDTO(view))
}
