package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	contactUC "github.com/zthechelon/portfolio/internal/application/usecase/contact"
	"github.com/zthechelon/portfolio/pkg/apperror"
	"github.com/zthechelon/portfolio/pkg/logger"
)

type ContactHandler struct {
	submitContactUseCase *contactUC.SubmitContactUseCase
	logger               logger.Logger
}

func NewContactHandler(uc *contactUC.SubmitContactUseCase, log logger.Logger) *ContactHandler {
	return &ContactHandler{
		submitContactUseCase: uc,
		logger:               log,
	}
}

// Submit acknowledges without echoing anything back.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid contact submission", err))
		return
	}

	_, err := h.submitContactUseCase.Execute(c.Request.Context(), contactUC.SubmitContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
