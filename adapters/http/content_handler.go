package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	contentUC "github.com/zthechelon/portfolio/internal/application/usecase/content"
	"github.com/zthechelon/portfolio/pkg/logger"
)

// ContentHandler serves the read-only collections.
type ContentHandler struct {
	contentUseCase *contentUC.ContentUseCase
	logger         logger.Logger
}

func NewContentHandler(uc *contentUC.ContentUseCase, log logger.Logger) *ContentHandler {
	return &ContentHandler{
		contentUseCase: uc,
		logger:         log,
	}
}

// GetProfile responds with {} when no profile is stored.
func (h *ContentHandler) GetProfile(c *gin.Context) {
	output, err := h.contentUseCase.ExecuteGetProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	if output.Profile == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ContentHandler) ListExperiences(c *gin.Context) {
	items, err := h.contentUseCase.ExecuteListExperiences(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToExperienceDTOs(items))
}

func (h *ContentHandler) ListEducation(c *gin.Context) {
	items, err := h.contentUseCase.ExecuteListEducation(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToEducationDTOs(items))
}

func (h *ContentHandler) ListProjects(c *gin.Context) {
	items, err := h.contentUseCase.ExecuteListProjects(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProjectDTOs(items))
}

func (h *ContentHandler) ListSkills(c *gin.Context) {
	items, err := h.contentUseCase.ExecuteListSkills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSkillDTOs(items))
}
