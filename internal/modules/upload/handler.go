package upload

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kikabraids/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterAdminRoutes exposes image upload; the group must carry the admin
// auth middleware.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload", h.Upload)
}

func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "no image provided")
		return
	}

	url, err := h.service.Save(fileHeader)
	if err != nil {
		switch err {
		case ErrEmptyFile, ErrInvalidType:
			response.Error(c, http.StatusBadRequest, err.Error())
		case ErrFileTooLarge:
			response.Error(c, http.StatusRequestEntityTooLarge, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": url})
}
