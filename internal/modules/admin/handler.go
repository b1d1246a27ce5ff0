package admin

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/admin/login", h.Login)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "password is required")
		return
	}

	token, err := h.service.Login(req.Password)
	if err != nil {
		if err == ErrBadCredentials {
			response.Error(c, http.StatusUnauthorized, "invalid password")
			return
		}
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token})
}
