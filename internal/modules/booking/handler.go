package booking

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kikabraids/internal/domain"
	"kikabraids/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes booking submission and the informational
// availability pre-check.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.Create)
	rg.POST("/bookings/check-availability", h.CheckAvailability)
}

// RegisterAdminRoutes exposes booking management and stats; the group must
// carry the admin auth middleware.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.List)
	rg.PUT("/bookings/:id", h.UpdateStatus)
	rg.DELETE("/bookings/:id", h.Delete)
	rg.GET("/stats", h.Stats)
}

func (h *Handler) CheckAvailability(c *gin.Context) {
	var req CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "date and time are required")
		return
	}

	available, err := h.service.CheckAvailability(c.Request.Context(), req.Date, req.Time)
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "invalid date or time")
			return
		}
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	msg := "time slot is available"
	if !available {
		msg = "this time slot is already booked"
	}
	c.JSON(http.StatusOK, AvailabilityResponse{Available: available, Message: msg})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "missing required fields")
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "invalid booking data")
		case ErrSlotTaken:
			response.Error(c, http.StatusBadRequest, "this time slot is already booked")
		default:
			response.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, b)
}

func (h *Handler) List(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "status is required")
		return
	}

	status := domain.BookingStatus(req.Status)
	if err := h.service.UpdateStatus(c.Request.Context(), id, status); err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "unknown status")
		case ErrBadTransition:
			response.Error(c, http.StatusBadRequest, "invalid status transition")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "booking not found")
		default:
			response.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "status": status})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Message(c, http.StatusOK, "booking deleted")
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}
