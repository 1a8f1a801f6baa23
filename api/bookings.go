package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/glossandgo/booking/internal/domain"
	"github.com/glossandgo/booking/internal/service/booking"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	VehicleType string `json:"vehicle_type"`
	Service     string `json:"service"`
	SlotID      string `json:"slot_id"`
	Notes       string `json:"notes"`
}

type createBookingResponse struct {
	Booking            *domain.Booking `json:"booking"`
	NotificationQueued bool            `json:"notification_queued"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterPublic mounts the customer-facing route: booking submission.
func (h *BookingHandler) RegisterPublic(router *gin.RouterGroup) {
	router.POST("/", h.create)
}

// RegisterAdmin mounts the booking management routes.
func (h *BookingHandler) RegisterAdmin(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.PUT("/:id/status", h.updateStatus)
	router.DELETE("/:id", h.remove)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Submit(c.Request.Context(), booking.SubmitInput{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		VehicleType: req.VehicleType,
		Service:     req.Service,
		SlotID:      req.SlotID,
		Notes:       req.Notes,
	})
	if err != nil {
		if errors.Is(err, domain.ErrSlotUnavailable) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, createBookingResponse{
		Booking:            result.Booking,
		NotificationQueued: result.NotificationQueued,
	})
}

func (h *BookingHandler) list(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) updateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), domain.BookingStatus(req.Status))
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) remove(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
