package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/glossandgo/booking/internal/domain"
	"github.com/glossandgo/booking/internal/service/availability"
)

type SlotHandler struct {
	service availability.AvailabilityUseCase
}

type createSlotRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

func NewSlotHandler(service availability.AvailabilityUseCase) *SlotHandler {
	return &SlotHandler{service: service}
}

// RegisterPublic mounts the customer-facing route: open slots only.
func (h *SlotHandler) RegisterPublic(router *gin.RouterGroup) {
	router.GET("/", h.listOpen)
}

// RegisterAdmin mounts the slot management routes.
func (h *SlotHandler) RegisterAdmin(router *gin.RouterGroup) {
	router.GET("/", h.listAll)
	router.POST("/", h.create)
	router.DELETE("/:id", h.remove)
}

func (h *SlotHandler) listOpen(c *gin.Context) {
	slots, err := h.service.ListOpen(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, slots)
}

func (h *SlotHandler) listAll(c *gin.Context) {
	slots, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, slots)
}

func (h *SlotHandler) create(c *gin.Context) {
	var req createSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slot, err := h.service.Add(c.Request.Context(), req.Date, req.Time)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, slot)
}

func (h *SlotHandler) remove(c *gin.Context) {
	err := h.service.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrSlotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
