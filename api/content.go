package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/glossandgo/booking/internal/domain"
	"github.com/glossandgo/booking/internal/service/content"
)

type ContentHandler struct {
	service content.ContentUseCase
}

func NewContentHandler(service content.ContentUseCase) *ContentHandler {
	return &ContentHandler{service: service}
}

func (h *ContentHandler) RegisterPublic(router *gin.RouterGroup) {
	router.GET("/", h.load)
}

func (h *ContentHandler) RegisterAdmin(router *gin.RouterGroup) {
	router.PUT("/", h.save)
}

func (h *ContentHandler) load(c *gin.Context) {
	siteContent, err := h.service.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, siteContent)
}

func (h *ContentHandler) save(c *gin.Context) {
	var req domain.SiteContent
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Save(c.Request.Context(), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, req)
}
