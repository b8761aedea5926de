package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/harentsoaR/tutormatch-api/internal/models"
	"github.com/harentsoaR/tutormatch-api/internal/store"
)

// GetCategories lists every category.
func (h *Handler) GetCategories(c *gin.Context) {
	categories := make([]models.Category, 0)
	if err := h.Store.Find(c.Request.Context(), store.Categories, bson.M{}, &categories); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// Health reports whether the document store answers.
func (h *Handler) Health(c *gin.Context) {
	if err := h.Store.Ping(c.Request.Context()); err != nil {
		h.log(c).Error("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
}
