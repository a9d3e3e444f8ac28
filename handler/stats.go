package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getStats serves the entity counts shown on the admin dashboard.
func (h *Handler) getStats(c *gin.Context) {
	stats, err := h.store.GetStats(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to load statistics")
		return
	}
	ok(c, stats)
}
