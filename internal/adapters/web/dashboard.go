package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Home renders the dashboard.
func (h *Handler) Home(c *gin.Context) {
	d, err := h.dashboard.Home(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.render(c, http.StatusOK, "home", h.t(c, "ui.home", nil), d)
}

// Healthz reports liveness.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
