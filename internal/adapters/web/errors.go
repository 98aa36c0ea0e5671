package web

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"venuehub/internal/domain"
)

// statusFor maps a use case error to an HTTP status.
func statusFor(err error) int {
	switch {
	case domain.IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNotGroupOwner):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrSlotTaken):
		return http.StatusConflict
	}
	switch domain.Code(err) {
	case "validation", "invalid_group", "invalid_message":
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// errorKey is the i18n key of the user-facing message for err.
func errorKey(err error) string {
	if code := domain.Code(err); code != "" {
		return "errors." + code
	}
	return "errors.generic"
}

func (h *Handler) errorMessage(c *gin.Context, err error) string {
	return h.t(c, errorKey(err), nil)
}

// writeJSONError answers an API request with {"error": {"code", "message"}}.
func (h *Handler) writeJSONError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logError(c, err)
	}
	code := domain.Code(err)
	if code == "" {
		code = "internal"
	}
	c.AbortWithStatusJSON(status, gin.H{"error": gin.H{
		"code":    code,
		"message": h.errorMessage(c, err),
	}})
}

func logError(c *gin.Context, err error) {
	log.Printf("❌ %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
}
