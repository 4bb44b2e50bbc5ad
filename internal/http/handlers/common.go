package handlers

import (
	"net/http"

	"tripplanner/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondError(c, http.StatusBadRequest, "empty_body", "body kosong", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "payload tidak valid", nil)
		return false
	}
	return true
}

func mustSession(c *gin.Context) bool {
	if middleware.GetSession(c) == nil {
		respondError(c, http.StatusInternalServerError, "session_unavailable", "session tidak tersedia", nil)
		return false
	}
	return true
}
