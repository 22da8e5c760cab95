package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/megdcosta/frijio/internal/apperr"
)

// respondError translates a service error into the JSON error shape the
// client renders inline next to the triggering form.
func respondError(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		body := gin.H{"error": ae.Message}
		if ae.Kind == apperr.KindValidation && len(ae.Fields) > 0 {
			body["messages"] = ae.Fields
		}
		c.JSON(apperr.HTTPStatus(ae), body)
		return
	}

	if errors.Is(err, context.DeadlineExceeded) {
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Request timed out"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
