package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/pkg/validation"
)

// badRequest answers 400, with field details when there are any
func badRequest(c *gin.Context, message string, details validation.Errors) {
	body := gin.H{"error": message}
	if len(details) > 0 {
		body["details"] = details
	}
	c.JSON(http.StatusBadRequest, body)
}

// bindJSON decodes the body into obj. A body cut off by the size limit gets
// 413; any other decode failure gets 400 with message.
func bindJSON(c *gin.Context, obj interface{}, message string) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Request body too large"})
		return false
	}
	badRequest(c, message, nil)
	return false
}

// respondValidation answers 400 if err carries validation failures and
// reports whether it did
func respondValidation(c *gin.Context, err error, message string) bool {
	fields, ok := validation.As(err)
	if !ok {
		return false
	}
	badRequest(c, message, fields)
	return true
}

// serverError logs err and answers 500 with a generic message
func serverError(c *gin.Context, log logrus.FieldLogger, err error, message string) {
	_ = c.Error(err)

	status := http.StatusInternalServerError
	if errors.Is(err, context.DeadlineExceeded) {
		status = http.StatusGatewayTimeout
	}

	log.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"route":      c.FullPath(),
	}).WithError(err).Error(message)

	c.JSON(status, gin.H{"error": message})
}
