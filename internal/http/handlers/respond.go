package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"busline/internal/domain"
	"busline/internal/http/middleware"
	"busline/internal/utils"
)

// RespondSuccess writes the standard success envelope.
func RespondSuccess(c *gin.Context, status int, message string, data any) {
	c.JSON(status, gin.H{
		"success":    true,
		"message":    message,
		"data":       data,
		"request_id": middleware.GetRequestID(c),
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}

// RespondPage writes a paginated collection envelope.
func RespondPage(c *gin.Context, data any, page utils.PageInfo) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       data,
		"pagination": page,
		"request_id": middleware.GetRequestID(c),
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}

// RespondError maps domain errors onto HTTP statuses and the error
// envelope. Unrecognized errors surface as INTERNAL_ERROR without
// leaking detail.
func RespondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "something went wrong"

	switch {
	case domain.IsValidation(err):
		status = http.StatusBadRequest
		message = err.Error()
	case domain.IsNotFound(err):
		status = http.StatusNotFound
		message = err.Error()
	case domain.IsConflict(err):
		status = http.StatusConflict
		message = err.Error()
	}

	c.JSON(status, gin.H{
		"success":    false,
		"message":    message,
		"error":      gin.H{"code": domain.Code(err)},
		"request_id": middleware.GetRequestID(c),
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}
