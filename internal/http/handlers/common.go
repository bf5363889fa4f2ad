package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"busline/internal/domain"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// parsePagination reads page/limit query parameters. A malformed or
// non-positive page is an error; limit silently falls back to the
// default and is capped.
func parsePagination(c *gin.Context) (page, limit int, err error) {
	page = 1
	if raw := strings.TrimSpace(c.Query("page")); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			return 0, 0, domain.Invalid("page", "must be a positive integer")
		}
	}

	limit = defaultPageLimit
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		if n, convErr := strconv.Atoi(raw); convErr == nil && n >= 1 {
			limit = n
		}
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return page, limit, nil
}

// BindJSONOrError ensures the body is present and parsable into dst.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, domain.Invalid("body", "is required"))
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, domain.ValidationError{Msg: "invalid JSON in request body", Err: err})
		return false
	}
	return true
}
