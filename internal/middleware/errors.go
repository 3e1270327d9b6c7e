package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/twliao/finwatch/internal/domain/dto"
	"github.com/twliao/finwatch/internal/logger"
)

// ErrorHandler translates errors attached to the Gin context during
// request handling into the uniform JSON error envelope.
//
// Handlers that call c.Error(err) without writing a response get a 500
// with the error's message as detail. Handlers that already wrote a
// response are left alone.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error(), nil))
}

// AbortWithError logs the failure with its request ID, attaches the
// error to the context, and writes the standardized error envelope with
// the given status.
//
// This is the single exit path for abort-level failures, so no internal
// error type ever leaks past the handler boundary.
func AbortWithError(c *gin.Context, status int, detail string, err error) {
	rid, _ := c.Get(RequestIDKey)
	logger.L().Error().
		Err(err).
		Str("request_id", toString(rid)).
		Str("path", c.Request.URL.Path).
		Int("status", status).
		Msg("request aborted")

	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail, nil))
}
