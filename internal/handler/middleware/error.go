package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"facility-booking/internal/handler/httperr"
	"facility-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const msgInternalServerError = "Internal server error"

// ErrorHandler writes the last public error attached by httperr.AbortWithError.
// Handlers that already wrote a body are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		if resp, ok := lastPublicResponse(c); ok {
			c.JSON(resp.Status, resp)
			return
		}

		// Aborted with a status but no body, e.g. c.AbortWithStatus.
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}

		if len(c.Errors) > 0 {
			c.JSON(http.StatusInternalServerError, internalErrorResponse(c))
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			err := errs.New(fmt.Sprint(r))
			slog.Error("recovered from panic",
				"error", err.Error(),
				"path", c.Request.URL.Path,
				"request_id", GetRequestID(c),
				"stack", errs.ExtractStackLines(err, 20))

			c.AbortWithStatusJSON(http.StatusInternalServerError, internalErrorResponse(c))
		}()
		c.Next()
	}
}

func lastPublicResponse(c *gin.Context) (httperr.Response, bool) {
	for i := len(c.Errors) - 1; i >= 0; i-- {
		e := c.Errors[i]
		if !e.IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := e.Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

func internalErrorResponse(c *gin.Context) httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = msgInternalServerError
	resp.Error.RequestID = GetRequestID(c)
	return resp
}
