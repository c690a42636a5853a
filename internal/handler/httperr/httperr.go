package httperr

import (
	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key the logging middleware stores the request id under.
const RequestIDKey = "request_id"

type Body struct {
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
	Detail any  `json:"detail,omitempty"`
}

// AbortWithError answers with msg and records err on the context, so the error
// middleware can log the cause without it reaching the client.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: AbortWithError called with nil error")
	}

	resp := Response{
		Status: status,
		Error: Body{
			Message:   msg,
			RequestID: c.GetString(RequestIDKey),
		},
		Detail: detail,
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
