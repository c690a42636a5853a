package api

import (
	"log/slog"
	"net/http"

	"facility-booking/internal/handler/httperr"
	"facility-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest = "invalid request"
	msgInvalidID      = "invalid id"
	msgInternal       = "Internal server error"
)

// abortWithUsecaseError maps the error classes to status codes. Persistence
// failures carry an operation message like "could not create reservation"
// and never the driver error; anything unclassified becomes a generic 500.
func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)
	case errs.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.Is(err, errs.ErrConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, err.Error(), nil)
	case errs.Is(err, errs.ErrPersistence):
		logFailure(c, err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, err.Error(), nil)
	default:
		logFailure(c, err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
	}
}

func logFailure(c *gin.Context, err error) {
	slog.Error("request failed",
		"path", c.FullPath(),
		"error", err.Error(),
		"cause", errs.Cause(err),
		"stack", errs.ExtractStackLines(err, 12))
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidID, nil)
		return uuid.Nil, false
	}
	return id, true
}
