package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/martify/martify/internal/application"
	repo "github.com/martify/martify/internal/domain/repository"
	"github.com/martify/martify/pkg/response"
)

// writeServiceError maps service/repository sentinels to transport statuses.
// Anything unrecognized is logged and reported as a generic 500 so internal
// detail never reaches the caller.
func writeServiceError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, repo.ErrEmptyPatch):
		response.Error(c, http.StatusBadRequest, "at least one field must be provided", nil)
	case errors.Is(err, repo.ErrNotFound):
		response.Error(c, http.StatusNotFound, "not found", nil)
	case errors.Is(err, repo.ErrConflict):
		response.Error(c, http.StatusConflict, "resource conflicts with existing data", nil)
	case errors.Is(err, application.ErrForbidden):
		response.Error(c, http.StatusForbidden, "forbidden", nil)
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "invalid credentials", nil)
	case errors.Is(err, application.ErrGalleryUnavailable):
		response.Error(c, http.StatusServiceUnavailable, "gallery uploads are not available", nil)
	default:
		if logger != nil {
			logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		}
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
	}
}

// idParam parses the :id path segment. A non-numeric id is a 400, written
// here so handlers can bail with a bare return.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "invalid id", nil)
		return 0, false
	}
	return id, true
}

// jsonField collapses a JSON null into an absent value. RawMessage keeps the
// literal bytes "null" when the key is present but null, which would
// otherwise count as a provided field and overwrite stored documents.
func jsonField(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	return raw
}
