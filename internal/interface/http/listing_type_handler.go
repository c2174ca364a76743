package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/martify/martify/internal/application"
	repo "github.com/martify/martify/internal/domain/repository"
	"github.com/martify/martify/pkg/response"
	"github.com/martify/martify/pkg/validation"
)

// ListingTypeHandler exposes the admin-only listing-type schema endpoints.
type ListingTypeHandler struct {
	Svc    *application.CatalogService
	Logger *logrus.Logger
}

func NewListingTypeHandler(svc *application.CatalogService, logger *logrus.Logger) *ListingTypeHandler {
	return &ListingTypeHandler{Svc: svc, Logger: logger}
}

type createListingTypeRequest struct {
	Name   string          `json:"name" binding:"required"`
	Schema json.RawMessage `json:"schema"`
}

type updateListingTypeRequest struct {
	Name   *string         `json:"name"`
	Schema json.RawMessage `json:"schema"`
}

func (h *ListingTypeHandler) List(c *gin.Context) {
	types, err := h.Svc.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, types, "listing types")
}

func (h *ListingTypeHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	t, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, t, "listing type")
}

func (h *ListingTypeHandler) Create(c *gin.Context) {
	var req createListingTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	t, err := h.Svc.Create(c.Request.Context(), req.Name, jsonField(req.Schema))
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, t, "listing type created")
}

func (h *ListingTypeHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req updateListingTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	t, err := h.Svc.Update(c.Request.Context(), id, repo.ListingTypePatch{
		Name:   req.Name,
		Schema: jsonField(req.Schema),
	})
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, t, "listing type updated")
}

func (h *ListingTypeHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
