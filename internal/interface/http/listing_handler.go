package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/martify/martify/internal/application"
	repo "github.com/martify/martify/internal/domain/repository"
	"github.com/martify/martify/internal/interface/middleware"
	"github.com/martify/martify/pkg/response"
	"github.com/martify/martify/pkg/validation"
)

// ListingHandler exposes the listing endpoints: public reads and search,
// authenticated create, owner-or-admin mutations.
type ListingHandler struct {
	Svc    *application.ListingService
	Logger *logrus.Logger
}

func NewListingHandler(svc *application.ListingService, logger *logrus.Logger) *ListingHandler {
	return &ListingHandler{Svc: svc, Logger: logger}
}

type createListingRequest struct {
	TypeID      int64           `json:"type_id" binding:"required,gt=0"`
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	Price       float64         `json:"price" binding:"omitempty,gte=0"`
	Gallery     []string        `json:"gallery" binding:"omitempty,dive,url"`
	Fields      json.RawMessage `json:"fields"`
}

type updateListingRequest struct {
	TypeID      *int64          `json:"type_id" binding:"omitempty,gt=0"`
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Location    *string         `json:"location"`
	Price       *float64        `json:"price" binding:"omitempty,gte=0"`
	Gallery     []string        `json:"gallery" binding:"omitempty,dive,url"`
	Fields      json.RawMessage `json:"fields"`
}

func caller(c *gin.Context) application.Caller {
	return application.Caller{ID: middleware.UserID(c), Admin: middleware.IsAdmin(c)}
}

func (h *ListingHandler) List(c *gin.Context) {
	listings, err := h.Svc.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, listings, "listings")
}

func (h *ListingHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	l, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, l, "listing")
}

func (h *ListingHandler) Create(c *gin.Context) {
	var req createListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	l, err := h.Svc.Create(c.Request.Context(), middleware.UserID(c), application.CreateListingInput{
		TypeID:      req.TypeID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Price:       req.Price,
		Gallery:     req.Gallery,
		Fields:      jsonField(req.Fields),
	})
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, l, "listing created")
}

func (h *ListingHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req updateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	l, err := h.Svc.Update(c.Request.Context(), caller(c), id, repo.ListingPatch{
		TypeID:      req.TypeID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Price:       req.Price,
		Gallery:     req.Gallery,
		Fields:      jsonField(req.Fields),
	})
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, l, "listing updated")
}

func (h *ListingHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), caller(c), id); err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadGalleryImage accepts a multipart "image" file and appends it to the
// listing's gallery.
func (h *ListingHandler) UploadGalleryImage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	fh, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "image file is required", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	defer func() { _ = f.Close() }()

	l, err := h.Svc.AddGalleryImage(c.Request.Context(), caller(c), id, f,
		fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, l, "gallery updated")
}

func (h *ListingHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error(c, http.StatusBadRequest, "query parameter q is required", nil)
		return
	}
	hits, err := h.Svc.Search(c.Request.Context(), q, 10)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results")
}
