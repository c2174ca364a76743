package application

import (
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/martify/martify/internal/domain/entity"
	repo "github.com/martify/martify/internal/domain/repository"
	"github.com/martify/martify/pkg/helpers"
)

// Caller identifies the authenticated user a mutation runs on behalf of.
type Caller struct {
	ID    int64
	Admin bool
}

// ListingService implements the public listing surface plus owner-or-admin
// mutations. GCS and Elasticsearch are optional; a nil client disables
// gallery uploads and search respectively.
type ListingService struct {
	Listings  repo.ListingRepository
	GCS       *storage.Client
	GCSBucket string
	ES        *elasticsearch.Client
	ESIndex   string
	Logger    *logrus.Logger
}

func NewListingService(listings repo.ListingRepository, gcs *storage.Client, gcsBucket string, es *elasticsearch.Client, esIndex string, logger *logrus.Logger) *ListingService {
	return &ListingService{
		Listings:  listings,
		GCS:       gcs,
		GCSBucket: gcsBucket,
		ES:        es,
		ESIndex:   esIndex,
		Logger:    logger,
	}
}

func (s *ListingService) List(ctx context.Context) ([]entity.Listing, error) {
	return s.Listings.List(ctx)
}

func (s *ListingService) Get(ctx context.Context, id int64) (*entity.Listing, error) {
	return s.Listings.GetByID(ctx, id)
}

type CreateListingInput struct {
	TypeID      int64
	Title       string
	Description string
	Location    string
	Price       float64
	Gallery     []string
	Fields      json.RawMessage
}

// Create inserts a listing owned by the caller. The owner reference never
// changes afterwards.
func (s *ListingService) Create(ctx context.Context, ownerID int64, in CreateListingInput) (*entity.Listing, error) {
	l := &entity.Listing{
		OwnerID:     ownerID,
		TypeID:      in.TypeID,
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Price:       in.Price,
		Gallery:     in.Gallery,
		Fields:      in.Fields,
	}
	if err := s.Listings.Create(ctx, l); err != nil {
		return nil, err
	}
	s.indexListing(ctx, l)
	return l, nil
}

// Update applies an owner-or-admin guarded patch. The existence check runs
// first so a missing listing reads as not found even to strangers; the
// ownership condition then rides inside the UPDATE itself for non-admins.
func (s *ListingService) Update(ctx context.Context, caller Caller, id int64, p repo.ListingPatch) (*entity.Listing, error) {
	if p.Empty() {
		return nil, repo.ErrEmptyPatch
	}
	cur, err := s.Listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.Admin && cur.OwnerID != caller.ID {
		return nil, ErrForbidden
	}
	guard := caller.ID
	if caller.Admin {
		guard = 0
	}
	l, err := s.Listings.Patch(ctx, id, p, guard)
	if err != nil {
		return nil, err
	}
	s.indexListing(ctx, l)
	return l, nil
}

// Delete removes a listing under the same owner-or-admin policy as Update.
func (s *ListingService) Delete(ctx context.Context, caller Caller, id int64) error {
	cur, err := s.Listings.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !caller.Admin && cur.OwnerID != caller.ID {
		return ErrForbidden
	}
	guard := caller.ID
	if caller.Admin {
		guard = 0
	}
	if err := s.Listings.Delete(ctx, id, guard); err != nil {
		return err
	}
	s.deleteListingIndex(ctx, id)
	return nil
}

// AddGalleryImage uploads one media object to GCS and appends its public URL
// to the listing's gallery, preserving order.
func (s *ListingService) AddGalleryImage(ctx context.Context, caller Caller, id int64, r io.Reader, filename, contentType string) (*entity.Listing, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return nil, ErrGalleryUnavailable
	}
	cur, err := s.Listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.Admin && cur.OwnerID != caller.ID {
		return nil, ErrForbidden
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("listings", strconv.FormatInt(id, 10), uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return nil, err
	}

	guard := caller.ID
	if caller.Admin {
		guard = 0
	}
	gallery := append(append([]string{}, cur.Gallery...), url)
	l, err := s.Listings.Patch(ctx, id, repo.ListingPatch{Gallery: gallery}, guard)
	if err != nil {
		return nil, err
	}
	s.indexListing(ctx, l)
	return l, nil
}

// Search performs a multi_match query over title, description, and location.
// Without a configured Elasticsearch client it returns no results.
func (s *ListingService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "description", "location"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

func (s *ListingService) indexListing(ctx context.Context, l *entity.Listing) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":          l.ID,
		"owner_id":    l.OwnerID,
		"type_id":     l.TypeID,
		"title":       l.Title,
		"description": l.Description,
		"location":    l.Location,
		"price":       l.Price,
		"created_at":  l.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{
		Index:      s.ESIndex,
		DocumentID: strconv.FormatInt(l.ID, 10),
		Body:       strings.NewReader(string(b)),
		Refresh:    "false",
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("listing_id", l.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("listing_id", l.ID).Warn("es index response error")
	}
}

func (s *ListingService) deleteListingIndex(ctx context.Context, id int64) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: strconv.FormatInt(id, 10)}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("listing_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}
