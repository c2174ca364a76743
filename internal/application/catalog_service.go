package application

import (
	"context"
	"encoding/json"

	"github.com/martify/martify/internal/domain/entity"
	repo "github.com/martify/martify/internal/domain/repository"
)

// CatalogService implements the admin-only listing-type schema surface.
type CatalogService struct {
	Types repo.ListingTypeRepository
}

func NewCatalogService(types repo.ListingTypeRepository) *CatalogService {
	return &CatalogService{Types: types}
}

func (s *CatalogService) List(ctx context.Context) ([]entity.ListingType, error) {
	return s.Types.List(ctx)
}

func (s *CatalogService) Get(ctx context.Context, id int64) (*entity.ListingType, error) {
	return s.Types.GetByID(ctx, id)
}

func (s *CatalogService) Create(ctx context.Context, name string, schema json.RawMessage) (*entity.ListingType, error) {
	t := &entity.ListingType{Name: name, Schema: schema}
	if err := s.Types.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *CatalogService) Update(ctx context.Context, id int64, p repo.ListingTypePatch) (*entity.ListingType, error) {
	if p.Empty() {
		return nil, repo.ErrEmptyPatch
	}
	return s.Types.Patch(ctx, id, p)
}

func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	return s.Types.Delete(ctx, id)
}
