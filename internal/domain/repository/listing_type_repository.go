package repository

import (
	"context"
	"encoding/json"

	"github.com/martify/martify/internal/domain/entity"
)

// ListingTypePatch carries the allowlisted mutable fields of a listing type.
type ListingTypePatch struct {
	Name   *string
	Schema json.RawMessage
}

// Empty reports whether the patch would touch no fields.
func (p ListingTypePatch) Empty() bool {
	return p.Name == nil && p.Schema == nil
}

// ListingTypeRepository defines listing-type store operations.
type ListingTypeRepository interface {
	Create(ctx context.Context, t *entity.ListingType) error
	List(ctx context.Context) ([]entity.ListingType, error)
	GetByID(ctx context.Context, id int64) (*entity.ListingType, error)
	Patch(ctx context.Context, id int64, p ListingTypePatch) (*entity.ListingType, error)
	Delete(ctx context.Context, id int64) error
}
