package repository

import (
	"context"
	"encoding/json"

	"github.com/martify/martify/internal/domain/entity"
)

// ListingPatch carries the allowlisted mutable fields of a listing. The owner
// reference is deliberately absent: listings are never reassigned.
type ListingPatch struct {
	TypeID      *int64
	Title       *string
	Description *string
	Location    *string
	Price       *float64
	Gallery     []string
	Fields      json.RawMessage
}

// Empty reports whether the patch would touch no fields.
func (p ListingPatch) Empty() bool {
	return p.TypeID == nil && p.Title == nil && p.Description == nil &&
		p.Location == nil && p.Price == nil && p.Gallery == nil && p.Fields == nil
}

// ListingRepository defines listing store operations. Patch and Delete accept
// an optional owner guard: when ownerID > 0 the statement only matches rows
// owned by that user, so the ownership condition is enforced in the same
// statement as the mutation.
type ListingRepository interface {
	Create(ctx context.Context, l *entity.Listing) error
	List(ctx context.Context) ([]entity.Listing, error)
	GetByID(ctx context.Context, id int64) (*entity.Listing, error)
	Patch(ctx context.Context, id int64, p ListingPatch, ownerID int64) (*entity.Listing, error)
	Delete(ctx context.Context, id int64, ownerID int64) error
}
