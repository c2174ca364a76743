package repository

import (
	"context"

	"github.com/martify/martify/internal/domain/entity"
)

// UserPatch carries the allowlisted mutable fields of a user. Nil fields are
// left untouched in storage.
type UserPatch struct {
	Name         *string
	Email        *string
	PasswordHash *string
	Role         *string
}

// Empty reports whether the patch would touch no fields.
func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.PasswordHash == nil && p.Role == nil
}

// UserRepository defines user store operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	List(ctx context.Context) ([]entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Patch(ctx context.Context, id int64, p UserPatch) (*entity.User, error)
	Delete(ctx context.Context, id int64) error
}
