package application

import (
	"context"

	"github.com/martify/martify/internal/domain/entity"
	repo "github.com/martify/martify/internal/domain/repository"
	"github.com/martify/martify/pkg/helpers"
)

// UserService implements the admin-only user management surface.
type UserService struct {
	Users repo.UserRepository
}

func NewUserService(users repo.UserRepository) *UserService {
	return &UserService{Users: users}
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.Users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*entity.User, error) {
	return s.Users.GetByID(ctx, id)
}

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	u := &entity.User{Name: in.Name, Email: in.Email, PasswordHash: hash, Role: role}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *string
}

// Update patches only the supplied fields. The plaintext password, when
// present, is hashed before it reaches the store.
func (s *UserService) Update(ctx context.Context, id int64, in UpdateUserInput) (*entity.User, error) {
	p := repo.UserPatch{Name: in.Name, Email: in.Email, Role: in.Role}
	if in.Password != nil {
		hash, err := helpers.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		p.PasswordHash = &hash
	}
	if p.Empty() {
		return nil, repo.ErrEmptyPatch
	}
	return s.Users.Patch(ctx, id, p)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.Users.Delete(ctx, id)
}
