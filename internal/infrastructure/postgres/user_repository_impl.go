package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/martify/martify/internal/domain/entity"
	"github.com/martify/martify/internal/domain/repository"
)

const userColumns = "id, name, email, password_hash, role, created_at"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row, u *entity.User) error {
	return row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	if u.Role == "" {
		u.Role = entity.RoleUser
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, role, created_at
	`, u.Name, u.Email, u.PasswordHash, u.Role)

	return translateErr(row.Scan(&u.ID, &u.Role, &u.CreatedAt))
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []entity.User{}
	for rows.Next() {
		var u entity.User
		if err := scanUser(rows, &u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u := &entity.User{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id)

	if err := scanUser(row, u); err != nil {
		return nil, translateErr(err)
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u := &entity.User{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1
	`, email)

	if err := scanUser(row, u); err != nil {
		return nil, translateErr(err)
	}
	return u, nil
}

func (r *UserRepository) Patch(ctx context.Context, id int64, p repository.UserPatch) (*entity.User, error) {
	b := &patchBuilder{}
	if p.Name != nil {
		b.Set("name", *p.Name)
	}
	if p.Email != nil {
		b.Set("email", *p.Email)
	}
	if p.PasswordHash != nil {
		b.Set("password_hash", *p.PasswordHash)
	}
	if p.Role != nil {
		b.Set("role", *p.Role)
	}
	if b.Empty() {
		return nil, repository.ErrEmptyPatch
	}

	sql, args := b.SQL("users", userColumns, where{"id", id})
	u := &entity.User{}
	if err := scanUser(r.pool.QueryRow(ctx, sql, args...), u); err != nil {
		return nil, translateErr(err)
	}
	return u, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return translateErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
