package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/martify/martify/internal/domain/entity"
	"github.com/martify/martify/internal/domain/repository"
)

const listingTypeColumns = "id, name, schema, created_at"

type ListingTypeRepository struct {
	pool *pgxpool.Pool
}

func NewListingTypeRepository(pool *pgxpool.Pool) *ListingTypeRepository {
	return &ListingTypeRepository{pool: pool}
}

func scanListingType(row pgx.Row, t *entity.ListingType) error {
	return row.Scan(&t.ID, &t.Name, &t.Schema, &t.CreatedAt)
}

func (r *ListingTypeRepository) Create(ctx context.Context, t *entity.ListingType) error {
	if t.Schema == nil {
		t.Schema = []byte(`{}`)
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO listing_types (name, schema)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, t.Name, []byte(t.Schema))

	return translateErr(row.Scan(&t.ID, &t.CreatedAt))
}

func (r *ListingTypeRepository) List(ctx context.Context) ([]entity.ListingType, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+listingTypeColumns+`
		FROM listing_types
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := []entity.ListingType{}
	for rows.Next() {
		var t entity.ListingType
		if err := scanListingType(rows, &t); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *ListingTypeRepository) GetByID(ctx context.Context, id int64) (*entity.ListingType, error) {
	t := &entity.ListingType{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+listingTypeColumns+`
		FROM listing_types
		WHERE id = $1
	`, id)

	if err := scanListingType(row, t); err != nil {
		return nil, translateErr(err)
	}
	return t, nil
}

func (r *ListingTypeRepository) Patch(ctx context.Context, id int64, p repository.ListingTypePatch) (*entity.ListingType, error) {
	b := &patchBuilder{}
	if p.Name != nil {
		b.Set("name", *p.Name)
	}
	if p.Schema != nil {
		b.Set("schema", []byte(p.Schema))
	}
	if b.Empty() {
		return nil, repository.ErrEmptyPatch
	}

	sql, args := b.SQL("listing_types", listingTypeColumns, where{"id", id})
	t := &entity.ListingType{}
	if err := scanListingType(r.pool.QueryRow(ctx, sql, args...), t); err != nil {
		return nil, translateErr(err)
	}
	return t, nil
}

func (r *ListingTypeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM listing_types WHERE id = $1`, id)
	if err != nil {
		return translateErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ListingTypeRepository = (*ListingTypeRepository)(nil)
