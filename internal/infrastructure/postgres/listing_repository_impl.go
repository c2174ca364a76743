package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/martify/martify/internal/domain/entity"
	"github.com/martify/martify/internal/domain/repository"
)

const listingColumns = "id, owner_id, type_id, title, description, location, price, gallery, fields, created_at"

type ListingRepository struct {
	pool *pgxpool.Pool
}

func NewListingRepository(pool *pgxpool.Pool) *ListingRepository {
	return &ListingRepository{pool: pool}
}

func scanListing(row pgx.Row, l *entity.Listing) error {
	var gallery []byte
	if err := row.Scan(&l.ID, &l.OwnerID, &l.TypeID, &l.Title, &l.Description,
		&l.Location, &l.Price, &gallery, &l.Fields, &l.CreatedAt); err != nil {
		return err
	}
	l.Gallery = []string{}
	return json.Unmarshal(gallery, &l.Gallery)
}

func encodeGallery(gallery []string) []byte {
	if gallery == nil {
		gallery = []string{}
	}
	b, _ := json.Marshal(gallery)
	return b
}

func (r *ListingRepository) Create(ctx context.Context, l *entity.Listing) error {
	if l.Fields == nil {
		l.Fields = []byte(`{}`)
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO listings (owner_id, type_id, title, description, location, price, gallery, fields)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, l.OwnerID, l.TypeID, l.Title, l.Description, l.Location, l.Price,
		encodeGallery(l.Gallery), []byte(l.Fields))

	if err := translateErr(row.Scan(&l.ID, &l.CreatedAt)); err != nil {
		return err
	}
	if l.Gallery == nil {
		l.Gallery = []string{}
	}
	return nil
}

func (r *ListingRepository) List(ctx context.Context) ([]entity.Listing, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+listingColumns+`
		FROM listings
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := []entity.Listing{}
	for rows.Next() {
		var l entity.Listing
		if err := scanListing(rows, &l); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

func (r *ListingRepository) GetByID(ctx context.Context, id int64) (*entity.Listing, error) {
	l := &entity.Listing{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+listingColumns+`
		FROM listings
		WHERE id = $1
	`, id)

	if err := scanListing(row, l); err != nil {
		return nil, translateErr(err)
	}
	return l, nil
}

// Patch updates only the supplied fields. When ownerID > 0 the ownership
// condition rides in the same statement as the mutation, so a concurrent
// owner change or delete cannot slip between check and write; the lost race
// reads as not found.
func (r *ListingRepository) Patch(ctx context.Context, id int64, p repository.ListingPatch, ownerID int64) (*entity.Listing, error) {
	b := &patchBuilder{}
	if p.TypeID != nil {
		b.Set("type_id", *p.TypeID)
	}
	if p.Title != nil {
		b.Set("title", *p.Title)
	}
	if p.Description != nil {
		b.Set("description", *p.Description)
	}
	if p.Location != nil {
		b.Set("location", *p.Location)
	}
	if p.Price != nil {
		b.Set("price", *p.Price)
	}
	if p.Gallery != nil {
		b.Set("gallery", encodeGallery(p.Gallery))
	}
	if p.Fields != nil {
		b.Set("fields", []byte(p.Fields))
	}
	if b.Empty() {
		return nil, repository.ErrEmptyPatch
	}

	conds := []where{{"id", id}}
	if ownerID > 0 {
		conds = append(conds, where{"owner_id", ownerID})
	}
	sql, args := b.SQL("listings", listingColumns, conds...)

	l := &entity.Listing{}
	if err := scanListing(r.pool.QueryRow(ctx, sql, args...), l); err != nil {
		return nil, translateErr(err)
	}
	return l, nil
}

func (r *ListingRepository) Delete(ctx context.Context, id int64, ownerID int64) error {
	var (
		res pgconn.CommandTag
		err error
	)
	if ownerID > 0 {
		res, err = r.pool.Exec(ctx, `DELETE FROM listings WHERE id = $1 AND owner_id = $2`, id, ownerID)
	} else {
		res, err = r.pool.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	}
	if err != nil {
		return translateErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ListingRepository = (*ListingRepository)(nil)
