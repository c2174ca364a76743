package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/martify/martify/internal/domain/repository"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// translateErr maps pgx/Postgres failures onto the repository error taxonomy.
// Unique violations and foreign-key violations both surface as conflicts:
// the former for duplicate email/name, the latter for deleting a row other
// rows still reference (the schema declares ON DELETE RESTRICT).
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation, codeForeignKeyViolation:
			return repository.ErrConflict
		}
	}
	return err
}
