package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound means the targeted record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate means a unique column rejected the write at commit.
	ErrDuplicate = errors.New("duplicate value for unique column")
	// ErrReferenceNotFound means a foreign key pointed at a missing row.
	ErrReferenceNotFound = errors.New("referenced record not found")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateError maps store-level failures onto the repository error values.
// GORM's driver translation covers both postgres and sqlite; the raw pg error
// codes are kept as a fallback for paths the driver does not translate.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrReferenceNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrDuplicate
		case pgForeignKeyViolation:
			return ErrReferenceNotFound
		}
	}
	return err
}
