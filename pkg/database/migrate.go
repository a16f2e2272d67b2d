package database

import (
	"errors"
	"strings"

	"notes-be/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgForeignKeyViolation = "23503"

// AutoMigrate creates or updates the four tables of the system. Order
// matters: referenced tables first so foreign keys resolve.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Note{},
		&model.Tag{},
		&model.NoteTag{},
	)
}

// IsForeignKeyViolation classifies a store error as a broken reference,
// e.g. attaching a tag id that does not exist. The string fallback covers
// the sqlite driver used in tests.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint")
}
