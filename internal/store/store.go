// Package store persists the profile, weight history, food catalog and the
// food and exercise diaries in SQLite.
package store

import (
	"database/sql"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/saadjs/fittrack/internal/db"
	"github.com/saadjs/fittrack/internal/model"
)

const dateLayout = "2006-01-02"

// Store owns one long-lived database handle. Every operation runs as a
// single statement (or a single transaction) against it.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

func New(sqldb *sql.DB, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{db: sqldb, log: log.Named("store")}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Initialize creates the schema and seeds the food catalog once. Safe to call
// on every start.
func (s *Store) Initialize() error {
	seeded, err := db.ApplyMigrations(s.db)
	if err != nil {
		return err
	}
	if seeded > 0 {
		s.log.Info("seeded food catalog", zap.Int("foods", seeded))
	}
	return nil
}

func normalizeDate(value string) (string, error) {
	value = strings.TrimSpace(value)
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return "", fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", model.ErrValidation, value)
	}
	return t.Format(dateLayout), nil
}

// normalizeOptionalDate accepts "" as an open range bound.
func normalizeOptionalDate(value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	return normalizeDate(value)
}

func validateFinite(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %s must be a finite number", model.ErrValidation, name)
	}
	return nil
}

func validatePositive(name string, value float64) error {
	if err := validateFinite(name, value); err != nil {
		return err
	}
	if value <= 0 {
		return fmt.Errorf("%w: %s must be > 0", model.ErrValidation, name)
	}
	return nil
}

func validateNonNegative(name string, value float64) error {
	if err := validateFinite(name, value); err != nil {
		return err
	}
	if value < 0 {
		return fmt.Errorf("%w: %s must be >= 0", model.ErrValidation, name)
	}
	return nil
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func nullableString(value string) any {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return value
}
