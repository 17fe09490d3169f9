package store

import (
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/saadjs/fittrack/internal/model"
)

// AddWeightEntry appends a measurement. Entries for the same date are kept
// side by side, never merged.
func (s *Store) AddWeightEntry(logDate string, weightKg float64) (int64, error) {
	date, err := normalizeDate(logDate)
	if err != nil {
		return 0, err
	}
	if err := validatePositive("weight", weightKg); err != nil {
		return 0, err
	}
	id, err := insertWeight(s.db, date, weightKg)
	if err != nil {
		return 0, err
	}
	s.log.Debug("weight logged", zap.Int64("id", id), zap.String("date", date), zap.Float64("weight_kg", weightKg))
	return id, nil
}

func insertWeight(ex execer, date string, weightKg float64) (int64, error) {
	res, err := ex.Exec(`INSERT INTO weight_log(log_date, weight_kg) VALUES(?, ?)`, date, weightKg)
	if err != nil {
		return 0, fmt.Errorf("add weight entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve weight entry id: %w", err)
	}
	return id, nil
}

// GetWeightEntries returns every entry ordered by date, then insertion.
func (s *Store) GetWeightEntries() ([]model.WeightEntry, error) {
	return s.WeightEntriesBetween("", "")
}

// WeightEntriesBetween filters by an inclusive date range; empty bounds are open.
func (s *Store) WeightEntriesBetween(from, to string) ([]model.WeightEntry, error) {
	from, err := normalizeOptionalDate(from)
	if err != nil {
		return nil, err
	}
	to, err = normalizeOptionalDate(to)
	if err != nil {
		return nil, err
	}

	query := `SELECT id, log_date, weight_kg FROM weight_log WHERE 1=1`
	args := make([]any, 0, 2)
	if from != "" {
		query += ` AND log_date >= ?`
		args = append(args, from)
	}
	if to != "" {
		query += ` AND log_date <= ?`
		args = append(args, to)
	}
	query += ` ORDER BY log_date ASC, id ASC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list weight entries: %w", err)
	}
	defer rows.Close()

	items := make([]model.WeightEntry, 0)
	for rows.Next() {
		var w model.WeightEntry
		if err := rows.Scan(&w.ID, &w.LogDate, &w.WeightKg); err != nil {
			return nil, fmt.Errorf("scan weight entry: %w", err)
		}
		items = append(items, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate weight entries: %w", err)
	}
	return items, nil
}

// LatestWeight returns the most recent entry, or nil when none exist.
func (s *Store) LatestWeight() (*model.WeightEntry, error) {
	var w model.WeightEntry
	err := s.db.QueryRow(`
SELECT id, log_date, weight_kg
FROM weight_log
ORDER BY log_date DESC, id DESC
LIMIT 1
`).Scan(&w.ID, &w.LogDate, &w.WeightKg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest weight entry: %w", err)
	}
	return &w, nil
}
