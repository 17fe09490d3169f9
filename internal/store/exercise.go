package store

import (
	"database/sql"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/saadjs/fittrack/internal/model"
)

// ExerciseLogInput carries either DurationMin (cardio) or Sets and
// RepsPerSet (strength). The group not belonging to Category must be nil.
type ExerciseLogInput struct {
	LogDate      string
	ExerciseType string
	Category     model.ExerciseCategory
	DurationMin  *float64
	Sets         *int
	RepsPerSet   *int
	Notes        string
}

func (s *Store) AddExerciseLogEntry(in ExerciseLogInput) (int64, error) {
	normalized, err := normalizeExerciseInput(in)
	if err != nil {
		return 0, err
	}
	res, err := s.db.Exec(`
INSERT INTO exercise_log(log_date, exercise_type, category, duration_min, sets, reps_per_set, notes)
VALUES(?, ?, ?, ?, ?, ?, ?)
`, normalized.LogDate, normalized.ExerciseType, string(normalized.Category), normalized.DurationMin, normalized.Sets, normalized.RepsPerSet, nullableString(normalized.Notes))
	if err != nil {
		return 0, fmt.Errorf("add exercise log entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve exercise log entry id: %w", err)
	}
	s.log.Debug("exercise logged", zap.Int64("id", id), zap.String("date", normalized.LogDate), zap.String("category", string(normalized.Category)))
	return id, nil
}

func (s *Store) GetExerciseLogEntries(logDate string) ([]model.ExerciseLogEntry, error) {
	date, err := normalizeDate(logDate)
	if err != nil {
		return nil, err
	}
	return s.queryExerciseLog(`WHERE log_date = ?`, date)
}

func (s *Store) ListExerciseLogEntries() ([]model.ExerciseLogEntry, error) {
	return s.queryExerciseLog(``)
}

func (s *Store) queryExerciseLog(where string, args ...any) ([]model.ExerciseLogEntry, error) {
	rows, err := s.db.Query(`
SELECT id, log_date, exercise_type, category, duration_min, sets, reps_per_set, IFNULL(notes, '')
FROM exercise_log
`+where+`
ORDER BY log_date ASC, id ASC
`, args...)
	if err != nil {
		return nil, fmt.Errorf("list exercise log entries: %w", err)
	}
	defer rows.Close()

	items := make([]model.ExerciseLogEntry, 0)
	for rows.Next() {
		var e model.ExerciseLogEntry
		var category string
		var duration sql.NullFloat64
		var sets, reps sql.NullInt64
		if err := rows.Scan(&e.ID, &e.LogDate, &e.ExerciseType, &category, &duration, &sets, &reps, &e.Notes); err != nil {
			return nil, fmt.Errorf("scan exercise log entry: %w", err)
		}
		e.Category = model.ExerciseCategory(category)
		if duration.Valid {
			v := duration.Float64
			e.DurationMin = &v
		}
		if sets.Valid {
			v := int(sets.Int64)
			e.Sets = &v
		}
		if reps.Valid {
			v := int(reps.Int64)
			e.RepsPerSet = &v
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercise log entries: %w", err)
	}
	return items, nil
}

func normalizeExerciseInput(in ExerciseLogInput) (ExerciseLogInput, error) {
	date, err := normalizeDate(in.LogDate)
	if err != nil {
		return ExerciseLogInput{}, err
	}
	in.LogDate = date
	in.ExerciseType = strings.TrimSpace(in.ExerciseType)
	if in.ExerciseType == "" {
		return ExerciseLogInput{}, fmt.Errorf("%w: exercise type is required", model.ErrValidation)
	}
	category, err := model.ParseExerciseCategory(string(in.Category))
	if err != nil {
		return ExerciseLogInput{}, err
	}
	in.Category = category

	switch category {
	case model.CategoryCardio:
		if in.DurationMin == nil {
			return ExerciseLogInput{}, fmt.Errorf("%w: duration is required for cardio", model.ErrValidation)
		}
		if err := validatePositive("duration", *in.DurationMin); err != nil {
			return ExerciseLogInput{}, err
		}
		if in.Sets != nil || in.RepsPerSet != nil {
			return ExerciseLogInput{}, fmt.Errorf("%w: sets and reps are only valid for strength", model.ErrValidation)
		}
	case model.CategoryStrength:
		if in.Sets == nil || in.RepsPerSet == nil {
			return ExerciseLogInput{}, fmt.Errorf("%w: sets and reps are required for strength", model.ErrValidation)
		}
		if *in.Sets <= 0 || *in.RepsPerSet <= 0 {
			return ExerciseLogInput{}, fmt.Errorf("%w: sets and reps must be > 0", model.ErrValidation)
		}
		if in.DurationMin != nil {
			return ExerciseLogInput{}, fmt.Errorf("%w: duration is only valid for cardio", model.ErrValidation)
		}
	}
	in.Notes = strings.TrimSpace(in.Notes)
	return in, nil
}
