package store

import (
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/saadjs/fittrack/internal/model"
)

// profileID is the fixed key of the singleton profile row.
const profileID = 1

// UpsertProfile writes the singleton profile in one statement. Field ranges
// are checked by the caller; only the schema constraints apply here.
func (s *Store) UpsertProfile(p model.Profile) error {
	if err := upsertProfile(s.db, p); err != nil {
		return err
	}
	s.log.Debug("profile saved", zap.String("name", p.Name))
	return nil
}

// SaveProfileWithWeight replaces the profile and appends the weight entry in
// one transaction. Either both rows are written or neither is.
func (s *Store) SaveProfileWithWeight(p model.Profile, logDate string, weightKg float64) (int64, error) {
	date, err := normalizeDate(logDate)
	if err != nil {
		return 0, err
	}
	if err := validatePositive("weight", weightKg); err != nil {
		return 0, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin profile tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := upsertProfile(tx, p); err != nil {
		return 0, err
	}
	id, err := insertWeight(tx, date, weightKg)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit profile: %w", err)
	}
	s.log.Debug("profile saved", zap.String("name", p.Name), zap.Int64("weight_id", id))
	return id, nil
}

func upsertProfile(ex execer, p model.Profile) error {
	_, err := ex.Exec(`
INSERT INTO profile(id, name, age, gender, height_cm, activity_factor, updated_at)
VALUES(?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(id) DO UPDATE SET
  name=excluded.name,
  age=excluded.age,
  gender=excluded.gender,
  height_cm=excluded.height_cm,
  activity_factor=excluded.activity_factor,
  updated_at=excluded.updated_at
`, profileID, p.Name, p.Age, string(p.Gender), p.HeightCm, p.ActivityFactor)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

// GetProfile returns nil when no profile has been saved yet.
func (s *Store) GetProfile() (*model.Profile, error) {
	var p model.Profile
	var gender string
	err := s.db.QueryRow(`
SELECT name, age, gender, height_cm, activity_factor
FROM profile
WHERE id = ?
`, profileID).Scan(&p.Name, &p.Age, &gender, &p.HeightCm, &p.ActivityFactor)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	p.Gender = model.Gender(gender)
	return &p, nil
}
