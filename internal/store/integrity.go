package store

import (
	"fmt"

	"go.uber.org/zap"
)

type IntegrityReport struct {
	ProfileRows         int `json:"profile_rows"`
	CatalogFoods        int `json:"catalog_foods"`
	DanglingFoodRefs    int `json:"dangling_food_refs"`
	InvalidFoodLogRows  int `json:"invalid_food_log_rows"`
	InvalidWeightRows   int `json:"invalid_weight_rows"`
	InvalidExerciseRows int `json:"invalid_exercise_rows"`
	ClearedDanglingRefs int `json:"cleared_dangling_refs,omitempty"`
}

func (r IntegrityReport) HasIssues() bool {
	return r.ProfileRows > 1 || r.DanglingFoodRefs > 0 || r.InvalidFoodLogRows > 0 || r.InvalidWeightRows > 0 || r.InvalidExerciseRows > 0
}

// CheckIntegrity counts rows that break the entity invariants. Databases
// written by this package cannot contain them, but files edited by hand or
// written without foreign keys enabled can. With fix set, food log rows that
// point at a missing catalog food are detached; their logged nutrients stay.
func (s *Store) CheckIntegrity(fix bool) (IntegrityReport, error) {
	report := IntegrityReport{}
	checks := []struct {
		name  string
		query string
		dest  *int
	}{
		{"profile rows", `SELECT COUNT(1) FROM profile`, &report.ProfileRows},
		{"catalog foods", `SELECT COUNT(1) FROM foods`, &report.CatalogFoods},
		{"dangling food refs", `
SELECT COUNT(1) FROM food_log fl
LEFT JOIN foods f ON f.id = fl.food_id
WHERE fl.food_id IS NOT NULL AND f.id IS NULL`, &report.DanglingFoodRefs},
		{"invalid food log rows", `
SELECT COUNT(1) FROM food_log
WHERE calories <= 0 OR carbs_g < 0 OR fat_g < 0 OR protein_g < 0 OR quantity <= 0`, &report.InvalidFoodLogRows},
		{"invalid weight rows", `SELECT COUNT(1) FROM weight_log WHERE weight_kg <= 0`, &report.InvalidWeightRows},
		{"invalid exercise rows", `
SELECT COUNT(1) FROM exercise_log
WHERE NOT (
  (category = 'cardio' AND duration_min IS NOT NULL AND sets IS NULL AND reps_per_set IS NULL) OR
  (category = 'strength' AND duration_min IS NULL AND sets IS NOT NULL AND reps_per_set IS NOT NULL)
)`, &report.InvalidExerciseRows},
	}
	for _, c := range checks {
		if err := s.db.QueryRow(c.query).Scan(c.dest); err != nil {
			return report, fmt.Errorf("doctor %s check: %w", c.name, err)
		}
	}

	if fix && report.DanglingFoodRefs > 0 {
		res, err := s.db.Exec(`
UPDATE food_log SET food_id = NULL
WHERE food_id IS NOT NULL AND food_id NOT IN (SELECT id FROM foods)`)
		if err != nil {
			return report, fmt.Errorf("doctor clear dangling food refs: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return report, fmt.Errorf("read rows affected: %w", err)
		}
		report.ClearedDanglingRefs = int(affected)
		s.log.Info("cleared dangling food references", zap.Int64("rows", affected))
	}
	return report, nil
}
