package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/saadjs/fittrack/internal/model"
)

const searchLimit = 50

type FoodLogInput struct {
	LogDate  string
	MealTime string
	// FoodID optionally points at the catalog food the values came from.
	FoodID   *int64
	Quantity float64
	Calories float64
	CarbsG   float64
	FatG     float64
	ProteinG float64
}

func (s *Store) AddFood(f model.Food) (int64, error) {
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		return 0, fmt.Errorf("%w: food name is required", model.ErrValidation)
	}
	if err := validateNutrients(f.Calories, f.CarbsG, f.FatG, f.ProteinG); err != nil {
		return 0, err
	}
	res, err := s.db.Exec(`
INSERT INTO foods(name, calories, carbs_g, fat_g, protein_g)
VALUES(?, ?, ?, ?, ?)
`, f.Name, f.Calories, f.CarbsG, f.FatG, f.ProteinG)
	if err != nil {
		return 0, fmt.Errorf("add food %q: %w", f.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve food id: %w", err)
	}
	return id, nil
}

// GetFood returns nil when the id is unknown.
func (s *Store) GetFood(id int64) (*model.Food, error) {
	var f model.Food
	err := s.db.QueryRow(`
SELECT id, name, calories, carbs_g, fat_g, protein_g
FROM foods
WHERE id = ?
`, id).Scan(&f.ID, &f.Name, &f.Calories, &f.CarbsG, &f.FatG, &f.ProteinG)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get food %d: %w", id, err)
	}
	return &f, nil
}

func (s *Store) ListFoods() ([]model.Food, error) {
	return s.queryFoods(`SELECT id, name, calories, carbs_g, fat_g, protein_g FROM foods ORDER BY name COLLATE NOCASE ASC, name ASC`)
}

// SearchFoods matches query as a substring of the food name. LIKE folds
// ASCII letters only, so other characters must match exactly.
// At most 50 foods are returned, alphabetically.
func (s *Store) SearchFoods(query string) ([]model.Food, error) {
	pattern := "%" + escapeLike(query) + "%"
	return s.queryFoods(`
SELECT id, name, calories, carbs_g, fat_g, protein_g
FROM foods
WHERE name LIKE ? ESCAPE '\'
ORDER BY name COLLATE NOCASE ASC, name ASC
LIMIT ?
`, pattern, searchLimit)
}

func (s *Store) queryFoods(query string, args ...any) ([]model.Food, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query foods: %w", err)
	}
	defer rows.Close()

	items := make([]model.Food, 0)
	for rows.Next() {
		var f model.Food
		if err := rows.Scan(&f.ID, &f.Name, &f.Calories, &f.CarbsG, &f.FatG, &f.ProteinG); err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		items = append(items, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate foods: %w", err)
	}
	return items, nil
}

// AddFoodLogEntry stores the given nutrient values as logged; they are not
// recomputed from the catalog food. A zero quantity means one serving.
func (s *Store) AddFoodLogEntry(in FoodLogInput) (int64, error) {
	date, err := normalizeDate(in.LogDate)
	if err != nil {
		return 0, err
	}
	if err := validateNutrients(in.Calories, in.CarbsG, in.FatG, in.ProteinG); err != nil {
		return 0, err
	}
	if in.Calories == 0 {
		return 0, fmt.Errorf("%w: calories must be > 0", model.ErrValidation)
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	if err := validatePositive("quantity", in.Quantity); err != nil {
		return 0, err
	}
	meal := strings.ToLower(strings.TrimSpace(in.MealTime))

	res, err := s.db.Exec(`
INSERT INTO food_log(log_date, meal_time, food_id, quantity, calories, carbs_g, fat_g, protein_g)
VALUES(?, ?, ?, ?, ?, ?, ?, ?)
`, date, nullableString(meal), in.FoodID, in.Quantity, in.Calories, in.CarbsG, in.FatG, in.ProteinG)
	if err != nil {
		return 0, fmt.Errorf("add food log entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve food log entry id: %w", err)
	}
	s.log.Debug("food logged", zap.Int64("id", id), zap.String("date", date), zap.Float64("calories", in.Calories))
	return id, nil
}

// GetFoodLogEntries returns the date's entries in insertion order, each with
// the name of its catalog food when it has one.
func (s *Store) GetFoodLogEntries(logDate string) ([]model.FoodLogEntry, error) {
	date, err := normalizeDate(logDate)
	if err != nil {
		return nil, err
	}
	return s.queryFoodLog(`WHERE fl.log_date = ?`, date)
}

// ListFoodLogEntries returns the whole diary ordered by date, then insertion.
func (s *Store) ListFoodLogEntries() ([]model.FoodLogEntry, error) {
	return s.queryFoodLog(``)
}

func (s *Store) queryFoodLog(where string, args ...any) ([]model.FoodLogEntry, error) {
	rows, err := s.db.Query(`
SELECT fl.id, fl.log_date, IFNULL(fl.meal_time, ''), fl.food_id, IFNULL(f.name, ''),
       fl.quantity, fl.calories, fl.carbs_g, fl.fat_g, fl.protein_g
FROM food_log fl
LEFT JOIN foods f ON f.id = fl.food_id
`+where+`
ORDER BY fl.log_date ASC, fl.id ASC
`, args...)
	if err != nil {
		return nil, fmt.Errorf("list food log entries: %w", err)
	}
	defer rows.Close()

	items := make([]model.FoodLogEntry, 0)
	for rows.Next() {
		var e model.FoodLogEntry
		var foodID sql.NullInt64
		if err := rows.Scan(&e.ID, &e.LogDate, &e.MealTime, &foodID, &e.FoodName, &e.Quantity, &e.Calories, &e.CarbsG, &e.FatG, &e.ProteinG); err != nil {
			return nil, fmt.Errorf("scan food log entry: %w", err)
		}
		if foodID.Valid {
			v := foodID.Int64
			e.FoodID = &v
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate food log entries: %w", err)
	}
	return items, nil
}

type DailyTotals struct {
	Date string `json:"date"`
	model.NutrientTotals
}

// DailyFoodTotals sums the diary per date over an inclusive range. Dates
// without entries are omitted.
func (s *Store) DailyFoodTotals(from, to string) ([]DailyTotals, error) {
	from, err := normalizeOptionalDate(from)
	if err != nil {
		return nil, err
	}
	to, err = normalizeOptionalDate(to)
	if err != nil {
		return nil, err
	}

	query := `
SELECT log_date, SUM(calories), SUM(carbs_g), SUM(fat_g), SUM(protein_g)
FROM food_log
WHERE 1=1`
	args := make([]any, 0, 2)
	if from != "" {
		query += ` AND log_date >= ?`
		args = append(args, from)
	}
	if to != "" {
		query += ` AND log_date <= ?`
		args = append(args, to)
	}
	query += `
GROUP BY log_date
ORDER BY log_date ASC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query daily food totals: %w", err)
	}
	defer rows.Close()

	items := make([]DailyTotals, 0)
	for rows.Next() {
		var d DailyTotals
		if err := rows.Scan(&d.Date, &d.Calories, &d.CarbsG, &d.FatG, &d.ProteinG); err != nil {
			return nil, fmt.Errorf("scan daily food totals: %w", err)
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily food totals: %w", err)
	}
	return items, nil
}

func validateNutrients(calories, carbs, fat, protein float64) error {
	if err := validateNonNegative("calories", calories); err != nil {
		return err
	}
	if err := validateNonNegative("carbs", carbs); err != nil {
		return err
	}
	if err := validateNonNegative("fat", fat); err != nil {
		return err
	}
	return validateNonNegative("protein", protein)
}

func escapeLike(value string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(value)
}
