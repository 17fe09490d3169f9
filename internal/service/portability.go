package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/saadjs/fittrack/internal/model"
)

type ExportSource interface {
	GetProfile() (*model.Profile, error)
	GetWeightEntries() ([]model.WeightEntry, error)
	ListFoods() ([]model.Food, error)
	ListFoodLogEntries() ([]model.FoodLogEntry, error)
	ListExerciseLogEntries() ([]model.ExerciseLogEntry, error)
}

type ExportProfile struct {
	Name           string  `json:"name"`
	Age            int     `json:"age"`
	Gender         string  `json:"gender"`
	HeightCm       float64 `json:"height_cm"`
	ActivityFactor float64 `json:"activity_factor"`
}

type ExportFood struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	ProteinG float64 `json:"protein_g"`
}

type ExportFoodLogEntry struct {
	LogDate  string  `json:"log_date"`
	MealTime string  `json:"meal_time,omitempty"`
	FoodName string  `json:"food_name,omitempty"`
	Quantity float64 `json:"quantity"`
	Calories float64 `json:"calories"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	ProteinG float64 `json:"protein_g"`
}

type ExportExerciseLogEntry struct {
	LogDate      string   `json:"log_date"`
	ExerciseType string   `json:"exercise_type"`
	Category     string   `json:"category"`
	DurationMin  *float64 `json:"duration_min,omitempty"`
	Sets         *int     `json:"sets,omitempty"`
	RepsPerSet   *int     `json:"reps_per_set,omitempty"`
	Notes        string   `json:"notes,omitempty"`
}

type ExportData struct {
	ExportID    string                   `json:"export_id"`
	ExportedAt  string                   `json:"exported_at"`
	Profile     *ExportProfile           `json:"profile"`
	Weights     []WeightPoint            `json:"weights"`
	Foods       []ExportFood             `json:"foods"`
	FoodLog     []ExportFoodLogEntry     `json:"food_log"`
	ExerciseLog []ExportExerciseLogEntry `json:"exercise_log"`
}

// Export snapshots every table into a JSON-serializable document.
func Export(src ExportSource) (*ExportData, error) {
	out := &ExportData{
		ExportID:   uuid.NewString(),
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
	}

	p, err := src.GetProfile()
	if err != nil {
		return nil, fmt.Errorf("export profile: %w", err)
	}
	if p != nil {
		out.Profile = &ExportProfile{
			Name:           p.Name,
			Age:            p.Age,
			Gender:         string(p.Gender),
			HeightCm:       p.HeightCm,
			ActivityFactor: p.ActivityFactor,
		}
	}

	weights, err := src.GetWeightEntries()
	if err != nil {
		return nil, fmt.Errorf("export weights: %w", err)
	}
	out.Weights = make([]WeightPoint, 0, len(weights))
	for _, w := range weights {
		out.Weights = append(out.Weights, WeightPoint{Date: w.LogDate, WeightKg: w.WeightKg})
	}

	foods, err := src.ListFoods()
	if err != nil {
		return nil, fmt.Errorf("export foods: %w", err)
	}
	out.Foods = make([]ExportFood, 0, len(foods))
	for _, f := range foods {
		out.Foods = append(out.Foods, ExportFood{Name: f.Name, Calories: f.Calories, CarbsG: f.CarbsG, FatG: f.FatG, ProteinG: f.ProteinG})
	}

	entries, err := src.ListFoodLogEntries()
	if err != nil {
		return nil, fmt.Errorf("export food log: %w", err)
	}
	out.FoodLog = make([]ExportFoodLogEntry, 0, len(entries))
	for _, e := range entries {
		out.FoodLog = append(out.FoodLog, ExportFoodLogEntry{
			LogDate:  e.LogDate,
			MealTime: e.MealTime,
			FoodName: e.FoodName,
			Quantity: e.Quantity,
			Calories: e.Calories,
			CarbsG:   e.CarbsG,
			FatG:     e.FatG,
			ProteinG: e.ProteinG,
		})
	}

	exercises, err := src.ListExerciseLogEntries()
	if err != nil {
		return nil, fmt.Errorf("export exercise log: %w", err)
	}
	out.ExerciseLog = make([]ExportExerciseLogEntry, 0, len(exercises))
	for _, e := range exercises {
		out.ExerciseLog = append(out.ExerciseLog, ExportExerciseLogEntry{
			LogDate:      e.LogDate,
			ExerciseType: e.ExerciseType,
			Category:     string(e.Category),
			DurationMin:  e.DurationMin,
			Sets:         e.Sets,
			RepsPerSet:   e.RepsPerSet,
			Notes:        e.Notes,
		})
	}
	return out, nil
}

// WriteFoodLogCSV writes the exported food log with a header row.
func WriteFoodLogCSV(w io.Writer, entries []ExportFoodLogEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"log_date", "meal_time", "food_name", "quantity", "calories", "carbs_g", "fat_g", "protein_g"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range entries {
		rec := []string{
			e.LogDate,
			e.MealTime,
			e.FoodName,
			formatFloat(e.Quantity),
			formatFloat(e.Calories),
			formatFloat(e.CarbsG),
			formatFloat(e.FatG),
			formatFloat(e.ProteinG),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
