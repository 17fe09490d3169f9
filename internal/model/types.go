package model

import (
	"fmt"
	"strings"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func ParseGender(value string) (Gender, error) {
	switch Gender(strings.ToLower(strings.TrimSpace(value))) {
	case GenderMale:
		return GenderMale, nil
	case GenderFemale:
		return GenderFemale, nil
	default:
		return "", fmt.Errorf("%w: invalid gender %q (use male or female)", ErrValidation, value)
	}
}

type ExerciseCategory string

const (
	CategoryCardio   ExerciseCategory = "cardio"
	CategoryStrength ExerciseCategory = "strength"
)

func ParseExerciseCategory(value string) (ExerciseCategory, error) {
	switch ExerciseCategory(strings.ToLower(strings.TrimSpace(value))) {
	case CategoryCardio:
		return CategoryCardio, nil
	case CategoryStrength:
		return CategoryStrength, nil
	default:
		return "", fmt.Errorf("%w: invalid exercise category %q (use cardio or strength)", ErrValidation, value)
	}
}

// Meal times offered by the diary. Any other non-empty label is stored as given.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

const DefaultActivityFactor = 1.2

type Profile struct {
	Name           string
	Age            int
	Gender         Gender
	HeightCm       float64
	ActivityFactor float64
}

type WeightEntry struct {
	ID       int64
	LogDate  string
	WeightKg float64
}

type Food struct {
	ID       int64
	Name     string
	Calories float64
	CarbsG   float64
	FatG     float64
	ProteinG float64
}

type FoodLogEntry struct {
	ID       int64
	LogDate  string
	MealTime string
	FoodID   *int64
	FoodName string
	Quantity float64
	Calories float64
	CarbsG   float64
	FatG     float64
	ProteinG float64
}

type ExerciseLogEntry struct {
	ID           int64
	LogDate      string
	ExerciseType string
	Category     ExerciseCategory
	DurationMin  *float64
	Sets         *int
	RepsPerSet   *int
	Notes        string
}

type NutrientTotals struct {
	Calories float64 `json:"calories"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	ProteinG float64 `json:"protein_g"`
}

func (t *NutrientTotals) Add(calories, carbs, fat, protein float64) {
	t.Calories += calories
	t.CarbsG += carbs
	t.FatG += fat
	t.ProteinG += protein
}
