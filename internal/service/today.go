package service

import (
	"fmt"

	"github.com/saadjs/fittrack/internal/model"
)

type DayReader interface {
	FoodLogReader
	BodyReader
	GetExerciseLogEntries(logDate string) ([]model.ExerciseLogEntry, error)
}

type DayStatus struct {
	Date          string
	Totals        model.NutrientTotals
	Foods         []model.FoodLogEntry
	Exercises     []model.ExerciseLogEntry
	CardioMinutes float64
	StrengthSets  int
	// Energy is nil until a profile and a weight exist.
	Energy            *Energy
	RemainingCalories float64
}

func DaySummary(r DayReader, date string) (*DayStatus, error) {
	foods, err := r.GetFoodLogEntries(date)
	if err != nil {
		return nil, fmt.Errorf("day summary foods: %w", err)
	}
	exercises, err := r.GetExerciseLogEntries(date)
	if err != nil {
		return nil, fmt.Errorf("day summary exercises: %w", err)
	}

	status := &DayStatus{
		Date:      date,
		Totals:    sumEntries(foods),
		Foods:     foods,
		Exercises: exercises,
	}
	for _, e := range exercises {
		if e.DurationMin != nil {
			status.CardioMinutes += *e.DurationMin
		}
		if e.Sets != nil {
			status.StrengthSets += *e.Sets
		}
	}

	energy, err := EnergyReport(r)
	if err != nil {
		return nil, err
	}
	if energy != nil {
		status.Energy = energy
		status.RemainingCalories = energy.TDEE - status.Totals.Calories
	}
	return status, nil
}
