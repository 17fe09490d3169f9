package service

import (
	"fmt"
	"strings"

	"github.com/saadjs/fittrack/internal/model"
	"github.com/saadjs/fittrack/internal/store"
)

// maxSeriesDays bounds one nutrient series to roughly five years.
const maxSeriesDays = 5 * 366

type FoodLogReader interface {
	GetFoodLogEntries(logDate string) ([]model.FoodLogEntry, error)
}

type DailyTotalsReader interface {
	DailyFoodTotals(from, to string) ([]store.DailyTotals, error)
}

// DailyNutrientTotals sums the date's food log. A date without entries yields
// all-zero totals.
func DailyNutrientTotals(r FoodLogReader, date string) (model.NutrientTotals, error) {
	entries, err := r.GetFoodLogEntries(date)
	if err != nil {
		return model.NutrientTotals{}, fmt.Errorf("daily nutrient totals: %w", err)
	}
	return sumEntries(entries), nil
}

func sumEntries(entries []model.FoodLogEntry) model.NutrientTotals {
	var totals model.NutrientTotals
	for _, e := range entries {
		totals.Add(e.Calories, e.CarbsG, e.FatG, e.ProteinG)
	}
	return totals
}

// NutrientSeries returns one point per calendar day in [from, to], with zero
// totals for days that have no food log entries.
func NutrientSeries(r DailyTotalsReader, from, to string) ([]store.DailyTotals, error) {
	start, err := parseDate("from date", from)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("to date", to)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: to date must be on or after from date", model.ErrValidation)
	}
	span := int(end.Sub(start).Hours()/24) + 1
	if span > maxSeriesDays {
		return nil, fmt.Errorf("%w: range spans %d days, at most %d allowed", model.ErrValidation, span, maxSeriesDays)
	}

	days, err := r.DailyFoodTotals(start.Format(dateLayout), end.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("nutrient series: %w", err)
	}
	byDate := make(map[string]model.NutrientTotals, len(days))
	for _, d := range days {
		byDate[d.Date] = d.NutrientTotals
	}

	series := make([]store.DailyTotals, 0, span)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(dateLayout)
		series = append(series, store.DailyTotals{Date: key, NutrientTotals: byDate[key]})
	}
	return series, nil
}

// ScaleFood builds a diary entry for quantity servings of a catalog food.
// Callers may override any nutrient before logging it.
func ScaleFood(f model.Food, quantity float64, logDate, mealTime string) (store.FoodLogInput, error) {
	if quantity == 0 {
		quantity = 1
	}
	if err := validatePositive("quantity", quantity); err != nil {
		return store.FoodLogInput{}, err
	}
	id := f.ID
	return store.FoodLogInput{
		LogDate:  logDate,
		MealTime: strings.TrimSpace(mealTime),
		FoodID:   &id,
		Quantity: quantity,
		Calories: f.Calories * quantity,
		CarbsG:   f.CarbsG * quantity,
		FatG:     f.FatG * quantity,
		ProteinG: f.ProteinG * quantity,
	}, nil
}
