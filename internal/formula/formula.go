// Package formula derives energy-balance metrics from body measurements.
// Results are never rounded; display precision belongs to the caller.
package formula

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/saadjs/fittrack/internal/model"
)

type BodyMetrics struct {
	WeightKg       float64
	HeightCm       float64
	Age            int
	Gender         model.Gender
	ActivityFactor float64
}

// CalculateBMI returns weight over squared height in meters. Weight is not
// validated.
func CalculateBMI(weightKg, heightCm float64) (float64, error) {
	if !(heightCm > 0) || math.IsInf(heightCm, 1) {
		return 0, fmt.Errorf("%w: height must be > 0", model.ErrValidation)
	}
	heightM := heightCm / 100.0
	return weightKg / (heightM * heightM), nil
}

// CalculateBMR uses the Mifflin-St Jeor equation:
//
//	male:   10W + 6.25H - 5A + 5
//	female: 10W + 6.25H - 5A - 161
func CalculateBMR(m BodyMetrics) float64 {
	base := 10*m.WeightKg + 6.25*m.HeightCm - 5*float64(m.Age)
	if m.Gender == model.GenderMale {
		return base + 5
	}
	return base - 161
}

func CalculateTDEE(bmr, activityFactor float64) (float64, error) {
	if !(activityFactor > 0) || math.IsInf(activityFactor, 1) {
		return 0, fmt.Errorf("%w: activity factor must be > 0", model.ErrValidation)
	}
	return bmr * activityFactor, nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}

type ActivityLevel struct {
	Key    string
	Label  string
	Factor float64
}

var ActivityLevels = []ActivityLevel{
	{Key: "sedentary", Label: "Sedentary (little or no exercise)", Factor: 1.2},
	{Key: "light", Label: "Lightly active (1-3 days/week)", Factor: 1.375},
	{Key: "moderate", Label: "Moderately active (3-5 days/week)", Factor: 1.55},
	{Key: "active", Label: "Very active (6-7 days/week)", Factor: 1.725},
	{Key: "very_active", Label: "Extra active (physical job + exercise)", Factor: 1.9},
}

// ParseActivityFactor accepts a preset key or a positive number.
func ParseActivityFactor(value string) (float64, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return model.DefaultActivityFactor, nil
	}
	for _, level := range ActivityLevels {
		if level.Key == v {
			return level.Factor, nil
		}
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid activity level %q", model.ErrValidation, value)
	}
	if !(f > 0) || math.IsInf(f, 1) {
		return 0, fmt.Errorf("%w: activity factor must be a finite number > 0", model.ErrValidation)
	}
	return f, nil
}

// ActivityLabel returns the preset label matching factor, or "" for custom factors.
func ActivityLabel(factor float64) string {
	for _, level := range ActivityLevels {
		if diff := level.Factor - factor; diff < 1e-6 && diff > -1e-6 {
			return level.Label
		}
	}
	return ""
}
