package service

import (
	"fmt"
	"strings"

	"github.com/saadjs/fittrack/internal/formula"
	"github.com/saadjs/fittrack/internal/model"
)

type WeightReader interface {
	WeightEntriesBetween(from, to string) ([]model.WeightEntry, error)
}

type BodyReader interface {
	GetProfile() (*model.Profile, error)
	LatestWeight() (*model.WeightEntry, error)
}

type ProfileWriter interface {
	SaveProfileWithWeight(p model.Profile, logDate string, weightKg float64) (int64, error)
}

type WeightPoint struct {
	Date     string  `json:"date"`
	WeightKg float64 `json:"weight_kg"`
}

// WeightSeries returns the logged weights in [from, to] ordered by date.
// Either bound may be empty.
func WeightSeries(r WeightReader, from, to string) ([]WeightPoint, error) {
	entries, err := r.WeightEntriesBetween(from, to)
	if err != nil {
		return nil, fmt.Errorf("weight series: %w", err)
	}
	points := make([]WeightPoint, 0, len(entries))
	for _, e := range entries {
		points = append(points, WeightPoint{Date: e.LogDate, WeightKg: e.WeightKg})
	}
	return points, nil
}

type Metrics struct {
	BMI         float64 `json:"bmi"`
	BMICategory string  `json:"bmi_category"`
	BMR         float64 `json:"bmr"`
	TDEE        float64 `json:"tdee"`
}

// Calculate runs the formula engine over one set of body measurements.
func Calculate(m formula.BodyMetrics) (Metrics, error) {
	bmi, err := formula.CalculateBMI(m.WeightKg, m.HeightCm)
	if err != nil {
		return Metrics{}, err
	}
	bmr := formula.CalculateBMR(m)
	tdee, err := formula.CalculateTDEE(bmr, m.ActivityFactor)
	if err != nil {
		return Metrics{}, err
	}
	return Metrics{
		BMI:         bmi,
		BMICategory: formula.BMICategory(bmi),
		BMR:         bmr,
		TDEE:        tdee,
	}, nil
}

type Energy struct {
	Profile    model.Profile
	WeightKg   float64
	WeightDate string
	Metrics
}

// EnergyReport combines the profile with the most recent weight. It returns
// nil when either is missing.
func EnergyReport(r BodyReader) (*Energy, error) {
	p, err := r.GetProfile()
	if err != nil {
		return nil, fmt.Errorf("energy report: %w", err)
	}
	if p == nil {
		return nil, nil
	}
	w, err := r.LatestWeight()
	if err != nil {
		return nil, fmt.Errorf("energy report: %w", err)
	}
	if w == nil {
		return nil, nil
	}
	metrics, err := Calculate(formula.BodyMetrics{
		WeightKg:       w.WeightKg,
		HeightCm:       p.HeightCm,
		Age:            p.Age,
		Gender:         p.Gender,
		ActivityFactor: p.ActivityFactor,
	})
	if err != nil {
		return nil, err
	}
	return &Energy{Profile: *p, WeightKg: w.WeightKg, WeightDate: w.LogDate, Metrics: metrics}, nil
}

type ProfileInput struct {
	Name     string
	Age      int
	Gender   string
	HeightCm float64
	WeightKg float64
	// ActivityFactor defaults to sedentary when zero.
	ActivityFactor float64
	// Date of the weight entry; today when empty.
	Date string
}

// SaveProfile validates the whole input before writing, then replaces the
// profile and appends the weight to the log in one transaction.
func SaveProfile(w ProfileWriter, in ProfileInput) (model.Profile, error) {
	p, date, err := normalizeProfileInput(in)
	if err != nil {
		return model.Profile{}, err
	}
	if _, err := w.SaveProfileWithWeight(p, date, in.WeightKg); err != nil {
		return model.Profile{}, fmt.Errorf("save profile: %w", err)
	}
	return p, nil
}

func normalizeProfileInput(in ProfileInput) (model.Profile, string, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Profile{}, "", fmt.Errorf("%w: name is required", model.ErrValidation)
	}
	if in.Age <= 0 {
		return model.Profile{}, "", fmt.Errorf("%w: age must be > 0", model.ErrValidation)
	}
	gender, err := model.ParseGender(in.Gender)
	if err != nil {
		return model.Profile{}, "", err
	}
	if err := validatePositive("height", in.HeightCm); err != nil {
		return model.Profile{}, "", err
	}
	if err := validatePositive("weight", in.WeightKg); err != nil {
		return model.Profile{}, "", err
	}
	factor := in.ActivityFactor
	if factor == 0 {
		factor = model.DefaultActivityFactor
	}
	if err := validatePositive("activity factor", factor); err != nil {
		return model.Profile{}, "", err
	}
	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = Today()
	}
	if _, err := parseDate("date", date); err != nil {
		return model.Profile{}, "", err
	}
	return model.Profile{
		Name:           name,
		Age:            in.Age,
		Gender:         gender,
		HeightCm:       in.HeightCm,
		ActivityFactor: factor,
	}, date, nil
}
