package formula_test

import (
	"errors"
	"math"
	"testing"

	"github.com/saadjs/fittrack/internal/formula"
	"github.com/saadjs/fittrack/internal/model"
)

func TestCalculateBMI(t *testing.T) {
	t.Parallel()

	cases := []struct {
		weight, height float64
	}{
		{70, 175},
		{55.5, 162},
		{120, 190.5},
	}
	for _, tc := range cases {
		got, err := formula.CalculateBMI(tc.weight, tc.height)
		if err != nil {
			t.Fatalf("bmi(%v, %v): %v", tc.weight, tc.height, err)
		}
		want := tc.weight / math.Pow(tc.height/100, 2)
		if math.Abs(got-want) > 1e-12 {
			t.Fatalf("bmi(%v, %v) = %v, want %v", tc.weight, tc.height, got, want)
		}
	}
}

func TestCalculateBMIRejectsNonPositiveHeight(t *testing.T) {
	t.Parallel()

	for _, h := range []float64{0, -10, math.NaN(), math.Inf(1)} {
		if _, err := formula.CalculateBMI(70, h); !errors.Is(err, model.ErrValidation) {
			t.Fatalf("expected validation error for height %v, got %v", h, err)
		}
	}
}

func TestCalculateBMIDoesNotValidateWeight(t *testing.T) {
	t.Parallel()

	got, err := formula.CalculateBMI(-10, 100)
	if err != nil {
		t.Fatalf("expected no error for negative weight, got %v", err)
	}
	if got != -10 {
		t.Fatalf("expected -10, got %v", got)
	}
}

func TestCalculateBMR(t *testing.T) {
	t.Parallel()

	m := formula.BodyMetrics{WeightKg: 70, HeightCm: 175, Age: 25, Gender: model.GenderMale}
	if got := formula.CalculateBMR(m); got != 1673.75 {
		t.Fatalf("male bmr = %v, want 1673.75", got)
	}
	m.Gender = model.GenderFemale
	if got := formula.CalculateBMR(m); got != 1507.75 {
		t.Fatalf("female bmr = %v, want 1507.75", got)
	}
}

func TestCalculateTDEE(t *testing.T) {
	t.Parallel()

	got, err := formula.CalculateTDEE(1673.75, 1.55)
	if err != nil {
		t.Fatalf("tdee: %v", err)
	}
	if math.Abs(got-2594.3125) > 1e-9 {
		t.Fatalf("tdee = %v, want 2594.3125", got)
	}
	for _, f := range []float64{0, -1.2, math.NaN(), math.Inf(1)} {
		if _, err := formula.CalculateTDEE(1673.75, f); !errors.Is(err, model.ErrValidation) {
			t.Fatalf("expected validation error for factor %v, got %v", f, err)
		}
	}
}

func TestBMICategory(t *testing.T) {
	t.Parallel()

	cases := map[float64]string{
		17.9: "Underweight",
		18.5: "Normal weight",
		24.9: "Normal weight",
		27:   "Overweight",
		32:   "Obesity class I",
		37:   "Obesity class II",
		45:   "Obesity class III",
	}
	for bmi, want := range cases {
		if got := formula.BMICategory(bmi); got != want {
			t.Fatalf("category(%v) = %q, want %q", bmi, got, want)
		}
	}
}

func TestParseActivityFactor(t *testing.T) {
	t.Parallel()

	cases := map[string]float64{
		"":            1.2,
		"moderate":    1.55,
		"VERY_ACTIVE": 1.9,
		"1.3":         1.3,
	}
	for in, want := range cases {
		got, err := formula.ParseActivityFactor(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("parse %q = %v, want %v", in, got, want)
		}
	}
	for _, in := range []string{"lazy", "0", "-1", "NaN", "Inf", "+inf", "1e999"} {
		if _, err := formula.ParseActivityFactor(in); !errors.Is(err, model.ErrValidation) {
			t.Fatalf("expected validation error for %q, got %v", in, err)
		}
	}
	if formula.ActivityLabel(1.375) == "" {
		t.Fatalf("expected preset label for 1.375")
	}
	if formula.ActivityLabel(1.3) != "" {
		t.Fatalf("expected no label for custom factor")
	}
}
