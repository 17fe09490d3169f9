package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/saadjs/fittrack/internal/model"
)

const dateLayout = "2006-01-02"

func parseDate(name, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid %s %q (expected YYYY-MM-DD)", model.ErrValidation, name, value)
	}
	return t, nil
}

func validatePositive(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %s must be a finite number", model.ErrValidation, name)
	}
	if value <= 0 {
		return fmt.Errorf("%w: %s must be > 0", model.ErrValidation, name)
	}
	return nil
}

// Today returns the local calendar date in storage format.
func Today() string {
	return time.Now().Format(dateLayout)
}
