package store_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/saadjs/fittrack/internal/model"
	"github.com/saadjs/fittrack/internal/store"
)

func TestExerciseLogCategoryFieldGroups(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	if _, err := st.AddExerciseLogEntry(store.ExerciseLogInput{
		LogDate:      "2026-02-20",
		ExerciseType: "Running",
		Category:     model.CategoryCardio,
		DurationMin:  floatPtr(35),
		Notes:        "  easy pace ",
	}); err != nil {
		t.Fatalf("add cardio: %v", err)
	}
	if _, err := st.AddExerciseLogEntry(store.ExerciseLogInput{
		LogDate:      "2026-02-20",
		ExerciseType: "Squat",
		Category:     model.CategoryStrength,
		Sets:         intPtr(5),
		RepsPerSet:   intPtr(5),
	}); err != nil {
		t.Fatalf("add strength: %v", err)
	}
	if _, err := st.AddExerciseLogEntry(store.ExerciseLogInput{
		LogDate:      "2026-02-21",
		ExerciseType: "Cycling",
		Category:     model.CategoryCardio,
		DurationMin:  floatPtr(60),
	}); err != nil {
		t.Fatalf("add other-day cardio: %v", err)
	}

	items, err := st.GetExerciseLogEntries("2026-02-20")
	if err != nil {
		t.Fatalf("get exercise log: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 entries for date, got %d", len(items))
	}
	for _, e := range items {
		switch e.Category {
		case model.CategoryCardio:
			if e.DurationMin == nil || e.Sets != nil || e.RepsPerSet != nil {
				t.Fatalf("cardio entry has wrong field group: %+v", e)
			}
		case model.CategoryStrength:
			if e.DurationMin != nil || e.Sets == nil || e.RepsPerSet == nil {
				t.Fatalf("strength entry has wrong field group: %+v", e)
			}
		default:
			t.Fatalf("unexpected category %q", e.Category)
		}
	}
	if items[0].ExerciseType != "Running" || items[0].Notes != "easy pace" || *items[0].DurationMin != 35 {
		t.Fatalf("unexpected first entry: %+v", items[0])
	}
	if *items[1].Sets != 5 || *items[1].RepsPerSet != 5 {
		t.Fatalf("unexpected strength entry: %+v", items[1])
	}
}

func TestExerciseLogValidation(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	cases := []struct {
		in   store.ExerciseLogInput
		want string
	}{
		{store.ExerciseLogInput{LogDate: "2026-02-20", Category: model.CategoryCardio, DurationMin: floatPtr(10)}, "exercise type is required"},
		{store.ExerciseLogInput{LogDate: "2026-02-20", ExerciseType: "yoga", Category: "flexibility"}, "invalid exercise category"},
		{store.ExerciseLogInput{LogDate: "2026-02-20", ExerciseType: "run", Category: model.CategoryCardio}, "duration is required"},
		{store.ExerciseLogInput{LogDate: "2026-02-20", ExerciseType: "run", Category: model.CategoryCardio, DurationMin: floatPtr(0)}, "duration must be > 0"},
		{store.ExerciseLogInput{LogDate: "2026-02-20", ExerciseType: "run", Category: model.CategoryCardio, DurationMin: floatPtr(math.NaN())}, "finite number"},
		{store.ExerciseLogInput{LogDate: "2026-02-20", ExerciseType: "run", Category: model.CategoryCardio, DurationMin: floatPtr(20), Sets: intPtr(3)}, "only valid for strength"},
		{store.ExerciseLogInput{LogDate: "2026-02-20", ExerciseType: "bench", Category: model.CategoryStrength, Sets: intPtr(3)}, "sets and reps are required"},
		{store.ExerciseLogInput{LogDate: "2026-02-20", ExerciseType: "bench", Category: model.CategoryStrength, Sets: intPtr(3), RepsPerSet: intPtr(0)}, "must be > 0"},
		{store.ExerciseLogInput{LogDate: "2026-02-20", ExerciseType: "bench", Category: model.CategoryStrength, Sets: intPtr(3), RepsPerSet: intPtr(8), DurationMin: floatPtr(10)}, "only valid for cardio"},
	}
	for i, tc := range cases {
		_, err := st.AddExerciseLogEntry(tc.in)
		if !errors.Is(err, model.ErrValidation) || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("case %d: expected %q validation error, got %v", i, tc.want, err)
		}
	}
	items, err := st.ListExerciseLogEntries()
	if err != nil {
		t.Fatalf("list exercise log: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no rows written, got %d", len(items))
	}
}

func TestCheckIntegrityClearsDanglingFoodRefs(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	if err := store.DetachForeignKeys(st); err != nil {
		t.Fatalf("disable foreign keys: %v", err)
	}
	if err := store.ExecRaw(st, `INSERT INTO food_log(log_date, food_id, calories, carbs_g, fat_g, protein_g) VALUES('2026-02-20', 999, 300, 0, 0, 0)`); err != nil {
		t.Fatalf("insert dangling row: %v", err)
	}

	report, err := st.CheckIntegrity(false)
	if err != nil {
		t.Fatalf("check integrity: %v", err)
	}
	if report.DanglingFoodRefs != 1 || !report.HasIssues() {
		t.Fatalf("expected one dangling reference, got %+v", report)
	}
	if report.CatalogFoods != 6 {
		t.Fatalf("expected 6 catalog foods, got %d", report.CatalogFoods)
	}

	report, err = st.CheckIntegrity(true)
	if err != nil {
		t.Fatalf("check integrity with fix: %v", err)
	}
	if report.ClearedDanglingRefs != 1 {
		t.Fatalf("expected 1 cleared reference, got %+v", report)
	}
	report, err = st.CheckIntegrity(false)
	if err != nil {
		t.Fatalf("recheck integrity: %v", err)
	}
	if report.HasIssues() {
		t.Fatalf("expected clean report after fix, got %+v", report)
	}

	items, err := st.GetFoodLogEntries("2026-02-20")
	if err != nil {
		t.Fatalf("get food log: %v", err)
	}
	if len(items) != 1 || items[0].Calories != 300 || items[0].FoodID != nil {
		t.Fatalf("expected detached row with snapshot kept, got %+v", items)
	}
}
