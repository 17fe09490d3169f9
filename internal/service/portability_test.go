package service_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/saadjs/fittrack/internal/model"
	"github.com/saadjs/fittrack/internal/service"
	"github.com/saadjs/fittrack/internal/store"
)

func TestExportSnapshot(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	if _, err := service.SaveProfile(st, service.ProfileInput{Name: "Kim", Age: 40, Gender: "female", HeightCm: 160, WeightKg: 55, Date: "2026-05-01"}); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	foods, err := st.SearchFoods("oats")
	if err != nil || len(foods) != 1 {
		t.Fatalf("find oats: %v %+v", err, foods)
	}
	in, err := service.ScaleFood(foods[0], 1, "2026-05-01", "breakfast")
	if err != nil {
		t.Fatalf("scale food: %v", err)
	}
	mustLogFood(t, st, in)
	if _, err := st.AddExerciseLogEntry(store.ExerciseLogInput{LogDate: "2026-05-01", ExerciseType: "Swim", Category: model.CategoryCardio, DurationMin: floatPtr(45)}); err != nil {
		t.Fatalf("add exercise: %v", err)
	}

	data, err := service.Export(st)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, err := uuid.Parse(data.ExportID); err != nil {
		t.Fatalf("expected uuid export id, got %q", data.ExportID)
	}
	if data.Profile == nil || data.Profile.Name != "Kim" || data.Profile.Gender != "female" {
		t.Fatalf("unexpected profile: %+v", data.Profile)
	}
	if len(data.Weights) != 1 || len(data.Foods) != 6 || len(data.FoodLog) != 1 || len(data.ExerciseLog) != 1 {
		t.Fatalf("unexpected export sizes: %+v", data)
	}
	if data.FoodLog[0].FoodName != foods[0].Name || data.FoodLog[0].Calories != 150 {
		t.Fatalf("unexpected food log export: %+v", data.FoodLog[0])
	}

	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal export: %v", err)
	}
	for _, key := range []string{`"export_id"`, `"food_log"`, `"duration_min":45`} {
		if !strings.Contains(string(raw), key) {
			t.Fatalf("expected %s in export json: %s", key, raw)
		}
	}
	if strings.Contains(string(raw), `"sets"`) {
		t.Fatalf("cardio export should omit sets: %s", raw)
	}
}

func TestExportEmptyDatabase(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	data, err := service.Export(st)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if data.Profile != nil || len(data.Weights) != 0 || len(data.FoodLog) != 0 {
		t.Fatalf("expected empty export, got %+v", data)
	}
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal export: %v", err)
	}
	if !strings.Contains(string(raw), `"weights":[]`) {
		t.Fatalf("expected empty arrays rather than null: %s", raw)
	}
}

func TestWriteFoodLogCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := service.WriteFoodLogCSV(&buf, []service.ExportFoodLogEntry{
		{LogDate: "2026-05-01", MealTime: "lunch", FoodName: "Soup, tomato", Quantity: 1.5, Calories: 180},
	})
	if err != nil {
		t.Fatalf("write csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %q", buf.String())
	}
	if lines[0] != "log_date,meal_time,food_name,quantity,calories,carbs_g,fat_g,protein_g" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[1] != `2026-05-01,lunch,"Soup, tomato",1.5,180,0,0,0` {
		t.Fatalf("unexpected row %q", lines[1])
	}
}
