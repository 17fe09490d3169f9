package service_test

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/saadjs/fittrack/internal/db"
	"github.com/saadjs/fittrack/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fittrack.db")
	sqldb, err := db.Open(db.DriverModernc, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	st := store.New(sqldb, zaptest.NewLogger(t))
	if err := st.Initialize(); err != nil {
		t.Fatalf("initialize store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func mustLogFood(t *testing.T, st *store.Store, in store.FoodLogInput) {
	t.Helper()
	if _, err := st.AddFoodLogEntry(in); err != nil {
		t.Fatalf("add food log entry: %v", err)
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}
