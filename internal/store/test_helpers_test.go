package store_test

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

func floatPtr(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}
