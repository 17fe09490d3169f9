package db_test

import (
	"path/filepath"
	"testing"

	"github.com/saadjs/fittrack/internal/db"
)

func TestApplyMigrationsIdempotentAndSeedsFoods(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "fittrack.db")
	sqldb, err := db.Open(db.DriverModernc, dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()

	seeded, err := db.ApplyMigrations(sqldb)
	if err != nil {
		t.Fatalf("first apply migrations: %v", err)
	}
	if seeded != 6 {
		t.Fatalf("expected 6 seeded foods on first run, got %d", seeded)
	}
	seeded, err = db.ApplyMigrations(sqldb)
	if err != nil {
		t.Fatalf("second apply migrations: %v", err)
	}
	if seeded != 0 {
		t.Fatalf("expected no reseed on second run, got %d", seeded)
	}

	var foodCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM foods`).Scan(&foodCount); err != nil {
		t.Fatalf("count foods: %v", err)
	}
	if foodCount != 6 {
		t.Fatalf("expected 6 foods, got %d", foodCount)
	}

	var migrationCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM schema_migrations`).Scan(&migrationCount); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if migrationCount != 1 {
		t.Fatalf("expected 1 migration version, got %d", migrationCount)
	}

	for _, table := range []string{"profile", "weight_log", "foods", "food_log", "exercise_log"} {
		var n int
		if err := sqldb.QueryRow(`SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&n); err != nil {
			t.Fatalf("check %s table: %v", table, err)
		}
		if n != 1 {
			t.Fatalf("expected %s table to exist", table)
		}
	}
}

func TestApplyMigrationsDoesNotReseedAfterCatalogChanges(t *testing.T) {
	t.Parallel()

	sqldb, err := db.Open(db.DriverModernc, filepath.Join(t.TempDir(), "fittrack.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()

	if _, err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := sqldb.Exec(`DELETE FROM foods WHERE name <> 'Apple (1 medium)'`); err != nil {
		t.Fatalf("trim catalog: %v", err)
	}
	if _, err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("reapply migrations: %v", err)
	}
	var n int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM foods`).Scan(&n); err != nil {
		t.Fatalf("count foods: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected catalog left at 1 row, got %d", n)
	}
}

func TestSchemaRejectsSecondProfileRow(t *testing.T) {
	t.Parallel()

	sqldb, err := db.Open(db.DriverModernc, filepath.Join(t.TempDir(), "fittrack.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()
	if _, err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	if _, err := sqldb.Exec(`INSERT INTO profile(id, name, age, gender, height_cm) VALUES(2, 'x', 30, 'male', 180)`); err == nil {
		t.Fatalf("expected profile id other than 1 to be rejected")
	}
	if _, err := sqldb.Exec(`INSERT INTO profile(id, name, age, gender, height_cm) VALUES(1, 'x', 30, 'other', 180)`); err == nil {
		t.Fatalf("expected unknown gender to be rejected")
	}
}

func TestSchemaEnforcesExerciseFieldGroups(t *testing.T) {
	t.Parallel()

	sqldb, err := db.Open(db.DriverModernc, filepath.Join(t.TempDir(), "fittrack.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()
	if _, err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	if _, err := sqldb.Exec(`INSERT INTO exercise_log(log_date, exercise_type, category, duration_min, sets) VALUES('2026-02-20', 'run', 'cardio', 30, 3)`); err == nil {
		t.Fatalf("expected cardio row with sets to be rejected")
	}
	if _, err := sqldb.Exec(`INSERT INTO exercise_log(log_date, exercise_type, category, sets) VALUES('2026-02-20', 'squat', 'strength', 3)`); err == nil {
		t.Fatalf("expected strength row without reps to be rejected")
	}
}

func TestNormalizeDriver(t *testing.T) {
	t.Parallel()

	cases := map[string]string{"": db.DriverModernc, "modernc": db.DriverModernc, "SQLITE3": db.DriverCGO, "mattn": db.DriverCGO}
	for in, want := range cases {
		got, err := db.NormalizeDriver(in)
		if err != nil {
			t.Fatalf("normalize %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("normalize %q = %q, want %q", in, got, want)
		}
	}
	if _, err := db.NormalizeDriver("postgres"); err == nil {
		t.Fatalf("expected unsupported driver error")
	}
}
