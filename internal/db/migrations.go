package db

import (
	"database/sql"
	"fmt"
)

type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "initial_schema",
		sql: `
CREATE TABLE IF NOT EXISTS profile (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  name TEXT NOT NULL DEFAULT '',
  age INTEGER NOT NULL,
  gender TEXT NOT NULL CHECK (gender IN ('male', 'female')),
  height_cm REAL NOT NULL,
  activity_factor REAL NOT NULL DEFAULT 1.2,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS weight_log (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  log_date TEXT NOT NULL,
  weight_kg REAL NOT NULL CHECK (weight_kg > 0),
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS foods (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL UNIQUE,
  calories REAL NOT NULL CHECK (calories >= 0),
  carbs_g REAL NOT NULL CHECK (carbs_g >= 0),
  fat_g REAL NOT NULL CHECK (fat_g >= 0),
  protein_g REAL NOT NULL CHECK (protein_g >= 0)
);

CREATE TABLE IF NOT EXISTS food_log (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  log_date TEXT NOT NULL,
  meal_time TEXT,
  food_id INTEGER,
  quantity REAL NOT NULL DEFAULT 1.0 CHECK (quantity > 0),
  calories REAL NOT NULL CHECK (calories > 0),
  carbs_g REAL NOT NULL CHECK (carbs_g >= 0),
  fat_g REAL NOT NULL CHECK (fat_g >= 0),
  protein_g REAL NOT NULL CHECK (protein_g >= 0),
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  FOREIGN KEY (food_id) REFERENCES foods(id) ON DELETE SET NULL
);

CREATE TABLE IF NOT EXISTS exercise_log (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  log_date TEXT NOT NULL,
  exercise_type TEXT NOT NULL,
  category TEXT NOT NULL CHECK (category IN ('cardio', 'strength')),
  duration_min REAL CHECK (duration_min > 0),
  sets INTEGER CHECK (sets > 0),
  reps_per_set INTEGER CHECK (reps_per_set > 0),
  notes TEXT,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  CHECK (
    (category = 'cardio' AND duration_min IS NOT NULL AND sets IS NULL AND reps_per_set IS NULL) OR
    (category = 'strength' AND duration_min IS NULL AND sets IS NOT NULL AND reps_per_set IS NOT NULL)
  )
);

CREATE INDEX IF NOT EXISTS idx_weight_log_log_date ON weight_log(log_date);
CREATE INDEX IF NOT EXISTS idx_food_log_log_date ON food_log(log_date);
CREATE INDEX IF NOT EXISTS idx_exercise_log_log_date ON exercise_log(log_date);
`,
	},
}

type seedFood struct {
	name     string
	calories float64
	carbsG   float64
	fatG     float64
	proteinG float64
}

var seedFoods = []seedFood{
	{"Grilled Chicken Breast (100g)", 165, 0, 3.6, 31},
	{"Brown Rice (1 cup cooked)", 216, 45, 1.8, 5},
	{"Apple (1 medium)", 95, 25, 0.3, 0.5},
	{"Banana (1 medium)", 105, 27, 0.3, 1.3},
	{"Oats (1/2 cup dry)", 150, 27, 3, 5},
	{"Whole Egg (1 large)", 72, 0.4, 4.8, 6.3},
}

// ApplyMigrations brings the schema up to date and seeds the food catalog
// when it is empty. It reports how many foods were seeded (zero on every run
// after the first).
func ApplyMigrations(db *sql.DB) (int, error) {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`); err != nil {
		return 0, fmt.Errorf("ensure schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := db.QueryRow(`SELECT 1 FROM schema_migrations WHERE version = ?`, m.version).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return 0, fmt.Errorf("check migration version %d: %w", m.version, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return 0, fmt.Errorf("begin migration tx: %w", err)
		}

		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("apply migration version %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, m.version, m.name); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("record migration version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return 0, fmt.Errorf("commit migration version %d: %w", m.version, err)
		}
	}

	return seedFoodCatalog(db)
}

func seedFoodCatalog(db *sql.DB) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var count int
	if err := tx.QueryRow(`SELECT COUNT(1) FROM foods`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count foods: %w", err)
	}
	if count > 0 {
		return 0, nil
	}
	for _, f := range seedFoods {
		if _, err := tx.Exec(`
INSERT INTO foods(name, calories, carbs_g, fat_g, protein_g)
VALUES(?, ?, ?, ?, ?)
`, f.name, f.calories, f.carbsG, f.fatG, f.proteinG); err != nil {
			return 0, fmt.Errorf("seed food %s: %w", f.name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed foods: %w", err)
	}
	return len(seedFoods), nil
}
