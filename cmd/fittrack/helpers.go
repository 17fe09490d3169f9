package fittrack

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/saadjs/fittrack/internal/app"
	"github.com/saadjs/fittrack/internal/db"
	"github.com/saadjs/fittrack/internal/service"
	"github.com/saadjs/fittrack/internal/store"
)

func withStore(run func(*store.Store) error) error {
	if cfg == nil {
		return fmt.Errorf("configuration not loaded")
	}
	if err := app.EnsureDBDir(cfg.DBPath); err != nil {
		return err
	}
	sqldb, err := db.Open(cfg.DBDriver, cfg.DBPath)
	if err != nil {
		return err
	}
	logger.Debug("database opened", zap.String("path", cfg.DBPath), zap.String("driver", cfg.DBDriver))
	st := store.New(sqldb, logger)
	defer func() {
		if err := st.Close(); err != nil {
			logger.Warn("close database", zap.Error(err))
			return
		}
		logger.Debug("database closed")
	}()

	if err := st.Initialize(); err != nil {
		return err
	}
	return run(st)
}

func dateOrToday(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return service.Today()
	}
	return value
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func optionalFloat(changed bool, v float64) *float64 {
	if !changed {
		return nil
	}
	return &v
}

func optionalInt(changed bool, v int) *int {
	if !changed {
		return nil
	}
	return &v
}
