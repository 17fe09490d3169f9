package fittrack

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/saadjs/fittrack/internal/config"
	"github.com/saadjs/fittrack/internal/logging"
)

var (
	dbPath  string
	verbose bool

	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "fittrack logs weight, food and exercise from your terminal",
	Long:  "fittrack is a local-first personal health tracker: body metrics (BMI, BMR, TDEE), a weight log, a food diary with a nutrient catalog, and an exercise log.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		if dbPath != "" {
			loaded.DBPath = dbPath
		}
		level := loaded.LogLevel
		if verbose {
			level = "debug"
		}
		log, err := logging.New(level)
		if err != nil {
			return err
		}
		cfg = loaded
		logger = log
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
