package fittrack

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/saadjs/fittrack/internal/service"
	"github.com/saadjs/fittrack/internal/store"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export local data (json snapshot or food log csv)",
	RunE: func(cmd *cobra.Command, args []string) error {
		format := strings.ToLower(strings.TrimSpace(exportFormat))
		if format != "json" && format != "csv" {
			return fmt.Errorf("unsupported --format %q (use json or csv)", exportFormat)
		}
		return withStore(func(st *store.Store) error {
			data, err := service.Export(st)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if path := strings.TrimSpace(exportOut); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				defer f.Close()
				w = f
			}

			if format == "csv" {
				err = service.WriteFoodLogCSV(w, data.FoodLog)
			} else {
				err = writeJSON(w, data)
			}
			if err != nil {
				return err
			}
			logger.Info("export written", zap.String("export_id", data.ExportID), zap.String("format", format))
			if exportOut != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", format, exportOut)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format: json|csv")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file path (default stdout)")
}
