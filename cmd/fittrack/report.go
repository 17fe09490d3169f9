package fittrack

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/saadjs/fittrack/internal/service"
	"github.com/saadjs/fittrack/internal/store"
)

const defaultReportDays = 7

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Time-series reports",
}

var (
	reportFrom string
	reportTo   string
	reportJSON bool
)

var reportNutrientsCmd = &cobra.Command{
	Use:   "nutrients",
	Short: "Daily nutrient totals over a date range (default: last 7 days)",
	RunE: func(cmd *cobra.Command, args []string) error {
		to := dateOrToday(reportTo)
		from := reportFrom
		if from == "" {
			end, err := time.Parse("2006-01-02", to)
			if err != nil {
				return fmt.Errorf("invalid --to %q (expected YYYY-MM-DD)", to)
			}
			from = end.AddDate(0, 0, -(defaultReportDays - 1)).Format("2006-01-02")
		}
		return withStore(func(st *store.Store) error {
			series, err := service.NutrientSeries(st, from, to)
			if err != nil {
				return err
			}
			if reportJSON {
				return writeJSON(cmd.OutOrStdout(), series)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "DATE\tCALORIES\tCARBS_G\tFAT_G\tPROTEIN_G")
			var sum float64
			for _, d := range series {
				sum += d.Calories
				fmt.Fprintf(out, "%s\t%.0f\t%.1f\t%.1f\t%.1f\n", d.Date, d.Calories, d.CarbsG, d.FatG, d.ProteinG)
			}
			fmt.Fprintf(out, "Total: %.0f kcal over %d days\n", sum, len(series))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.AddCommand(reportNutrientsCmd)
	reportNutrientsCmd.Flags().StringVar(&reportFrom, "from", "", "Start date (YYYY-MM-DD)")
	reportNutrientsCmd.Flags().StringVar(&reportTo, "to", "", "End date (YYYY-MM-DD, default today)")
	reportNutrientsCmd.Flags().BoolVar(&reportJSON, "json", false, "Output JSON")
}
