package fittrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/fittrack/internal/service"
	"github.com/saadjs/fittrack/internal/store"
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Log and review body weight",
}

var (
	weightValue float64
	weightDate  string
)

var weightAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a weight entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		kg := weightValue
		date := dateOrToday(weightDate)
		return withStore(func(st *store.Store) error {
			id, err := st.AddWeightEntry(date, kg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added weight entry %d (%.1f kg on %s)\n", id, kg, date)
			return nil
		})
	},
}

var (
	weightFrom string
	weightTo   string
	weightJSON bool
)

var weightListCmd = &cobra.Command{
	Use:   "list",
	Short: "List weight entries by date",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			points, err := service.WeightSeries(st, weightFrom, weightTo)
			if err != nil {
				return err
			}
			if weightJSON {
				return writeJSON(cmd.OutOrStdout(), points)
			}
			if len(points) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No weight entries.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tWEIGHT_KG")
			for _, p := range points {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.2f\n", p.Date, p.WeightKg)
			}
			change := points[len(points)-1].WeightKg - points[0].WeightKg
			fmt.Fprintf(cmd.OutOrStdout(), "Change: %+.2f kg\n", change)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weightCmd)
	weightCmd.AddCommand(weightAddCmd, weightListCmd)

	weightAddCmd.Flags().Float64Var(&weightValue, "weight", 0, "Weight in kg")
	weightAddCmd.Flags().StringVar(&weightDate, "date", "", "Date (YYYY-MM-DD, default today)")
	_ = weightAddCmd.MarkFlagRequired("weight")

	weightListCmd.Flags().StringVar(&weightFrom, "from", "", "Start date (YYYY-MM-DD)")
	weightListCmd.Flags().StringVar(&weightTo, "to", "", "End date (YYYY-MM-DD)")
	weightListCmd.Flags().BoolVar(&weightJSON, "json", false, "Output JSON")
}
