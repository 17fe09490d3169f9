package fittrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/fittrack/internal/service"
	"github.com/saadjs/fittrack/internal/store"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the day's intake, exercise and remaining calories",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := dateOrToday(todayDate)
		return withStore(func(st *store.Store) error {
			status, err := service.DaySummary(st, date)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", status.Date)
			fmt.Fprintf(out, "Intake: %.0f kcal (C %.1fg / F %.1fg / P %.1fg)\n", status.Totals.Calories, status.Totals.CarbsG, status.Totals.FatG, status.Totals.ProteinG)
			if status.Energy != nil {
				fmt.Fprintf(out, "TDEE: %.0f kcal\n", status.Energy.TDEE)
				fmt.Fprintf(out, "Remaining: %.0f kcal\n", status.RemainingCalories)
			} else {
				fmt.Fprintln(out, "TDEE: n/a (save a profile with `fittrack profile set`)")
			}
			fmt.Fprintf(out, "Exercise: %d entries, %g cardio min, %d strength sets\n", len(status.Exercises), status.CardioMinutes, status.StrengthSets)

			if len(status.Foods) > 0 {
				fmt.Fprintln(out)
				printFoodLog(out, status.Foods)
			}
			if len(status.Exercises) > 0 {
				fmt.Fprintln(out)
				printExercises(out, status.Exercises)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date (YYYY-MM-DD, default today)")
}
