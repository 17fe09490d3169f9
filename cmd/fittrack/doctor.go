package fittrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/fittrack/internal/store"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			report, err := st.CheckIntegrity(doctorFix)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Profile rows: %d\n", report.ProfileRows)
			fmt.Fprintf(out, "Catalog foods: %d\n", report.CatalogFoods)
			fmt.Fprintf(out, "Dangling food references: %d\n", report.DanglingFoodRefs)
			fmt.Fprintf(out, "Invalid food log rows: %d\n", report.InvalidFoodLogRows)
			fmt.Fprintf(out, "Invalid weight rows: %d\n", report.InvalidWeightRows)
			fmt.Fprintf(out, "Invalid exercise rows: %d\n", report.InvalidExerciseRows)
			if doctorFix {
				fmt.Fprintf(out, "Cleared food references: %d\n", report.ClearedDanglingRefs)
				// Re-check after fixes so exit status reflects final state.
				report, err = st.CheckIntegrity(false)
				if err != nil {
					return err
				}
			}
			if report.HasIssues() {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Attempt safe auto-fixes")
}
