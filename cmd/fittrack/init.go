package fittrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/fittrack/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize local fittrack database",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			foods, err := st.ListFoods()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized fittrack database at %s (%d foods in catalog)\n", cfg.DBPath, len(foods))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
