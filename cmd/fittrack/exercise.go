package fittrack

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/saadjs/fittrack/internal/model"
	"github.com/saadjs/fittrack/internal/store"
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Keep the exercise log",
}

var (
	exerciseType     string
	exerciseCategory string
	exerciseDuration float64
	exerciseSets     int
	exerciseReps     int
	exerciseNotes    string
	exerciseDate     string
)

var exerciseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log an exercise (cardio needs --duration, strength needs --sets and --reps)",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		in := store.ExerciseLogInput{
			LogDate:      dateOrToday(exerciseDate),
			ExerciseType: exerciseType,
			Category:     model.ExerciseCategory(exerciseCategory),
			DurationMin:  optionalFloat(flags.Changed("duration"), exerciseDuration),
			Sets:         optionalInt(flags.Changed("sets"), exerciseSets),
			RepsPerSet:   optionalInt(flags.Changed("reps"), exerciseReps),
			Notes:        exerciseNotes,
		}
		return withStore(func(st *store.Store) error {
			id, err := st.AddExerciseLogEntry(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged exercise entry %d (%s on %s)\n", id, in.ExerciseType, in.LogDate)
			return nil
		})
	},
}

var exerciseListDate string

var exerciseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the exercise log for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := dateOrToday(exerciseListDate)
		return withStore(func(st *store.Store) error {
			items, err := st.GetExerciseLogEntries(date)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No exercise logged for %s.\n", date)
				return nil
			}
			printExercises(cmd.OutOrStdout(), items)
			return nil
		})
	},
}

func printExercises(out io.Writer, items []model.ExerciseLogEntry) {
	fmt.Fprintln(out, "ID\tTYPE\tCATEGORY\tDETAIL\tNOTES")
	for _, e := range items {
		fmt.Fprintf(out, "%d\t%s\t%s\t%s\t%s\n", e.ID, e.ExerciseType, e.Category, exerciseDetail(e), e.Notes)
	}
}

func exerciseDetail(e model.ExerciseLogEntry) string {
	switch {
	case e.DurationMin != nil:
		return fmt.Sprintf("%g min", *e.DurationMin)
	case e.Sets != nil && e.RepsPerSet != nil:
		return fmt.Sprintf("%dx%d", *e.Sets, *e.RepsPerSet)
	default:
		return ""
	}
}

func init() {
	rootCmd.AddCommand(exerciseCmd)
	exerciseCmd.AddCommand(exerciseAddCmd, exerciseListCmd)

	exerciseAddCmd.Flags().StringVar(&exerciseType, "type", "", "Exercise type (e.g. Running, Bench Press)")
	exerciseAddCmd.Flags().StringVar(&exerciseCategory, "category", "", "cardio or strength")
	exerciseAddCmd.Flags().Float64Var(&exerciseDuration, "duration", 0, "Duration in minutes (cardio)")
	exerciseAddCmd.Flags().IntVar(&exerciseSets, "sets", 0, "Number of sets (strength)")
	exerciseAddCmd.Flags().IntVar(&exerciseReps, "reps", 0, "Reps per set (strength)")
	exerciseAddCmd.Flags().StringVar(&exerciseNotes, "notes", "", "Notes")
	exerciseAddCmd.Flags().StringVar(&exerciseDate, "date", "", "Date (YYYY-MM-DD, default today)")
	_ = exerciseAddCmd.MarkFlagRequired("type")
	_ = exerciseAddCmd.MarkFlagRequired("category")

	exerciseListCmd.Flags().StringVar(&exerciseListDate, "date", "", "Date (YYYY-MM-DD, default today)")
}
