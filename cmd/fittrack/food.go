package fittrack

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/fittrack/internal/model"
	"github.com/saadjs/fittrack/internal/service"
	"github.com/saadjs/fittrack/internal/store"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Search the food catalog and keep the food diary",
}

var foodSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search foods by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		return withStore(func(st *store.Store) error {
			items, err := st.SearchFoods(query)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No foods match %q.\n", query)
				return nil
			}
			printFoods(cmd.OutOrStdout(), items)
			return nil
		})
	},
}

var (
	foodName     string
	foodCalories float64
	foodCarbs    float64
	foodFat      float64
	foodProtein  float64
)

var foodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a food to the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := model.Food{Name: foodName, Calories: foodCalories, CarbsG: foodCarbs, FatG: foodFat, ProteinG: foodProtein}
		return withStore(func(st *store.Store) error {
			id, err := st.AddFood(f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added food %d: %s\n", id, strings.TrimSpace(f.Name))
			return nil
		})
	},
}

var (
	logFoodID   int64
	logQuantity float64
	logMeal     string
	logDate     string
	logCalories float64
	logCarbs    float64
	logFat      float64
	logProtein  float64
)

var foodLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a food diary entry",
	Long: `Log a food diary entry.

With --food-id the catalog food's nutrients are scaled by --quantity; any
nutrient flag overrides the scaled value. Without --food-id, --calories is
required and the entry is stored as given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		date := dateOrToday(logDate)
		return withStore(func(st *store.Store) error {
			var in store.FoodLogInput
			if flags.Changed("food-id") {
				f, err := st.GetFood(logFoodID)
				if err != nil {
					return err
				}
				if f == nil {
					return fmt.Errorf("food %d not found", logFoodID)
				}
				in, err = service.ScaleFood(*f, logQuantity, date, logMeal)
				if err != nil {
					return err
				}
			} else {
				if !flags.Changed("calories") {
					return fmt.Errorf("%w: --calories is required without --food-id", model.ErrValidation)
				}
				in = store.FoodLogInput{LogDate: date, MealTime: logMeal, Quantity: logQuantity}
			}
			if flags.Changed("calories") {
				in.Calories = logCalories
			}
			if flags.Changed("carbs") {
				in.CarbsG = logCarbs
			}
			if flags.Changed("fat") {
				in.FatG = logFat
			}
			if flags.Changed("protein") {
				in.ProteinG = logProtein
			}

			id, err := st.AddFoodLogEntry(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged food entry %d (%.0f kcal on %s)\n", id, in.Calories, date)
			return nil
		})
	},
}

var foodListDate string

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the food diary for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := dateOrToday(foodListDate)
		return withStore(func(st *store.Store) error {
			items, err := st.GetFoodLogEntries(date)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintf(out, "No food logged for %s.\n", date)
				return nil
			}
			printFoodLog(out, items)
			totals, err := service.DailyNutrientTotals(st, date)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "TOTAL\t\t\t%.0f\t%.1f\t%.1f\t%.1f\n", totals.Calories, totals.CarbsG, totals.FatG, totals.ProteinG)
			return nil
		})
	},
}

func printFoods(out io.Writer, items []model.Food) {
	fmt.Fprintln(out, "ID\tNAME\tCALORIES\tCARBS_G\tFAT_G\tPROTEIN_G")
	for _, f := range items {
		fmt.Fprintf(out, "%d\t%s\t%.0f\t%.1f\t%.1f\t%.1f\n", f.ID, f.Name, f.Calories, f.CarbsG, f.FatG, f.ProteinG)
	}
}

func printFoodLog(out io.Writer, items []model.FoodLogEntry) {
	fmt.Fprintln(out, "ID\tMEAL\tFOOD\tCALORIES\tCARBS_G\tFAT_G\tPROTEIN_G")
	for _, e := range items {
		name := e.FoodName
		if name == "" {
			name = "(custom)"
		}
		if e.Quantity != 1 {
			name = fmt.Sprintf("%s x%g", name, e.Quantity)
		}
		fmt.Fprintf(out, "%d\t%s\t%s\t%.0f\t%.1f\t%.1f\t%.1f\n", e.ID, e.MealTime, name, e.Calories, e.CarbsG, e.FatG, e.ProteinG)
	}
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodSearchCmd, foodAddCmd, foodLogCmd, foodListCmd)

	foodAddCmd.Flags().StringVar(&foodName, "name", "", "Food name")
	foodAddCmd.Flags().Float64Var(&foodCalories, "calories", 0, "Calories per serving")
	foodAddCmd.Flags().Float64Var(&foodCarbs, "carbs", 0, "Carbs (g) per serving")
	foodAddCmd.Flags().Float64Var(&foodFat, "fat", 0, "Fat (g) per serving")
	foodAddCmd.Flags().Float64Var(&foodProtein, "protein", 0, "Protein (g) per serving")
	_ = foodAddCmd.MarkFlagRequired("name")
	_ = foodAddCmd.MarkFlagRequired("calories")

	foodLogCmd.Flags().Int64Var(&logFoodID, "food-id", 0, "Catalog food id")
	foodLogCmd.Flags().Float64Var(&logQuantity, "quantity", 1, "Servings")
	foodLogCmd.Flags().StringVar(&logMeal, "meal", "", "Meal time (breakfast|lunch|dinner|snack or any label)")
	foodLogCmd.Flags().StringVar(&logDate, "date", "", "Date (YYYY-MM-DD, default today)")
	foodLogCmd.Flags().Float64Var(&logCalories, "calories", 0, "Calories")
	foodLogCmd.Flags().Float64Var(&logCarbs, "carbs", 0, "Carbs (g)")
	foodLogCmd.Flags().Float64Var(&logFat, "fat", 0, "Fat (g)")
	foodLogCmd.Flags().Float64Var(&logProtein, "protein", 0, "Protein (g)")

	foodListCmd.Flags().StringVar(&foodListDate, "date", "", "Date (YYYY-MM-DD, default today)")
}
