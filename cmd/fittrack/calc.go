package fittrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/fittrack/internal/formula"
	"github.com/saadjs/fittrack/internal/model"
	"github.com/saadjs/fittrack/internal/service"
	"github.com/saadjs/fittrack/internal/store"
)

var (
	calcWeight   float64
	calcHeight   float64
	calcAge      int
	calcGender   string
	calcActivity string
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate BMI, BMR and TDEE",
	Long:  "Calculate BMI, BMR and TDEE. Values not given as flags are taken from the saved profile and the latest weight entry.",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		m := formula.BodyMetrics{WeightKg: calcWeight, HeightCm: calcHeight, Age: calcAge}
		if flags.Changed("gender") {
			g, err := model.ParseGender(calcGender)
			if err != nil {
				return err
			}
			m.Gender = g
		}
		if flags.Changed("activity") {
			f, err := formula.ParseActivityFactor(calcActivity)
			if err != nil {
				return err
			}
			m.ActivityFactor = f
		}

		complete := flags.Changed("weight") && flags.Changed("height") && flags.Changed("age") && flags.Changed("gender")
		if !complete {
			err := withStore(func(st *store.Store) error {
				return fillFromProfile(st, &m, flags.Changed)
			})
			if err != nil {
				return err
			}
		}
		if m.ActivityFactor == 0 {
			m.ActivityFactor = model.DefaultActivityFactor
		}

		metrics, err := service.Calculate(m)
		if err != nil {
			return err
		}
		printMetrics(cmd.OutOrStdout(), metrics)
		return nil
	},
}

func fillFromProfile(st *store.Store, m *formula.BodyMetrics, changed func(string) bool) error {
	p, err := st.GetProfile()
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("%w: no saved profile; pass --weight, --height, --age and --gender", model.ErrValidation)
	}
	if !changed("height") {
		m.HeightCm = p.HeightCm
	}
	if !changed("age") {
		m.Age = p.Age
	}
	if !changed("gender") {
		m.Gender = p.Gender
	}
	if !changed("activity") {
		m.ActivityFactor = p.ActivityFactor
	}
	if !changed("weight") {
		w, err := st.LatestWeight()
		if err != nil {
			return err
		}
		if w == nil {
			return fmt.Errorf("%w: no weight logged; pass --weight", model.ErrValidation)
		}
		m.WeightKg = w.WeightKg
	}
	return nil
}

func init() {
	rootCmd.AddCommand(calcCmd)
	calcCmd.Flags().Float64Var(&calcWeight, "weight", 0, "Weight in kg")
	calcCmd.Flags().Float64Var(&calcHeight, "height", 0, "Height in cm")
	calcCmd.Flags().IntVar(&calcAge, "age", 0, "Age in years")
	calcCmd.Flags().StringVar(&calcGender, "gender", "", "male or female")
	calcCmd.Flags().StringVar(&calcActivity, "activity", "", "Activity level or numeric factor")
}
