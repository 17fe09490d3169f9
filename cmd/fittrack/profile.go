package fittrack

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/saadjs/fittrack/internal/formula"
	"github.com/saadjs/fittrack/internal/service"
	"github.com/saadjs/fittrack/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your body profile",
}

var (
	profileName     string
	profileAge      int
	profileGender   string
	profileHeight   float64
	profileWeight   float64
	profileActivity string
	profileDate     string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Save your profile and log today's weight",
	RunE: func(cmd *cobra.Command, args []string) error {
		factor, err := formula.ParseActivityFactor(profileActivity)
		if err != nil {
			return err
		}
		in := service.ProfileInput{
			Name:           profileName,
			Age:            profileAge,
			Gender:         profileGender,
			HeightCm:       profileHeight,
			WeightKg:       profileWeight,
			ActivityFactor: factor,
			Date:           dateOrToday(profileDate),
		}
		return withStore(func(st *store.Store) error {
			p, err := service.SaveProfile(st, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved profile for %s (weight %.1f kg logged for %s)\n", p.Name, in.WeightKg, in.Date)
			report, err := service.EnergyReport(st)
			if err != nil {
				return err
			}
			if report != nil {
				printMetrics(cmd.OutOrStdout(), report.Metrics)
			}
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile with BMI, BMR and TDEE",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			p, err := st.GetProfile()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if p == nil {
				fmt.Fprintln(out, "No profile saved. Run `fittrack profile set`.")
				return nil
			}
			fmt.Fprintf(out, "Name: %s\n", p.Name)
			fmt.Fprintf(out, "Age: %d\n", p.Age)
			fmt.Fprintf(out, "Gender: %s\n", p.Gender)
			fmt.Fprintf(out, "Height: %.1f cm\n", p.HeightCm)
			if label := formula.ActivityLabel(p.ActivityFactor); label != "" {
				fmt.Fprintf(out, "Activity: %s (%.3g)\n", label, p.ActivityFactor)
			} else {
				fmt.Fprintf(out, "Activity factor: %.3g\n", p.ActivityFactor)
			}

			report, err := service.EnergyReport(st)
			if err != nil {
				return err
			}
			if report == nil {
				fmt.Fprintln(out, "No weight logged yet.")
				return nil
			}
			fmt.Fprintf(out, "Weight: %.1f kg (%s)\n", report.WeightKg, report.WeightDate)
			printMetrics(out, report.Metrics)
			return nil
		})
	},
}

func printMetrics(out io.Writer, m service.Metrics) {
	fmt.Fprintf(out, "BMI: %.1f (%s)\n", m.BMI, m.BMICategory)
	fmt.Fprintf(out, "BMR: %.0f kcal/day\n", m.BMR)
	fmt.Fprintf(out, "TDEE: %.0f kcal/day\n", m.TDEE)
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileShowCmd)

	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Your name")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "male or female")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Current weight in kg")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "sedentary", "Activity level (sedentary|light|moderate|active|very_active) or a numeric factor")
	profileSetCmd.Flags().StringVar(&profileDate, "date", "", "Date of the weight entry (YYYY-MM-DD, default today)")
	_ = profileSetCmd.MarkFlagRequired("name")
	_ = profileSetCmd.MarkFlagRequired("age")
	_ = profileSetCmd.MarkFlagRequired("gender")
	_ = profileSetCmd.MarkFlagRequired("height")
	_ = profileSetCmd.MarkFlagRequired("weight")
}
