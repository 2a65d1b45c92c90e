package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wellkit/wellkit/internal/streak"
)

var streakAdherence bool

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show consecutive-day streaks",
	Long: `Shows the mood logging streak by default. With --adherence, shows the
medication adherence streak instead: a day qualifies only when at least
one dose was taken and none were missed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		now := time.Now()

		var state = struct {
			label string
			times []time.Time
		}{}

		if streakAdherence {
			doses, err := store.GetDoses(ctx)
			if err != nil {
				return fmt.Errorf("failed to load doses: %w", err)
			}
			state.label = "Adherence streak"
			state.times = streak.AdherenceDays(doses)
		} else {
			moods, err := store.GetMoods(ctx)
			if err != nil {
				return fmt.Errorf("failed to load moods: %w", err)
			}
			state.label = "Logging streak"
			state.times = streak.MoodDays(moods)
		}

		result := streak.Compute(state.times, now)

		cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		fmt.Printf("\n%s\n", cyan(state.label))
		if result.Current > 0 {
			green := color.New(color.FgGreen).SprintFunc()
			fmt.Printf("  Current: %s\n", green(fmt.Sprintf("%d day(s)", result.Current)))
		} else {
			fmt.Printf("  Current: 0 days (log today to start a new one)\n")
		}
		fmt.Printf("  Longest: %d day(s)\n\n", result.Longest)
		return nil
	},
}

func init() {
	streakCmd.Flags().BoolVar(&streakAdherence, "adherence", false, "Show the medication adherence streak")
	rootCmd.AddCommand(streakCmd)
}
