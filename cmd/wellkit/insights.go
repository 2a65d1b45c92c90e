package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wellkit/wellkit/internal/insights"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Correlate triggers and symptoms with mood",
	Long: `Runs four analyses over your logs: trigger impact on mood over the
following 24 hours, symptom impact on same-day mood, day-of-week mood
patterns, and symptom co-occurrence clusters. Sections without enough
data are skipped rather than reported on noise.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		moods, err := store.GetMoods(ctx)
		if err != nil {
			return fmt.Errorf("failed to load moods: %w", err)
		}
		symptoms, err := store.GetSymptoms(ctx)
		if err != nil {
			return fmt.Errorf("failed to load symptoms: %w", err)
		}
		triggers, err := store.GetTriggers(ctx)
		if err != nil {
			return fmt.Errorf("failed to load triggers: %w", err)
		}

		engine := insights.NewEngine()
		report := engine.Analyze(moods, symptoms, triggers)

		cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		gray := color.New(color.FgHiBlack).SprintFunc()

		fmt.Printf("\n%s\n\n", cyan("=== Wellness Insights ==="))

		if report.InsufficientData {
			fmt.Printf("Not enough data yet: %d mood entries logged, %d needed.\n",
				report.MoodSampleSize, engine.MinMoodSamples)
			fmt.Println("Keep logging and check back in a few days.")
			fmt.Println()
			return nil
		}

		fmt.Printf("Baseline mood: %.1f over %d entries\n\n", report.BaselineMean, report.MoodSampleSize)

		if len(report.TriggerImpacts) > 0 {
			fmt.Printf("%s\n", cyan("Trigger impact (next 24h)"))
			for _, t := range report.TriggerImpacts {
				fmt.Printf("  %-30s %s  %s\n", t.Subject, formatImpact(t.Impact),
					gray(fmt.Sprintf("mood %.1f vs %.1f, n=%d", t.ConditionedMean, t.BaselineMean, t.SampleSize)))
			}
			fmt.Println()
		}

		if len(report.SymptomImpacts) > 0 {
			fmt.Printf("%s\n", cyan("Symptom impact (same day)"))
			for _, s := range report.SymptomImpacts {
				fmt.Printf("  %-30s %s  %s\n", s.Subject, formatImpact(s.Impact),
					gray(fmt.Sprintf("mean severity %.1f, n=%d", s.MeanSeverity, s.SampleSize)))
			}
			fmt.Println()
		}

		if report.Weekday != nil {
			fmt.Printf("%s\n", cyan("Day-of-week pattern"))
			fmt.Printf("  Best:  %s (%.1f)\n", report.Weekday.Best, report.Weekday.Means[report.Weekday.Best])
			fmt.Printf("  Worst: %s (%.1f)\n", report.Weekday.Worst, report.Weekday.Means[report.Weekday.Worst])
			fmt.Println()
		}

		if co := report.Cooccurrence; co != nil {
			fmt.Printf("%s\n", cyan("Symptom clusters"))
			if co.InsufficientData {
				fmt.Printf("  Not enough data for clustering (%d symptom records, %d needed).\n",
					co.TotalRecords, engine.MinSymptomRecords)
			} else if len(co.Pairs) == 0 {
				fmt.Println("  No symptoms co-occurred on the same day.")
			} else {
				for _, pair := range co.Pairs {
					fmt.Printf("  %s + %s  %s\n", pair.TypeA, pair.TypeB,
						gray(fmt.Sprintf("%d day(s) together", pair.Count)))
				}
			}
			fmt.Println()
		}

		return nil
	},
}

// formatImpact colors an impact value: red for harm, green for lift.
func formatImpact(impact float64) string {
	text := fmt.Sprintf("%+.1f", impact)
	switch {
	case impact < 0:
		return color.New(color.FgRed).Sprint(text)
	case impact > 0:
		return color.New(color.FgGreen).Sprint(text)
	}
	return text
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}
