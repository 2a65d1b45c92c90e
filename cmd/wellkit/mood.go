package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wellkit/wellkit/internal/types"
)

var moodCmd = &cobra.Command{
	Use:   "mood",
	Short: "Log and review mood ratings",
}

var moodLogCmd = &cobra.Command{
	Use:   "log <rating 1-10> [note...]",
	Short: "Log a mood rating",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rating, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("rating must be a number from 1 to 10")
		}

		entry := &types.MoodEntry{
			ID:        idgen.NewID(),
			Timestamp: time.Now(),
			Rating:    rating,
			Note:      strings.Join(args[1:], " "),
		}
		if err := store.AddMood(cmd.Context(), entry); err != nil {
			return err
		}
		printOK("logged mood %d", rating)
		return nil
	},
}

var moodListLimit int

var moodListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent mood entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		moods, err := store.GetMoods(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load moods: %w", err)
		}
		if len(moods) == 0 {
			fmt.Println("No mood entries yet. Log one with 'wellkit mood log <1-10>'.")
			return nil
		}

		start := 0
		if moodListLimit > 0 && len(moods) > moodListLimit {
			start = len(moods) - moodListLimit
		}
		for _, m := range moods[start:] {
			line := fmt.Sprintf("  %s  %2d", m.Timestamp.Format("2006-01-02 15:04"), m.Rating)
			if m.Note != "" {
				line += "  " + m.Note
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	moodListCmd.Flags().IntVar(&moodListLimit, "limit", 14, "Show at most this many recent entries (0 = all)")

	moodCmd.AddCommand(moodLogCmd)
	moodCmd.AddCommand(moodListCmd)
	rootCmd.AddCommand(moodCmd)
}
