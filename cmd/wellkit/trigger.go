package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wellkit/wellkit/internal/types"
)

var triggerCmd = &cobra.Command{
	Use:   "trigger",
	Short: "Log triggers (stressors, foods, situations)",
}

var triggerLogCmd = &cobra.Command{
	Use:   "log <description> <intensity 1-10>",
	Short: "Log a trigger occurrence",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		intensity, err := strconv.Atoi(args[len(args)-1])
		if err != nil {
			return fmt.Errorf("intensity must be a number from 1 to 10")
		}
		description := strings.Join(args[:len(args)-1], " ")

		entry := &types.TriggerEntry{
			ID:           idgen.NewID(),
			Description:  description,
			Intensity:    intensity,
			LastOccurred: time.Now(),
		}
		if err := store.AddTrigger(cmd.Context(), entry); err != nil {
			return err
		}
		printOK("logged trigger %q intensity %d", description, intensity)
		return nil
	},
}

var triggerListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show logged triggers",
	RunE: func(cmd *cobra.Command, args []string) error {
		triggers, err := store.GetTriggers(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load triggers: %w", err)
		}
		if len(triggers) == 0 {
			fmt.Println("No triggers logged yet.")
			return nil
		}
		for _, t := range triggers {
			fmt.Printf("  %s  %-30s intensity %d\n", t.LastOccurred.Format("2006-01-02 15:04"), t.Description, t.Intensity)
		}
		return nil
	},
}

func init() {
	triggerCmd.AddCommand(triggerLogCmd)
	triggerCmd.AddCommand(triggerListCmd)
	rootCmd.AddCommand(triggerCmd)
}
