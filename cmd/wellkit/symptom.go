package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wellkit/wellkit/internal/types"
)

var symptomCmd = &cobra.Command{
	Use:   "symptom",
	Short: "Log symptoms",
}

var symptomLogCmd = &cobra.Command{
	Use:   "log <type> <severity 1-10>",
	Short: "Log a symptom occurrence",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		severity, err := strconv.Atoi(args[len(args)-1])
		if err != nil {
			return fmt.Errorf("severity must be a number from 1 to 10")
		}
		// Lowercased so "Headache" and "headache" cluster together in
		// the co-occurrence analysis.
		symptomType := strings.ToLower(strings.Join(args[:len(args)-1], " "))

		entry := &types.SymptomEntry{
			ID:        idgen.NewID(),
			Timestamp: time.Now(),
			Type:      symptomType,
			Severity:  severity,
		}
		if err := store.AddSymptom(cmd.Context(), entry); err != nil {
			return err
		}
		printOK("logged symptom %q severity %d", symptomType, severity)
		return nil
	},
}

var symptomListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show logged symptoms",
	RunE: func(cmd *cobra.Command, args []string) error {
		symptoms, err := store.GetSymptoms(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load symptoms: %w", err)
		}
		if len(symptoms) == 0 {
			fmt.Println("No symptoms logged yet.")
			return nil
		}
		for _, s := range symptoms {
			fmt.Printf("  %s  %-20s severity %d\n", s.Timestamp.Format("2006-01-02 15:04"), s.Type, s.Severity)
		}
		return nil
	},
}

func init() {
	symptomCmd.AddCommand(symptomLogCmd)
	symptomCmd.AddCommand(symptomListCmd)
	rootCmd.AddCommand(symptomCmd)
}
