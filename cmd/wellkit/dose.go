package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/wellkit/wellkit/internal/types"
)

var (
	doseMissed bool
	doseMedID  string
)

var doseCmd = &cobra.Command{
	Use:   "dose",
	Short: "Log a medication dose for adherence tracking",
	Long: `Logs a taken dose by default; --missed records a missed one. A day
with any missed dose never counts toward the adherence streak, even if
other doses were taken.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entry := &types.DoseEntry{
			ID:           idgen.NewID(),
			MedicationID: doseMedID,
			Timestamp:    time.Now(),
			Taken:        !doseMissed,
		}
		if err := store.AddDose(cmd.Context(), entry); err != nil {
			return err
		}
		if doseMissed {
			printOK("logged missed dose")
		} else {
			printOK("logged dose taken")
		}
		return nil
	},
}

func init() {
	doseCmd.Flags().BoolVar(&doseMissed, "missed", false, "Record a missed dose instead of a taken one")
	doseCmd.Flags().StringVar(&doseMedID, "med", "", "Medication ID this dose belongs to")
	rootCmd.AddCommand(doseCmd)
}
