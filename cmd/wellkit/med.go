package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wellkit/wellkit/internal/interaction"
	"github.com/wellkit/wellkit/internal/types"
)

var medCmd = &cobra.Command{
	Use:   "med",
	Short: "Manage medications and check drug interactions",
}

var medAddDosage string

var medAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a medication, checking it against your active medications",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		name := strings.Join(args, " ")

		// Check the candidate against current actives before it joins
		// them, so the warning names the new medication explicitly.
		existing, err := store.GetActiveMedications(ctx)
		if err != nil {
			return fmt.Errorf("failed to load medications: %w", err)
		}
		detector := loadDetector()
		matches := detector.Detect(interaction.ActiveNames(existing), name)

		med := &types.MedicationEntry{
			ID:        idgen.NewID(),
			Name:      name,
			Dosage:    medAddDosage,
			Active:    true,
			CreatedAt: time.Now(),
		}
		if err := store.AddMedication(ctx, med); err != nil {
			return fmt.Errorf("failed to add medication: %w", err)
		}

		printOK("added %s", name)
		if len(matches) > 0 {
			yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
			fmt.Printf("\n%s\n", yellow("Known interactions with your active medications:"))
			printMatches(matches)
		}
		return nil
	},
}

var medListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all medications",
	RunE: func(cmd *cobra.Command, args []string) error {
		meds, err := store.GetMedications(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load medications: %w", err)
		}
		if len(meds) == 0 {
			fmt.Println("No medications yet. Add one with 'wellkit med add <name>'.")
			return nil
		}

		green := color.New(color.FgGreen).SprintFunc()
		gray := color.New(color.FgHiBlack).SprintFunc()
		for _, med := range meds {
			marker := gray("○")
			if med.Active {
				marker = green("●")
			}
			line := fmt.Sprintf("  %s %s", marker, med.Name)
			if med.Dosage != "" {
				line += gray("  " + med.Dosage)
			}
			fmt.Println(line)
			fmt.Printf("      id: %s\n", gray(med.ID))
		}
		return nil
	},
}

var medCheckCmd = &cobra.Command{
	Use:   "check [candidate name]",
	Short: "Scan active medications for known pairwise interactions",
	Long: `Without arguments, scans every pair of active medications. With a
candidate name, also checks the candidate against each active
medication without adding it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		candidate := strings.Join(args, " ")

		meds, err := store.GetActiveMedications(ctx)
		if err != nil {
			return fmt.Errorf("failed to load medications: %w", err)
		}

		detector := loadDetector()
		matches := detector.Detect(interaction.ActiveNames(meds), candidate)
		if len(matches) == 0 {
			printOK("no known interactions")
			return nil
		}

		fmt.Printf("Found %d known interaction(s):\n\n", len(matches))
		printMatches(matches)
		return nil
	},
}

var medStopCmd = &cobra.Command{
	Use:   "stop <id>",
	Short: "Mark a medication inactive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.SetMedicationActive(cmd.Context(), args[0], false); err != nil {
			return err
		}
		printOK("medication %s marked inactive", args[0])
		return nil
	},
}

func init() {
	medAddCmd.Flags().StringVar(&medAddDosage, "dosage", "", "Dosage note, e.g. '81mg daily'")

	medCmd.AddCommand(medAddCmd)
	medCmd.AddCommand(medListCmd)
	medCmd.AddCommand(medCheckCmd)
	medCmd.AddCommand(medStopCmd)
	rootCmd.AddCommand(medCmd)
}
