package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/wellkit/wellkit/internal/interaction"
	"github.com/wellkit/wellkit/internal/types"
)

// loadDetector builds the interaction detector from the configured
// dataset. A missing or corrupt dataset degrades to an empty index
// with a warning on stderr; detection then reports no matches, and the
// calling command proceeds normally.
func loadDetector() *interaction.Detector {
	idx, err := interaction.LoadIndex(cfg.DatasetPath)
	if err != nil {
		yellow := color.New(color.FgYellow).SprintFunc()
		fmt.Fprintf(os.Stderr, "%s interaction dataset unavailable, detection disabled: %v\n",
			yellow("Warning:"), err)
	}
	return interaction.NewDetector(idx)
}

func severityIcon(s types.Severity) string {
	switch s {
	case types.SeveritySevere:
		return color.New(color.FgRed, color.Bold).Sprint("‼ SEVERE")
	case types.SeverityModerate:
		return color.New(color.FgYellow).Sprint("! MODERATE")
	case types.SeverityMinor:
		return color.New(color.FgHiBlack).Sprint("· MINOR")
	}
	return string(s)
}

// printMatches renders interaction matches most dangerous first.
func printMatches(matches []types.InteractionMatch) {
	interaction.SortBySeverity(matches)
	for _, m := range matches {
		fmt.Printf("  %s  %s + %s\n", severityIcon(m.Interaction.Severity), m.Med1, m.Med2)
		if m.Interaction.Description != "" {
			fmt.Printf("      %s\n", m.Interaction.Description)
		}
		if m.Interaction.Recommendation != "" {
			gray := color.New(color.FgHiBlack).SprintFunc()
			fmt.Printf("      %s\n", gray(m.Interaction.Recommendation))
		}
	}
}

func printOK(format string, args ...interface{}) {
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Printf("%s %s\n", green("✓"), fmt.Sprintf(format, args...))
}
