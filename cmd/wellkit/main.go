package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wellkit/wellkit/internal/config"
	"github.com/wellkit/wellkit/internal/ids"
	"github.com/wellkit/wellkit/internal/storage"
)

// Shared across subcommands, initialized in PersistentPreRunE.
var (
	cfg   *config.Config
	store storage.Storage
	idgen ids.Generator = ids.UUID{}
)

var rootCmd = &cobra.Command{
	Use:   "wellkit",
	Short: "Personal wellness tracking from the terminal",
	Long: `Wellkit tracks medications, moods, symptoms, and triggers, and turns
the logs into signal: drug interaction warnings, consecutive-day
streaks, and temporal correlations between what you log and how you
feel.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		store, err = storage.Open(cfg)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
