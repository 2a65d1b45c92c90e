package main

import (
	"github.com/spf13/cobra"

	"github.com/wellkit/wellkit/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive quick-log shell",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := repl.New(&repl.Config{
			Store:    store,
			Detector: loadDetector(),
			IDGen:    idgen,
		})
		if err != nil {
			return err
		}
		return r.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
