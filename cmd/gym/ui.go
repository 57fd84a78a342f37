// ABOUTME: CLI command for the interactive logger.
// ABOUTME: Also runs when gym is invoked without a subcommand.
package main

import (
	"github.com/harperreed/gym/internal/tui"
	"github.com/spf13/cobra"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive logger",
	Long: `Open the single-screen logger.

KEYS:

  Exercise list   type a name + enter to add, ↑/↓ + enter to select, esc to quit
  Logging         tab switches reps/weight, enter adds a set,
                  ctrl+s saves the workout, esc discards it`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUI()
	},
}

func runUI() error {
	return tui.Run(gymStore)
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
