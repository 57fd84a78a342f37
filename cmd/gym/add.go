// ABOUTME: CLI command for creating exercises.
// ABOUTME: Joins arguments into the exercise name.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/gym/internal/store"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:     "add <name...>",
	Aliases: []string{"a"},
	Short:   "Add an exercise",
	Long: `Add an exercise to track. The arguments are joined into the name,
so quoting is optional.

Names are kept exactly as typed. Adding a name that already exists is an
error.

Examples:
  gym add Bench Press
  gym add "Romanian Deadlift"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")

		r, err := gymStore.AddExercise(name)
		if err != nil {
			return fmt.Errorf("failed to add exercise: %w", err)
		}

		color.Green("✓ Added %s", name)
		warnIfUnsaved(cmd, r)
		return nil
	},
}

// warnIfUnsaved waits for a persist result and reports a failed save.
// The in-memory change stands either way.
func warnIfUnsaved(cmd *cobra.Command, r *store.Result) {
	if r == nil {
		return
	}
	if err := r.Wait(cmd.Context()); err != nil {
		color.Yellow("  not saved: %v", err)
	}
}

func init() {
	rootCmd.AddCommand(addCmd)
}
