// ABOUTME: CLI command for showing one exercise.
// ABOUTME: Prints every logged workout, oldest first.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <name...>",
	Short: "Show an exercise's full history",
	Long: `Show every workout logged for an exercise, oldest first.

Examples:
  gym show Bench Press`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")

		ex, ok := gymStore.Exercise(name)
		if !ok {
			return fmt.Errorf("exercise not found: %s", name)
		}

		color.New(color.Bold).Println(ex.Name)
		if len(ex.History) == 0 {
			fmt.Println("  No workouts logged.")
			return nil
		}

		faint := color.New(color.Faint)
		for i, w := range ex.History {
			fmt.Printf("  %s %s\n", faint.Sprintf("%3d.", i+1), w.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
