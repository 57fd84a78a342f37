// ABOUTME: CLI command for listing exercises.
// ABOUTME: Shows each exercise with its most recent workout.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List exercises",
	Long: `List exercises in the order they were added.

OUTPUT FORMAT:

  Each line shows: NAME  Last: REPSxWEIGHT, REPSxWEIGHT  (N workouts)

EXAMPLES:

  gym list
  gym ls`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		exercises := gymStore.Exercises()
		if len(exercises) == 0 {
			fmt.Println("No exercises yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range exercises {
			last, ok := e.Last()
			if !ok {
				fmt.Printf("%s %s\n", padRight(e.Name, 24), faint.Sprint("no workouts"))
				continue
			}
			fmt.Printf("%s Last: %s %s\n",
				padRight(e.Name, 24),
				last.String(),
				faint.Sprintf("(%s)", plural(len(e.History), "workout")))
		}
		return nil
	},
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func init() {
	rootCmd.AddCommand(listCmd)
}
