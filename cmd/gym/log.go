// ABOUTME: CLI command for logging a workout.
// ABOUTME: Stages REPSxWEIGHT sets in a Session and commits them together.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/gym/internal/models"
	"github.com/harperreed/gym/internal/session"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log <exercise...> <set>...",
	Short: "Log a workout",
	Long: `Log one workout for an existing exercise. Each set is REPSxWEIGHT.

Trailing REPSxWEIGHT arguments are the sets; everything before them is
joined into the exercise name, so quoting is optional. Reps and weight
are kept as typed, so "5xbodyweight" works.

Examples:
  gym log Bench Press 10x135 8x145
  gym log Squat 5x225 5x225 5x225`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, sets, err := parseLogArgs(args)
		if err != nil {
			return err
		}

		ex, ok := gymStore.Exercise(name)
		if !ok {
			return fmt.Errorf("exercise not found: %s", name)
		}

		sess := session.New(gymStore)
		sess.Select(ex)
		for _, set := range sets {
			sess.StageSet(set.Reps, set.Weight)
		}
		r := sess.Commit()

		color.Green("✓ Logged %s for %s", plural(len(sets), "set"), ex.Name)
		fmt.Printf("  %s\n", models.WorkoutEntry(sets).String())
		warnIfUnsaved(cmd, r)
		return nil
	},
}

// parseLogArgs takes the longest run of trailing sets and joins the rest
// into the exercise name.
func parseLogArgs(args []string) (string, []models.SetRecord, error) {
	split := len(args)
	for split > 1 {
		if _, err := parseSet(args[split-1]); err != nil {
			break
		}
		split--
	}
	if split == len(args) {
		_, err := parseSet(args[len(args)-1])
		return "", nil, err
	}

	sets := make([]models.SetRecord, 0, len(args)-split)
	for _, arg := range args[split:] {
		set, _ := parseSet(arg)
		sets = append(sets, set)
	}
	return strings.Join(args[:split], " "), sets, nil
}

// parseSet splits REPSxWEIGHT on the first x.
func parseSet(s string) (models.SetRecord, error) {
	reps, weight, ok := strings.Cut(s, "x")
	reps = strings.TrimSpace(reps)
	weight = strings.TrimSpace(weight)
	if !ok || reps == "" || weight == "" {
		return models.SetRecord{}, fmt.Errorf("invalid set %q (use REPSxWEIGHT, e.g. 10x135)", s)
	}
	return models.NewSetRecord(reps, weight), nil
}

func init() {
	rootCmd.AddCommand(logCmd)
}
