// ABOUTME: CLI commands for exporting and importing the exercise log.
// ABOUTME: Supports JSON, YAML, and Markdown export; import reads JSON backups.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	exportOutput   string
	exportExercise string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export the exercise log",
	Long: `Export every exercise and its history.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)
  markdown   Markdown tables (for sharing)

OPTIONS:

  --output, -o     Write to file instead of stdout
  --exercise, -e   Only this exercise (markdown only)

EXAMPLES:

  gym export json                  # Export all data as JSON
  gym export json -o backup.json   # Save to file
  gym export yaml                  # Export as YAML
  gym export markdown -e Squat     # Squat history as a table`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		var data []byte
		var err error

		switch format {
		case "json":
			data, err = gymStore.ExportJSON()
		case "yaml":
			data, err = gymStore.ExportYAML()
		case "markdown":
			data = []byte(gymStore.ExportMarkdown(exportExercise))
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
		}

		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import exercises from JSON",
	Long: `Import exercises from a JSON file written by 'gym export json'.

Exercises whose name already exists are skipped; everything else is
appended with its full history.

EXAMPLES:

  gym import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		added, r, err := gymStore.ImportJSON(data)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported %s from %s", plural(added, "exercise"), filename)
		warnIfUnsaved(cmd, r)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVarP(&exportExercise, "exercise", "e", "", "only this exercise (markdown only)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
