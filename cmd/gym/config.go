// ABOUTME: CLI commands for reading and writing the gym config file.
// ABOUTME: Supports show and set for backend, data_dir, log_level, charm_host.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/gym/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
	Long: `Show or change settings in ~/.config/gym/config.json.

KEYS:

  backend      sqlite (default), badger, charm, memory
  data_dir     data directory (default ~/.local/share/gym)
  log_level    debug, info, warn (default), error
  charm_host   Charm server for the charm backend

EXAMPLES:

  gym config show
  gym config set backend charm
  gym config set data_dir ""      # back to the default`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		faint := color.New(color.Faint)
		fmt.Println(faint.Sprint(config.GetConfigPath()))
		for _, key := range config.Keys {
			value, _ := cfg.Get(key)
			fmt.Printf("%s %s\n", padRight(key, 12), value)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		color.Green("✓ Set %s", args[0])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)

	rootCmd.AddCommand(configCmd)
}
