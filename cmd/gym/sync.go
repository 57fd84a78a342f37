// ABOUTME: CLI commands for Charm-based sync.
// ABOUTME: Supports status, now, and reset when the charm backend is active.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/gym/internal/kv"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:     "sync",
	Aliases: []string{"s"},
	Short:   "Sync the exercise log across devices",
	Long: `Sync the exercise log using Charm Cloud.

Only the charm backend syncs. Select it with --backend charm or
"backend": "charm" in ~/.config/gym/config.json. Data is E2E encrypted
with your SSH key before upload, and syncs after every write unless
--no-sync is given, in which case it syncs once on exit.

COMMANDS:

  status      Show account and local data info
  now         Sync immediately
  reset       Reset local data and restore from cloud (destructive)`,
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ok := charmBackend()
		if !ok {
			return nil
		}

		id, err := c.ID()
		if err != nil {
			color.Yellow("Not linked to Charm")
			fmt.Println("\nRun 'charm link' to connect this device.")
			return nil
		}

		fmt.Println("Charm ID:", id)
		color.Green("✓ Connected to Charm")
		fmt.Printf("  Exercises: %d\n", len(gymStore.Exercises()))
		return nil
	},
}

var syncNowCmd = &cobra.Command{
	Use:   "now",
	Short: "Sync immediately",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ok := charmBackend()
		if !ok {
			return nil
		}
		if err := c.Sync(); err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		color.Green("✓ Synced")
		return nil
	},
}

var syncResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset local data and restore from cloud",
	Long: `Delete all local data and restore from Charm Cloud.

This is a destructive operation. Workouts that never reached the cloud
are lost.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ok := charmBackend()
		if !ok {
			return nil
		}

		// Confirm
		fmt.Println("This will DELETE all local gym data and restore from cloud.")
		fmt.Print("Continue? [y/N]: ")
		var confirm string
		_, _ = fmt.Scanln(&confirm)
		if confirm != "y" && confirm != "Y" {
			fmt.Println("Canceled.")
			return nil
		}

		if err := c.Reset(); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
		color.Green("✓ Local data reset and restored from cloud")
		return nil
	},
}

// charmBackend returns the active Charm backend, or explains how to enable one.
func charmBackend() (*kv.Charm, bool) {
	c, ok := backend.(*kv.Charm)
	if !ok {
		color.Yellow("Sync needs the charm backend")
		fmt.Println("\nRun with --backend charm, or set \"backend\": \"charm\" in the config file.")
	}
	return c, ok
}

func init() {
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncNowCmd)
	syncCmd.AddCommand(syncResetCmd)

	rootCmd.AddCommand(syncCmd)
}
