// ABOUTME: Root Cobra command for gym CLI.
// ABOUTME: Opens the configured backend and Store via PersistentPre/PostRunE.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/harperreed/gym/internal/config"
	"github.com/harperreed/gym/internal/kv"
	"github.com/harperreed/gym/internal/store"
	"github.com/spf13/cobra"
)

var (
	backend  kv.Backend
	gymStore *store.Store
	logger   *log.Logger

	flagBackend string
	flagDataDir string
	flagVerbose bool
	flagNoSync  bool
)

var rootCmd = &cobra.Command{
	Use:   "gym",
	Short: "Minimal gym workout logger",
	Long: `Gym is a minimal tracker for exercises and the sets you lift.

Every exercise keeps its full workout history. A workout is the list of
sets you did in one go, each set being reps and weight.

QUICK START:

  $ gym                                   # Open the interactive logger
  $ gym add Bench Press                   # Create an exercise
  $ gym log "Bench Press" 10x135 8x145    # Log a workout of two sets
  $ gym list                              # Exercises with their last workout
  $ gym show "Bench Press"                # Full history

STORAGE:

  Data is stored under ~/.local/share/gym by default. Choose a backend
  with --backend or in ~/.config/gym/config.json:

    sqlite   single-file database (default)
    badger   embedded key-value store
    charm    Charm KV, synced to Charm Cloud after each write
    memory   nothing is kept after exit

MCP INTEGRATION:

  Run 'gym mcp' to start the Model Context Protocol server on stdio.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if !needsStore(cmd) {
			return nil
		}
		return openStore(cmd.Context())
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStore()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUI()
	},
}

// Execute runs the root command and always releases the store.
func Execute() error {
	err := rootCmd.Execute()
	if cerr := closeStore(); err == nil {
		err = cerr
	}
	return err
}

func needsStore(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion":
		return false
	}
	if p := cmd.Parent(); p != nil && (p.Name() == "completion" || p.Name() == "config") {
		return false
	}
	return true
}

func openStore(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if flagBackend != "" {
		cfg.Backend = flagBackend
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}

	level, err := cfg.GetLogLevel()
	if err != nil {
		return err
	}
	if flagVerbose {
		level = log.DebugLevel
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "gym",
		Level:  level,
	})

	backend, err = cfg.OpenBackend(logger)
	if err != nil {
		return fmt.Errorf("failed to open %s backend: %w", cfg.GetBackend(), err)
	}
	logger.Debug("opened backend", "backend", cfg.GetBackend(), "data_dir", cfg.GetDataDir())
	applyNoSync(backend, flagNoSync)

	gymStore = store.New(backend, logger)
	if ctx == nil {
		ctx = context.Background()
	}
	// Load failures are logged by the store and start an empty log.
	_ = gymStore.Load(ctx)
	return nil
}

// applyNoSync turns off per-write sync on backends that have it.
func applyNoSync(b kv.Backend, noSync bool) {
	if s, ok := b.(kv.AutoSyncer); ok && noSync {
		s.SetAutoSync(false)
	}
}

func closeStore() error {
	if gymStore == nil {
		return nil
	}
	err := gymStore.Close()
	gymStore = nil
	backend = nil
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend: sqlite, badger, charm, memory")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default ~/.local/share/gym)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoSync, "no-sync", false, "charm backend: sync once on exit instead of after every write")
}
