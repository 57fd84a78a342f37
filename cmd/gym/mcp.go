// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server over the exercise store.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/gym/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server on stdin/stdout.

CLIENT CONFIGURATION:

  {
    "mcpServers": {
      "gym": {
        "command": "gym",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  list_exercises   List exercises with their last workout
  add_exercise     Create an exercise
  log_workout      Record a workout of reps/weight sets
  get_exercise     Get an exercise with full history

AVAILABLE RESOURCES:

  gym://exercises  Every exercise with full history
  gym://summary    Most recent workout per exercise`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(gymStore)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
