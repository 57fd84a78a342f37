// ABOUTME: MCP resource implementations for the exercise log.
// ABOUTME: Provides gym://exercises and gym://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// gym://exercises - every exercise with full history
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "gym://exercises",
		Name:        "Exercise Log",
		Description: "All exercises with their complete workout history",
		MIMEType:    "application/json",
	}, s.handleExercisesResource)

	// gym://summary - last workout per exercise
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "gym://summary",
		Name:        "Exercise Summary",
		Description: "Most recent workout for each exercise",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleExercisesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource("gym://exercises", s.store.Exercises())
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	exercises := s.store.Exercises()

	latest := make(map[string]interface{}, len(exercises))
	logged := 0
	for _, e := range exercises {
		last, ok := e.Last()
		if !ok {
			latest[e.Name] = nil
			continue
		}
		logged++
		latest[e.Name] = map[string]interface{}{
			"sets":     last,
			"workouts": len(e.History),
		}
	}

	result := map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
		"latest":       latest,
		"summary": map[string]int{
			"exercises":        len(exercises),
			"exercises_logged": logged,
		},
	}
	return jsonResource("gym://summary", result)
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
