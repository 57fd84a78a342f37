// ABOUTME: MCP tool implementations for exercises and workouts.
// ABOUTME: Logging a workout runs a Session the same way the UI does.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/harperreed/gym/internal/models"
	"github.com/harperreed/gym/internal/session"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List all exercises with their most recent workout",
	}, s.handleListExercises)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Create a new exercise to track",
	}, s.handleAddExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_workout",
		Description: "Record a workout (a list of reps/weight sets) for an existing exercise",
	}, s.handleLogWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_exercise",
		Description: "Get an exercise with its full workout history",
	}, s.handleGetExercise)
}

// Tool input/output types

type listExercisesInput struct{}

type exerciseSummary struct {
	Name     string `json:"name"`
	Workouts int    `json:"workouts"`
	Last     string `json:"last,omitempty"`
}

type listExercisesOutput struct {
	Exercises []exerciseSummary `json:"exercises"`
}

type addExerciseInput struct {
	Name string `json:"name" jsonschema:"Name of the exercise, e.g. Bench Press"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type setInput struct {
	Reps   string `json:"reps" jsonschema:"Repetitions, as text"`
	Weight string `json:"weight" jsonschema:"Weight, as text"`
}

type logWorkoutInput struct {
	Exercise string     `json:"exercise" jsonschema:"Exact exercise name"`
	Sets     []setInput `json:"sets" jsonschema:"Sets in the order performed"`
}

type logWorkoutOutput struct {
	Exercise string `json:"exercise"`
	Sets     int    `json:"sets"`
	Skipped  int    `json:"skipped"`
	Message  string `json:"message"`
}

type getExerciseInput struct {
	Name string `json:"name" jsonschema:"Exact exercise name"`
}

// Tool handlers

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input listExercisesInput) (*mcp.CallToolResult, listExercisesOutput, error) {
	exercises := s.store.Exercises()
	out := listExercisesOutput{Exercises: make([]exerciseSummary, 0, len(exercises))}
	for _, e := range exercises {
		summary := exerciseSummary{Name: e.Name, Workouts: len(e.History)}
		if last, ok := e.Last(); ok {
			summary.Last = last.String()
		}
		out.Exercises = append(out.Exercises, summary)
	}
	return nil, out, nil
}

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, simpleOutput, error) {
	r, err := s.store.AddExercise(input.Name)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to add exercise: %w", err)
	}
	if err := r.Wait(ctx); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("added %s but failed to save: %w", input.Name, err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Added exercise: %s", input.Name),
	}, nil
}

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, input logWorkoutInput) (*mcp.CallToolResult, logWorkoutOutput, error) {
	ex, ok := s.store.Exercise(input.Exercise)
	if !ok {
		return nil, logWorkoutOutput{}, fmt.Errorf("exercise not found: %s", input.Exercise)
	}

	sess := session.New(s.store)
	sess.Select(ex)

	skipped := 0
	for _, set := range input.Sets {
		if !sess.StageSet(strings.TrimSpace(set.Reps), strings.TrimSpace(set.Weight)) {
			skipped++
		}
	}
	staged := len(sess.Pending())
	if staged == 0 {
		sess.Cancel()
		return nil, logWorkoutOutput{}, fmt.Errorf("no valid sets: each set needs reps and weight")
	}

	if err := sess.Commit().Wait(ctx); err != nil {
		return nil, logWorkoutOutput{}, fmt.Errorf("recorded workout but failed to save: %w", err)
	}

	return nil, logWorkoutOutput{
		Exercise: ex.Name,
		Sets:     staged,
		Skipped:  skipped,
		Message:  fmt.Sprintf("Logged %d sets for %s", staged, ex.Name),
	}, nil
}

func (s *Server) handleGetExercise(ctx context.Context, req *mcp.CallToolRequest, input getExerciseInput) (*mcp.CallToolResult, models.Exercise, error) {
	ex, ok := s.store.Exercise(input.Name)
	if !ok {
		return nil, models.Exercise{}, fmt.Errorf("exercise not found: %s", input.Name)
	}
	return nil, ex, nil
}
