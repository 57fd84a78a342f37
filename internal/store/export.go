// ABOUTME: Export and import of the exercise log.
// ABOUTME: Supports JSON, YAML, and Markdown export; import merges by exercise name.
package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/gym/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for the exercise log.
type ExportData struct {
	Version    string            `json:"version" yaml:"version"`
	ExportedAt time.Time         `json:"exported_at" yaml:"exported_at"`
	Tool       string            `json:"tool" yaml:"tool"`
	Exercises  []models.Exercise `json:"exercises" yaml:"exercises"`
}

// GetAllData snapshots every exercise for export.
func (s *Store) GetAllData() *ExportData {
	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "gym",
		Exercises:  s.Exercises(),
	}
}

// ExportJSON renders all data as indented JSON.
func (s *Store) ExportJSON() ([]byte, error) {
	data, err := json.MarshalIndent(s.GetAllData(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	return data, nil
}

// ExportYAML renders all data as YAML.
func (s *Store) ExportYAML() ([]byte, error) {
	data, err := yaml.Marshal(s.GetAllData())
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}
	return data, nil
}

// ExportMarkdown renders one table per exercise. A non-empty name limits
// the export to exercises with that name.
func (s *Store) ExportMarkdown(name string) string {
	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Gym Export - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	for _, e := range s.Exercises() {
		if name != "" && e.Name != name {
			continue
		}
		sb.WriteString(fmt.Sprintf("## %s\n\n", e.Name))
		if len(e.History) == 0 {
			sb.WriteString("No workouts logged.\n\n")
			continue
		}
		sb.WriteString("| # | Sets |\n")
		sb.WriteString("|---|------|\n")
		for i, w := range e.History {
			sb.WriteString(fmt.Sprintf("| %d | %s |\n", i+1, w.String()))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// ImportJSON parses a JSON export and merges it.
func (s *Store) ImportJSON(data []byte) (int, *Result, error) {
	var export ExportData
	if err := json.Unmarshal(data, &export); err != nil {
		return 0, nil, fmt.Errorf("parse export: %w", err)
	}
	n, r := s.ImportData(&export)
	return n, r, nil
}

// ImportData appends every exported exercise whose name is not already
// present, history included, and persists once. It returns how many were added.
func (s *Store) ImportData(data *ExportData) (int, *Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := make(map[string]bool, len(s.exercises))
	for _, e := range s.exercises {
		existing[e.Name] = true
	}

	added := 0
	for _, e := range normalize(data.Exercises) {
		if existing[e.Name] || strings.TrimSpace(e.Name) == "" {
			continue
		}
		existing[e.Name] = true
		s.exercises = append(s.exercises, e)
		added++
	}
	return added, s.persistLocked()
}
