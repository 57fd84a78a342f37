// ABOUTME: Serialized format for the exercise sequence (JSON, no version field).
// ABOUTME: Empty histories and entries always encode as [] rather than null.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/harperreed/gym/internal/models"
)

// Encode serializes the full exercise sequence.
func Encode(exercises []models.Exercise) ([]byte, error) {
	data, err := json.Marshal(normalize(exercises))
	if err != nil {
		return nil, fmt.Errorf("marshal exercises: %w", err)
	}
	return data, nil
}

// Decode parses a serialized exercise sequence. Blank input decodes to an
// empty sequence.
func Decode(data []byte) ([]models.Exercise, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []models.Exercise{}, nil
	}
	var exercises []models.Exercise
	if err := json.Unmarshal(data, &exercises); err != nil {
		return nil, fmt.Errorf("unmarshal exercises: %w", err)
	}
	return normalize(exercises), nil
}

// normalize deep-copies exercises so nil slices become empty ones.
func normalize(exercises []models.Exercise) []models.Exercise {
	out := make([]models.Exercise, len(exercises))
	for i, e := range exercises {
		out[i] = e.Clone()
	}
	return out
}
