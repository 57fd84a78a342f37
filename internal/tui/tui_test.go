// ABOUTME: Tests for the terminal UI model.
// ABOUTME: Drives key messages through Update and checks store and session state.
package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/harperreed/gym/internal/kv"
	"github.com/harperreed/gym/internal/models"
	"github.com/harperreed/gym/internal/session"
	"github.com/harperreed/gym/internal/store"
)

func setupTestModel(t *testing.T) (Model, *store.Store) {
	t.Helper()
	s := store.New(kv.NewMemory(), nil)
	t.Cleanup(func() { _ = s.Close() })
	return New(s), s
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want Model", next)
		}
	}
	return m
}

func typeText(text string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
}

func key(k tea.KeyType) tea.Msg {
	return tea.KeyMsg{Type: k}
}

func TestAddExerciseFromInput(t *testing.T) {
	m, s := setupTestModel(t)

	m = send(t, m, typeText("Bench Press"), key(tea.KeyEnter))

	exercises := s.Exercises()
	if len(exercises) != 1 || exercises[0].Name != "Bench Press" {
		t.Fatalf("Exercises() = %+v", exercises)
	}
	if m.newExercise.Value() != "" {
		t.Errorf("input not cleared: %q", m.newExercise.Value())
	}
	if m.Session().State() != session.Browsing {
		t.Errorf("State() = %v, want browsing", m.Session().State())
	}
}

func TestBlankInputDoesNotAdd(t *testing.T) {
	m, s := setupTestModel(t)

	m = send(t, m, typeText("   "), key(tea.KeyEnter))

	if n := len(s.Exercises()); n != 0 {
		t.Errorf("len(Exercises()) = %d, want 0", n)
	}
	if m.Session().State() != session.Browsing {
		t.Errorf("State() = %v, want browsing", m.Session().State())
	}
}

func TestBlankInputDoesNotSelect(t *testing.T) {
	m, s := setupTestModel(t)
	_, _ = s.AddExercise("Squat")

	m = send(t, m, typeText("   "), key(tea.KeyEnter))

	if m.Session().State() != session.Browsing {
		t.Errorf("State() = %v, want browsing", m.Session().State())
	}
	if n := len(s.Exercises()); n != 1 {
		t.Errorf("len(Exercises()) = %d, want 1", n)
	}
	if !strings.Contains(m.Status(), "blank") {
		t.Errorf("Status() = %q, want blank-name message", m.Status())
	}
}

func TestDuplicateShowsStatus(t *testing.T) {
	m, _ := setupTestModel(t)

	m = send(t, m, typeText("Row"), key(tea.KeyEnter), typeText("Row"), key(tea.KeyEnter))

	if !strings.Contains(m.Status(), "already exists") {
		t.Errorf("Status() = %q, want duplicate message", m.Status())
	}
}

func TestLogWorkoutFlow(t *testing.T) {
	m, s := setupTestModel(t)
	_, _ = s.AddExercise("Squat")
	_, _ = s.AddExercise("Bench Press")

	m = send(t, m, key(tea.KeyDown), key(tea.KeyEnter))
	selected, ok := m.Session().Selected()
	if !ok || selected.Name != "Bench Press" {
		t.Fatalf("Selected() = %+v, %v", selected, ok)
	}

	m = send(t, m,
		typeText("10"), key(tea.KeyTab), typeText("135"), key(tea.KeyEnter),
		typeText("8"), key(tea.KeyTab), typeText("145"), key(tea.KeyEnter),
	)
	if got := m.Session().Pending(); len(got) != 2 || got[1] != models.NewSetRecord("8", "145") {
		t.Fatalf("Pending() = %v", got)
	}
	if !strings.Contains(m.View(), "10 reps @ 135") {
		t.Errorf("View() missing staged set:\n%s", m.View())
	}

	m = send(t, m, key(tea.KeyCtrlS))

	if m.Session().State() != session.Browsing {
		t.Errorf("State() = %v, want browsing", m.Session().State())
	}
	bench := s.Exercises()[1]
	if len(bench.History) != 1 || bench.History[0].String() != "10x135, 8x145" {
		t.Errorf("History = %v", bench.History)
	}
	if !strings.Contains(m.View(), "Last: 10x135, 8x145") {
		t.Errorf("View() missing last workout:\n%s", m.View())
	}
}

func TestStagingRequiresBothFields(t *testing.T) {
	m, s := setupTestModel(t)
	_, _ = s.AddExercise("Curl")

	m = send(t, m, key(tea.KeyEnter), typeText("12"), key(tea.KeyEnter))

	if n := len(m.Session().Pending()); n != 0 {
		t.Errorf("len(Pending()) = %d, want 0", n)
	}
	if m.Status() == "" {
		t.Error("expected a status message")
	}
	if m.Session().Reps() != "12" {
		t.Errorf("Reps() = %q, want 12", m.Session().Reps())
	}
}

func TestCancelLeavesHistory(t *testing.T) {
	m, s := setupTestModel(t)
	_, _ = s.AddExercise("Deadlift")

	m = send(t, m,
		key(tea.KeyEnter),
		typeText("5"), key(tea.KeyTab), typeText("315"), key(tea.KeyEnter),
		key(tea.KeyEsc),
	)

	if m.Session().State() != session.Browsing {
		t.Errorf("State() = %v, want browsing", m.Session().State())
	}
	if h := s.Exercises()[0].History; len(h) != 0 {
		t.Errorf("History = %v, want empty", h)
	}
}

func TestPersistFailureShown(t *testing.T) {
	m, _ := setupTestModel(t)

	m = send(t, m, persistedMsg{err: errors.New("disk full")})
	if !strings.Contains(m.View(), "not saved: disk full") {
		t.Errorf("View() missing failure:\n%s", m.View())
	}
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := setupTestModel(t)

	_, cmd := m.Update(key(tea.KeyCtrlC))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
