// ABOUTME: Single-screen terminal UI for browsing exercises and logging sets.
// ABOUTME: Bubble Tea model driving a Session against the Store.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/harperreed/gym/internal/models"
	"github.com/harperreed/gym/internal/session"
	"github.com/harperreed/gym/internal/store"
)

// Store is what the UI needs from the exercise store.
type Store interface {
	session.Recorder
	Exercises() []models.Exercise
	AddExercise(name string) (*store.Result, error)
}

type persistedMsg struct {
	err error
}

const (
	focusReps = iota
	focusWeight
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	subtitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2563eb"))
	itemStyle     = lipgloss.NewStyle().PaddingLeft(2)
	cursorStyle   = lipgloss.NewStyle().PaddingLeft(1).Bold(true).Foreground(lipgloss.Color("#2563eb"))
	lastStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	setStyle      = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("#22c55e"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca3af")).MarginTop(1)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626"))
)

// Model is the Bubble Tea model for the gym screen.
type Model struct {
	store   Store
	session *session.Session

	newExercise textinput.Model
	reps        textinput.Model
	weight      textinput.Model
	focus       int

	cursor int
	status string
}

// New creates the UI model in the Browsing state.
func New(s Store) Model {
	newExercise := textinput.New()
	newExercise.Placeholder = "New Exercise"
	newExercise.Focus()

	reps := textinput.New()
	reps.Placeholder = "Reps"
	reps.Width = 8

	weight := textinput.New()
	weight.Placeholder = "Weight"
	weight.Width = 8

	return Model{
		store:       s,
		session:     session.New(s),
		newExercise: newExercise,
		reps:        reps,
		weight:      weight,
	}
}

// Run starts the UI and blocks until the user quits.
func Run(s Store) error {
	_, err := tea.NewProgram(New(s)).Run()
	return err
}

// Session exposes the underlying session state.
func (m Model) Session() *session.Session {
	return m.session
}

// Status returns the current status line.
func (m Model) Status() string {
	return m.status
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case persistedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("not saved: %v", msg.err)
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.session.State() == session.Logging {
			return m.updateLogging(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	exercises := m.store.Exercises()

	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		if m.cursor < len(exercises)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		if name := m.newExercise.Value(); name != "" {
			r, err := m.store.AddExercise(name)
			if err != nil {
				m.status = err.Error()
				return m, nil
			}
			m.newExercise.Reset()
			m.status = ""
			m.cursor = len(exercises)
			return m, waitPersist(r)
		}
		if len(exercises) == 0 {
			return m, nil
		}
		if m.cursor >= len(exercises) {
			m.cursor = len(exercises) - 1
		}
		m.session.Select(exercises[m.cursor])
		m.status = ""
		m.newExercise.Blur()
		m.reps.Reset()
		m.weight.Reset()
		m.focus = focusReps
		m.weight.Blur()
		cmd := m.reps.Focus()
		return m, cmd
	}

	var cmd tea.Cmd
	m.newExercise, cmd = m.newExercise.Update(msg)
	return m, cmd
}

func (m Model) updateLogging(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.session.Cancel()
		return m.browse()
	case "ctrl+s":
		r := m.session.Commit()
		var cmd tea.Cmd
		m, cmd = m.browse()
		return m, tea.Batch(cmd, waitPersist(r))
	case "tab", "shift+tab":
		cmd := m.toggleFocus()
		return m, cmd
	case "enter":
		if !m.session.StagePending() {
			m.status = "reps and weight are both required"
			return m, nil
		}
		m.status = ""
		m.reps.Reset()
		m.weight.Reset()
		var cmd tea.Cmd
		if m.focus != focusReps {
			cmd = m.toggleFocus()
		}
		return m, cmd
	}

	var cmd tea.Cmd
	if m.focus == focusReps {
		m.reps, cmd = m.reps.Update(msg)
	} else {
		m.weight, cmd = m.weight.Update(msg)
	}
	m.session.SetReps(m.reps.Value())
	m.session.SetWeight(m.weight.Value())
	return m, cmd
}

// browse returns the view to the exercise list.
func (m Model) browse() (Model, tea.Cmd) {
	m.reps.Blur()
	m.weight.Blur()
	m.reps.Reset()
	m.weight.Reset()
	cmd := m.newExercise.Focus()
	return m, cmd
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == focusReps {
		m.focus = focusWeight
		m.reps.Blur()
		return m.weight.Focus()
	}
	m.focus = focusReps
	m.weight.Blur()
	return m.reps.Focus()
}

func waitPersist(r *store.Result) tea.Cmd {
	if r == nil {
		return nil
	}
	return func() tea.Msg {
		return persistedMsg{err: r.Err()}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Minimal Gym Tracker"))
	b.WriteString("\n")

	if selected, ok := m.session.Selected(); ok {
		m.viewLogging(&b, selected)
	} else {
		m.viewBrowsing(&b)
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.status))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewBrowsing(b *strings.Builder) {
	b.WriteString(m.newExercise.View())
	b.WriteString("\n\n")

	exercises := m.store.Exercises()
	if len(exercises) == 0 {
		b.WriteString(lastStyle.Render("No exercises yet."))
		b.WriteString("\n")
	}
	for i, e := range exercises {
		line := e.Name
		if last, ok := e.Last(); ok {
			line += "  " + lastStyle.Render("Last: "+last.String())
		}
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter add/select • ↑/↓ move • esc quit"))
}

func (m Model) viewLogging(b *strings.Builder, selected models.Exercise) {
	b.WriteString(subtitleStyle.Render(selected.Name))
	b.WriteString("\n")
	if last, ok := selected.Last(); ok {
		b.WriteString(lastStyle.Render("Last: " + last.String()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.reps.View())
	b.WriteString("  ")
	b.WriteString(m.weight.View())
	b.WriteString("\n\n")

	for _, s := range m.session.Pending() {
		b.WriteString(setStyle.Render(fmt.Sprintf("%s reps @ %s", s.Reps, s.Weight)))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter add set • tab switch field • ctrl+s save workout • esc cancel"))
}
