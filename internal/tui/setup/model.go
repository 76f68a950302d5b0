// Package setup provides the interactive editor chooser used by first-time
// setup.
package setup

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/worktree-io/worktree/internal/infra/opener"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type mode int

const (
	modeChoose mode = iota
	modeCustom
)

// Model is the bubbletea model for the setup chooser. After the program
// finishes, Command() returns the chosen editor command template; empty means
// the user skipped editor configuration.
type Model struct {
	editors []opener.Editor
	input   textinput.Model
	command string
	cursor  int
	mode    mode
	done    bool
	aborted bool
}

// New creates a chooser over the detected editors.
func New(editors []opener.Editor) Model {
	input := textinput.New()
	input.Placeholder = `editor command, e.g. "hx ."`
	input.CharLimit = 120
	return Model{editors: editors, input: input}
}

// Command returns the chosen editor command, empty when skipped or aborted.
func (m Model) Command() string {
	if m.aborted {
		return ""
	}
	return m.command
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// choiceCount is detected editors plus "custom" and "skip".
func (m Model) choiceCount() int {
	return len(m.editors) + 2
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.mode == modeCustom {
		return m.updateCustom(keyMsg)
	}
	return m.updateChoose(keyMsg)
}

func (m Model) updateChoose(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.aborted = true
		m.done = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.choiceCount()-1 {
			m.cursor++
		}
	case "enter":
		switch {
		case m.cursor < len(m.editors):
			m.command = m.editors[m.cursor].Command
			m.done = true
			return m, tea.Quit
		case m.cursor == len(m.editors):
			m.mode = modeCustom
			m.input.Focus()
			return m, textinput.Blink
		default:
			// Skip: leave command empty.
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) updateCustom(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.aborted = true
		m.done = true
		return m, tea.Quit
	case "esc":
		m.mode = modeChoose
		m.input.Blur()
		return m, nil
	case "enter":
		m.command = m.input.Value()
		m.done = true
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.done {
		return ""
	}
	if m.mode == modeCustom {
		return titleStyle.Render("Enter a custom editor command") + "\n\n" +
			m.input.View() + "\n\n" +
			dimStyle.Render("enter: confirm • esc: back") + "\n"
	}

	s := titleStyle.Render("Select your default editor or terminal") + "\n\n"
	for i, e := range m.editors {
		s += m.renderChoice(i, e.Name)
	}
	s += m.renderChoice(len(m.editors), "Enter a custom command")
	s += m.renderChoice(len(m.editors)+1, "Skip (no editor configured)")
	s += "\n" + dimStyle.Render("↑/↓: move • enter: select • q: quit") + "\n"
	return s
}

func (m Model) renderChoice(i int, label string) string {
	if i == m.cursor {
		return cursorStyle.Render("> ") + selectedStyle.Render(label) + "\n"
	}
	return "  " + label + "\n"
}
