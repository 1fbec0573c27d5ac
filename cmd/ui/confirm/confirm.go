package confirm

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle       = lipgloss.NewStyle().Background(lipgloss.Color("#01FAC6")).Foreground(lipgloss.Color("#030303")).Bold(true).Padding(0, 1, 0)
	focusedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6")).Bold(true)
	descriptionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#40BDA3"))
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
)

// Prompt is a yes/no question with optional supporting lines shown in a box
type Prompt struct {
	Title    string
	Lines    []string
	Question string
	Default  bool
}

type model struct {
	prompt    Prompt
	answer    bool
	answered  bool
	cancelled bool
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "y", "Y":
			m.answer, m.answered = true, true
			return m, tea.Quit
		case "n", "N":
			m.answer, m.answered = false, true
			return m, tea.Quit
		case "enter":
			m.answer, m.answered = m.prompt.Default, true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	var s strings.Builder

	if m.prompt.Title != "" {
		s.WriteString(titleStyle.Render(m.prompt.Title))
		s.WriteString("\n\n")
	}

	if len(m.prompt.Lines) > 0 {
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#01FAC6")).
			Padding(1, 2).
			Width(60)

		var content strings.Builder
		for _, line := range m.prompt.Lines {
			content.WriteString(successStyle.Render("  ✓ "))
			content.WriteString(descriptionStyle.Render(line))
			content.WriteString("\n")
		}
		s.WriteString(box.Render(strings.TrimRight(content.String(), "\n")))
		s.WriteString("\n\n")
	}

	s.WriteString(focusedStyle.Render(m.prompt.Question))
	s.WriteString("\n\n")

	yes, no := "y", "n"
	if m.prompt.Default {
		yes = "Y"
	} else {
		no = "N"
	}
	s.WriteString(helpStyle.Render("Press "))
	s.WriteString(focusedStyle.Render(yes))
	s.WriteString(helpStyle.Render(" for yes, "))
	s.WriteString(focusedStyle.Render(no))
	s.WriteString(helpStyle.Render(" for no, "))
	s.WriteString(focusedStyle.Render("enter"))
	s.WriteString(helpStyle.Render(" for the default, or "))
	s.WriteString(focusedStyle.Render("q"))
	s.WriteString(helpStyle.Render(" to quit"))

	return s.String()
}

// Ask shows the prompt and returns the answer. cancelled is true when the
// user quit without answering.
func Ask(p Prompt) (answer bool, cancelled bool, err error) {
	prog := tea.NewProgram(model{prompt: p}, tea.WithAltScreen())
	finalModel, err := prog.Run()
	if err != nil {
		return false, false, fmt.Errorf("error showing prompt: %w", err)
	}

	final := finalModel.(model)
	if final.cancelled || !final.answered {
		return false, true, nil
	}
	return final.answer, false, nil
}
