package multiInput

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ElsiKora/Setup-Wizard-sub001/cmd/steps"
)

var (
	focusedStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6")).Bold(true)
	titleStyle            = lipgloss.NewStyle().Background(lipgloss.Color("#01FAC6")).Foreground(lipgloss.Color("#030303")).Bold(true).Padding(0, 1, 0)
	groupStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color("#40BDA3")).Bold(true).Underline(true)
	selectedItemStyle     = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
	selectedItemDescStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170"))
	descriptionStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	problemStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	hintStyle             = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true)
)

// ErrCancelled is returned when the user leaves the menu without confirming
var ErrCancelled = errors.New("selection cancelled")

type model struct {
	cursor    int
	choices   []steps.Item
	selected  map[int]struct{}
	header    string
	problems  []string
	required  bool
	hint      string
	exit      bool
	confirmed bool
}

func (m model) Init() tea.Cmd {
	return nil
}

// InitialModelMultiSelect builds the menu with the options whose flags are in
// initial already checked.
func InitialModelMultiSelect(schema steps.StepSchema, initial []string, required bool, problems []string) model {
	want := make(map[string]struct{}, len(initial))
	for _, v := range initial {
		want[v] = struct{}{}
	}

	m := model{
		choices:  schema.Options,
		selected: make(map[int]struct{}),
		header:   titleStyle.Render(schema.Headers),
		problems: problems,
		required: required,
		cursor:   -1,
	}
	for i, item := range schema.Options {
		if item.Group {
			continue
		}
		if m.cursor < 0 {
			m.cursor = i
		}
		if _, ok := want[item.Flag]; ok || item.Locked {
			m.selected[i] = struct{}{}
		}
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m
}

func (m model) move(delta int) int {
	for i := m.cursor + delta; i >= 0 && i < len(m.choices); i += delta {
		if !m.choices[i].Group {
			return i
		}
	}
	return m.cursor
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.hint = ""
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.exit = true
			return m, tea.Quit
		case "up", "k":
			m.cursor = m.move(-1)
		case "down", "j":
			m.cursor = m.move(1)
		case " ", "space":
			if m.cursor >= len(m.choices) || m.choices[m.cursor].Group {
				return m, nil
			}
			if m.choices[m.cursor].Locked {
				m.hint = m.choices[m.cursor].Title + " is required and stays selected."
				return m, nil
			}
			if _, ok := m.selected[m.cursor]; ok {
				delete(m.selected, m.cursor)
			} else {
				m.selected[m.cursor] = struct{}{}
			}
		case "a":
			all := len(m.selected) < len(steps.StepSchema{Options: m.choices}.Values())
			m.selected = make(map[int]struct{})
			for i, item := range m.choices {
				if !item.Group && (all || item.Locked) {
					m.selected[i] = struct{}{}
				}
			}
		case "enter", "y":
			if m.required && len(m.selected) == 0 {
				m.hint = "Select at least one option."
				return m, nil
			}
			m.confirmed = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// Values returns the checked flags in option order
func (m model) Values() []string {
	values := []string{}
	for i, item := range m.choices {
		if _, ok := m.selected[i]; ok {
			values = append(values, item.Flag)
		}
	}
	return values
}

func (m model) View() string {
	var s strings.Builder
	s.WriteString(m.header + "\n\n")

	for _, p := range m.problems {
		s.WriteString(problemStyle.Render("✗ "+p) + "\n")
	}
	if len(m.problems) > 0 {
		s.WriteString("\n")
	}

	for i, choice := range m.choices {
		if choice.Group {
			s.WriteString(groupStyle.Render(choice.Title) + "\n")
			continue
		}

		cursor := " "
		title := focusedStyle.Render(choice.Title)
		description := descriptionStyle.Render(choice.Desc)
		if m.cursor == i {
			cursor = focusedStyle.Render(">")
			title = selectedItemStyle.Render(choice.Title)
			description = selectedItemDescStyle.Render(choice.Desc)
		}

		checked := " "
		if _, ok := m.selected[i]; ok {
			checked = focusedStyle.Render("X")
		}
		if choice.Locked {
			description += " " + hintStyle.Render("(required)")
		}

		s.WriteString(fmt.Sprintf("%s [%s] %s %s\n", cursor, checked, title, description))
	}

	if m.hint != "" {
		s.WriteString("\n" + hintStyle.Render(m.hint) + "\n")
	}
	s.WriteString(fmt.Sprintf("\nPress %s to select, %s to toggle all, %s to confirm choice, %s to exit.\n\n",
		focusedStyle.Render("space"), focusedStyle.Render("a"), focusedStyle.Render("enter/y"), focusedStyle.Render("esc/q")))
	return s.String()
}

// ShowMultiSelect runs the menu and returns the confirmed flags
func ShowMultiSelect(schema steps.StepSchema, initial []string, required bool, problems []string) ([]string, error) {
	m := InitialModelMultiSelect(schema, initial, required, problems)

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("error running multi-select menu: %w", err)
	}

	final := finalModel.(model)
	if final.exit || !final.confirmed {
		return nil, ErrCancelled
	}

	return final.Values(), nil
}
