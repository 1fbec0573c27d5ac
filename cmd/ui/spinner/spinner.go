package spinner

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type doneMsg struct{ err error }

type model struct {
	spinner  spinner.Model
	quitting bool
	done     bool
	err      error
	message  string
}

func InitialModel(message string) model {
	s := spinner.New()
	s.Spinner = spinner.Line
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6"))
	return model{
		spinner: s,
		message: message,
	}
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		default:
			return m, nil
		}

	case doneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit

	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m model) View() string {
	if m.done {
		return ""
	}
	str := fmt.Sprintf("%s %s", m.spinner.View(), m.message)
	if m.quitting {
		return str + "\n"
	}
	return str
}

// Run shows the spinner on stderr while fn runs and returns fn's error.
func Run(message string, fn func() error) error {
	p := tea.NewProgram(InitialModel(message), tea.WithOutput(os.Stderr), tea.WithInput(nil))

	go func() {
		p.Send(doneMsg{err: fn()})
	}()

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running spinner: %w", err)
	}
	return final.(model).err
}
