package spinner

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestModel_Done(t *testing.T) {
	m := InitialModel("Detecting frameworks...")
	assert.Contains(t, m.View(), "Detecting frameworks...")

	boom := errors.New("boom")
	next, cmd := m.Update(doneMsg{err: boom})
	assert.NotNil(t, cmd)

	final := next.(model)
	assert.True(t, final.done)
	assert.Equal(t, boom, final.err)
	assert.Empty(t, final.View())
}

func TestModel_CtrlC(t *testing.T) {
	next, cmd := InitialModel("working").Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd)
	assert.True(t, next.(model).quitting)
	assert.Contains(t, next.(model).View(), "\n")
}
