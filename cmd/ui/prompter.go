// Package ui wires the terminal widgets into the wizard's prompting interface.
package ui

import (
	"context"
	"errors"
	"os"

	"golang.org/x/term"

	"github.com/ElsiKora/Setup-Wizard-sub001/cmd/steps"
	"github.com/ElsiKora/Setup-Wizard-sub001/cmd/ui/confirm"
	"github.com/ElsiKora/Setup-Wizard-sub001/cmd/ui/multiInput"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/capability"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/selection"
)

// IsInteractive reports whether stdin and stdout are terminals a user can
// answer prompts on.
func IsInteractive() bool {
	if os.Getenv("CI") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalPrompter asks questions with full-screen terminal menus
type TerminalPrompter struct{}

func (TerminalPrompter) Confirm(ctx context.Context, message string, defaultValue bool) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	answer, cancelled, err := confirm.Ask(confirm.Prompt{
		Title:    "Setup Wizard",
		Question: message,
		Default:  defaultValue,
	})
	if err != nil {
		return false, err
	}
	if cancelled {
		return false, selection.ErrAborted
	}
	return answer, nil
}

func (TerminalPrompter) SelectMany(ctx context.Context, req selection.SelectRequest) ([]capability.FeatureID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	schema := steps.StepSchema{
		StepName: "Features",
		Options:  steps.FeatureItems(req.Groups),
		Headers:  req.Message,
	}
	initial := make([]string, 0, len(req.Initial)+len(req.Locked))
	for _, id := range append(append([]capability.FeatureID{}, req.Initial...), req.Locked...) {
		initial = append(initial, string(id))
	}

	values, err := multiInput.ShowMultiSelect(schema, initial, req.Required, req.Problems)
	if errors.Is(err, multiInput.ErrCancelled) {
		return nil, selection.ErrAborted
	}
	if err != nil {
		return nil, err
	}

	ids := make([]capability.FeatureID, len(values))
	for i, v := range values {
		ids[i] = capability.FeatureID(v)
	}
	return ids, nil
}
