package selection

import (
	"context"
	"fmt"
	"strings"

	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/capability"
)

// AutoPrompter answers every prompt without a terminal. Confirmations take
// their default and a selection takes its initial and locked features. It
// cannot correct a rejected selection, so a request carrying problems is
// aborted.
type AutoPrompter struct{}

func (AutoPrompter) Confirm(ctx context.Context, _ string, defaultValue bool) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return defaultValue, nil
}

func (AutoPrompter) SelectMany(ctx context.Context, req SelectRequest) ([]capability.FeatureID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(req.Problems) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrAborted, strings.Join(req.Problems, "; "))
	}
	out := make([]capability.FeatureID, 0, len(req.Initial)+len(req.Locked))
	seen := make(map[capability.FeatureID]bool, cap(out))
	for _, id := range append(append([]capability.FeatureID{}, req.Initial...), req.Locked...) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out, nil
}
