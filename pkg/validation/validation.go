// Package validation checks a feature selection against cross-feature
// constraints.
package validation

import (
	"fmt"
	"strings"

	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/capability"
)

// Result is the outcome of Validate. A result without reasons is valid.
type Result struct {
	Reasons []string
}

// Valid reports whether no constraint was violated
func (r Result) Valid() bool {
	return len(r.Reasons) == 0
}

// Err returns nil for a valid result and an *Error otherwise.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return &Error{Reasons: append([]string(nil), r.Reasons...)}
}

// Error is returned when a selection violates one or more constraints.
type Error struct {
	Reasons []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid feature selection: %s", strings.Join(e.Reasons, "; "))
}

// Validate checks every selected feature that requires a capability against
// the frameworks that were detected. It never modifies selection.
func Validate(reg *capability.Registry, selection []capability.FeatureID, detected []capability.FrameworkID) Result {
	var result Result
	for _, id := range selection {
		f, ok := reg.Feature(id)
		if !ok || f.RequiresCapability == "" {
			continue
		}
		if !provided(reg, detected, f.RequiresCapability) {
			result.Reasons = append(result.Reasons,
				fmt.Sprintf("`%s` requires %s, but %s is not detected", id, f.RequiresCapability, f.RequiresCapability))
		}
	}
	return result
}

func provided(reg *capability.Registry, detected []capability.FrameworkID, c capability.Capability) bool {
	for _, id := range detected {
		if fw, ok := reg.Framework(id); ok && fw.ProvidesCapability(c) {
			return true
		}
	}
	return false
}
