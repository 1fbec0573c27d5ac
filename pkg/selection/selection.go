// Package selection reconciles saved, detected and user-chosen feature sets
// into the single selection a run works from.
package selection

import (
	"context"
	"fmt"
	"strings"

	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/capability"
)

// Provenance records where a selected feature came from
type Provenance string

const (
	ProvenanceDetected          Provenance = "detected"
	ProvenanceRestoredFromSaved Provenance = "restoredFromSaved"
	ProvenanceUserChosen        Provenance = "userChosen"
	// ProvenanceRequired marks a required feature the selection gained without
	// it being saved, detected or chosen.
	ProvenanceRequired Provenance = "required"
)

// SelectRequest describes one grouped multi-select over the whole registry.
type SelectRequest struct {
	Message  string
	Groups   []capability.FeatureGroup
	Required bool
	Initial  []capability.FeatureID
	// Locked features are part of every selection. Prompters show them
	// checked and do not let the user clear them.
	Locked []capability.FeatureID
	// Problems is non-empty when the previous choice was rejected and the
	// user is being asked to correct it.
	Problems []string
}

// Prompter is the interactive collaborator. Implementations return ErrAborted
// when the user cancels.
type Prompter interface {
	Confirm(ctx context.Context, message string, defaultValue bool) (bool, error)
	SelectMany(ctx context.Context, req SelectRequest) ([]capability.FeatureID, error)
}

// Selection is the resolved feature set of one run.
type Selection struct {
	Features   []capability.FeatureID
	Provenance map[capability.FeatureID]Provenance
	// Warnings holds recovered problems, such as a discarded saved selection.
	Warnings []error
}

// IsEmpty reports whether no feature was selected
func (s Selection) IsEmpty() bool {
	return len(s.Features) == 0
}

// Has reports whether id is part of the selection
func (s Selection) Has(id capability.FeatureID) bool {
	_, ok := s.Provenance[id]
	return ok
}

// Resolver applies the precedence between a saved selection, the
// auto-detected features and the user's explicit choice.
type Resolver struct {
	registry *capability.Registry
	prompter Prompter
	required bool
}

// Option configures a Resolver
type Option func(*Resolver)

// WithRequired marks the explicit choice as requiring at least one feature.
func WithRequired(required bool) Option {
	return func(r *Resolver) {
		r.required = required
	}
}

// NewResolver creates a resolver over reg that asks p for decisions.
func NewResolver(reg *capability.Registry, p Prompter, opts ...Option) *Resolver {
	r := &Resolver{registry: reg, prompter: p}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the selection the user ratified, always including the
// registry's required features. A nil saved slice means nothing was saved. A saved selection is used as the default only when every
// id in it is known; otherwise it is discarded as a whole and an
// *UnknownFeatureError is recorded in Selection.Warnings.
func (r *Resolver) Resolve(ctx context.Context, saved, autoDetected []capability.FeatureID) (Selection, error) {
	var (
		warnings []error
		defaults []capability.FeatureID
		source   Provenance
	)

	if saved != nil {
		if unknown := r.unknownIDs(saved); len(unknown) > 0 {
			warnings = append(warnings, &UnknownFeatureError{IDs: unknown})
			saved = nil
		}
	}

	switch {
	case saved != nil:
		defaults = r.registry.SortFeatures(saved)
		source = ProvenanceRestoredFromSaved
	case len(autoDetected) > 1:
		ok, err := r.prompter.Confirm(ctx, autoDetectMessage(r.registry, autoDetected), true)
		if err != nil {
			return Selection{}, fmt.Errorf("failed to confirm detected features: %w", err)
		}
		if ok {
			defaults = r.registry.SortFeatures(autoDetected)
			source = ProvenanceDetected
		}
	}

	chosen, err := r.prompter.SelectMany(ctx, SelectRequest{
		Message:  "Select the features to enable:",
		Groups:   r.registry.Groups(),
		Required: r.required,
		Initial:  defaults,
		Locked:   r.registry.RequiredFeatures(),
	})
	if err != nil {
		return Selection{}, fmt.Errorf("failed to select features: %w", err)
	}

	seeded := make(map[capability.FeatureID]Provenance, len(defaults))
	for _, id := range defaults {
		seeded[id] = source
	}

	sel := r.build(chosen, seeded)
	sel.Warnings = warnings
	return sel, nil
}

// Reselect asks the user to correct prev after it was rejected for the given
// problems. Features kept from prev keep their provenance.
func (r *Resolver) Reselect(ctx context.Context, prev Selection, problems []string) (Selection, error) {
	chosen, err := r.prompter.SelectMany(ctx, SelectRequest{
		Message:  "Adjust the selected features:",
		Groups:   r.registry.Groups(),
		Required: r.required,
		Initial:  prev.Features,
		Locked:   r.registry.RequiredFeatures(),
		Problems: problems,
	})
	if err != nil {
		return Selection{}, fmt.Errorf("failed to select features: %w", err)
	}

	sel := r.build(chosen, prev.Provenance)
	sel.Warnings = prev.Warnings
	return sel, nil
}

// build forces the required features into chosen and attributes every
// member to its seed, falling back to required or userChosen.
func (r *Resolver) build(chosen []capability.FeatureID, seeded map[capability.FeatureID]Provenance) Selection {
	required := r.registry.RequiredFeatures()
	isRequired := make(map[capability.FeatureID]bool, len(required))
	for _, id := range required {
		isRequired[id] = true
	}

	all := make([]capability.FeatureID, 0, len(chosen)+len(required))
	all = append(append(all, chosen...), required...)
	ids := r.registry.SortFeatures(all)

	sel := Selection{
		Features:   ids,
		Provenance: make(map[capability.FeatureID]Provenance, len(ids)),
	}
	for _, id := range ids {
		switch p, ok := seeded[id]; {
		case ok && p != "":
			sel.Provenance[id] = p
		case isRequired[id]:
			sel.Provenance[id] = ProvenanceRequired
		default:
			sel.Provenance[id] = ProvenanceUserChosen
		}
	}
	return sel
}

func (r *Resolver) unknownIDs(ids []capability.FeatureID) []capability.FeatureID {
	var unknown []capability.FeatureID
	for _, id := range ids {
		if !r.registry.HasFeature(id) {
			unknown = append(unknown, id)
		}
	}
	return unknown
}

func autoDetectMessage(reg *capability.Registry, ids []capability.FeatureID) string {
	return fmt.Sprintf("Detected %d features (%s). Use them as the default selection?",
		len(ids), joinIDs(reg.SortFeatures(ids)))
}

func joinIDs(ids []capability.FeatureID) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return strings.Join(names, ", ")
}
