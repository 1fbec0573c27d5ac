package selection

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/capability"
)

type fakePrompter struct {
	confirmAnswer bool
	confirmErr    error
	answers       [][]capability.FeatureID
	selectErr     error

	confirmCalls int
	requests     []SelectRequest
}

func (f *fakePrompter) Confirm(_ context.Context, _ string, _ bool) (bool, error) {
	f.confirmCalls++
	return f.confirmAnswer, f.confirmErr
}

func (f *fakePrompter) SelectMany(_ context.Context, req SelectRequest) ([]capability.FeatureID, error) {
	f.requests = append(f.requests, req)
	if f.selectErr != nil {
		return nil, f.selectErr
	}
	if len(f.answers) == 0 {
		return req.Initial, nil
	}
	next := f.answers[0]
	f.answers = f.answers[1:]
	return next, nil
}

func ids(s ...string) []capability.FeatureID {
	out := make([]capability.FeatureID, len(s))
	for i, v := range s {
		out[i] = capability.FeatureID(v)
	}
	return out
}

func TestResolve_SavedSelectionSkipsConfirmation(t *testing.T) {
	p := &fakePrompter{answers: [][]capability.FeatureID{ids("typescript", "react")}}
	r := NewResolver(capability.Default(), p)

	sel, err := r.Resolve(context.Background(), ids("react", "typescript"), ids("javascript", "react", "prettier"))
	require.NoError(t, err)

	assert.Equal(t, 0, p.confirmCalls, "confirmation must not be asked for a valid saved selection")
	require.Len(t, p.requests, 1)
	assert.Equal(t, ids("typescript", "react"), p.requests[0].Initial)
	assert.Equal(t, ids("javascript"), p.requests[0].Locked)

	assert.Equal(t, ids("javascript", "typescript", "react"), sel.Features)
	assert.Equal(t, ProvenanceRequired, sel.Provenance["javascript"], "required feature is added to a saved set lacking it")
	assert.Equal(t, ProvenanceRestoredFromSaved, sel.Provenance["typescript"])
	assert.Equal(t, ProvenanceRestoredFromSaved, sel.Provenance["react"])
	assert.Empty(t, sel.Warnings)
}

func TestResolve_SingleDetectedFeatureIsNotConfirmed(t *testing.T) {
	p := &fakePrompter{answers: [][]capability.FeatureID{ids("javascript")}}
	r := NewResolver(capability.Default(), p)

	sel, err := r.Resolve(context.Background(), nil, ids("javascript"))
	require.NoError(t, err)

	assert.Equal(t, 0, p.confirmCalls)
	require.Len(t, p.requests, 1)
	assert.Empty(t, p.requests[0].Initial)
	assert.Equal(t, ProvenanceRequired, sel.Provenance["javascript"])
}

func TestResolve_DetectedDefault(t *testing.T) {
	tests := []struct {
		name        string
		accept      bool
		wantInitial []capability.FeatureID
		wantProv    Provenance
		wantJSProv  Provenance
	}{
		{
			name:        "accepted",
			accept:      true,
			wantInitial: ids("javascript", "react"),
			wantProv:    ProvenanceDetected,
			wantJSProv:  ProvenanceDetected,
		},
		{
			name:       "declined",
			accept:     false,
			wantProv:   ProvenanceUserChosen,
			wantJSProv: ProvenanceRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fakePrompter{
				confirmAnswer: tt.accept,
				answers:       [][]capability.FeatureID{ids("react")},
			}
			r := NewResolver(capability.Default(), p)

			sel, err := r.Resolve(context.Background(), nil, ids("react", "javascript"))
			require.NoError(t, err)

			assert.Equal(t, 1, p.confirmCalls)
			if tt.wantInitial == nil {
				assert.Empty(t, p.requests[0].Initial)
			} else {
				assert.Equal(t, tt.wantInitial, p.requests[0].Initial)
			}
			assert.Equal(t, ids("javascript", "react"), sel.Features)
			assert.Equal(t, tt.wantProv, sel.Provenance["react"])
			assert.Equal(t, tt.wantJSProv, sel.Provenance["javascript"])
		})
	}
}

func TestResolve_UnknownSavedIDsDiscardWholeSet(t *testing.T) {
	p := &fakePrompter{confirmAnswer: true}
	r := NewResolver(capability.Default(), p)

	sel, err := r.Resolve(context.Background(), ids("react", "removedFeature"), ids("javascript", "vue"))
	require.NoError(t, err)

	assert.Equal(t, 1, p.confirmCalls, "falls back to the detection path")
	assert.Equal(t, ids("javascript", "vue"), p.requests[0].Initial)
	assert.False(t, sel.Has("react"), "saved selection must not be partially honoured")

	require.Len(t, sel.Warnings, 1)
	var unknown *UnknownFeatureError
	require.ErrorAs(t, sel.Warnings[0], &unknown)
	assert.Equal(t, ids("removedFeature"), unknown.IDs)
}

func optionalRegistry(t *testing.T) *capability.Registry {
	t.Helper()
	reg, err := capability.New(nil, []capability.Feature{
		{ID: "react", Flag: "withReact"},
		{ID: "vue", Flag: "withVue"},
	})
	require.NoError(t, err)
	return reg
}

func TestResolve_EmptyChoiceSucceeds(t *testing.T) {
	p := &fakePrompter{answers: [][]capability.FeatureID{{}}}
	r := NewResolver(optionalRegistry(t), p, WithRequired(true))

	sel, err := r.Resolve(context.Background(), ids("react"), nil)
	require.NoError(t, err)
	assert.True(t, sel.IsEmpty())
	assert.True(t, p.requests[0].Required)
	assert.Empty(t, p.requests[0].Locked)
}

func TestResolve_RequiredFeaturesAreAlwaysIncluded(t *testing.T) {
	tests := []struct {
		name   string
		saved  []capability.FeatureID
		auto   []capability.FeatureID
		answer []capability.FeatureID
	}{
		{name: "explicit choice omits it", auto: ids("javascript", "react"), answer: ids("react")},
		{name: "empty explicit choice", auto: ids("javascript"), answer: ids()},
		{name: "saved selection lacks it", saved: ids("vue"), answer: ids("vue")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fakePrompter{confirmAnswer: true, answers: [][]capability.FeatureID{tt.answer}}
			sel, err := NewResolver(capability.Default(), p).Resolve(context.Background(), tt.saved, tt.auto)
			require.NoError(t, err)

			assert.True(t, sel.Has(capability.FeatureJavaScript))
			assert.Equal(t, capability.FeatureJavaScript, sel.Features[0])
			assert.False(t, sel.IsEmpty())
			assert.Equal(t, ids("javascript"), p.requests[0].Locked)
		})
	}
}

func TestReselect_RequiredFeatureCannotBeDropped(t *testing.T) {
	p := &fakePrompter{answers: [][]capability.FeatureID{ids("react")}}
	prev := Selection{
		Features:   ids("javascript", "nest"),
		Provenance: map[capability.FeatureID]Provenance{"javascript": ProvenanceDetected, "nest": ProvenanceUserChosen},
	}

	sel, err := NewResolver(capability.Default(), p).Reselect(context.Background(), prev, []string{"problem"})
	require.NoError(t, err)
	assert.Equal(t, ids("javascript", "react"), sel.Features)
	assert.Equal(t, ProvenanceDetected, sel.Provenance["javascript"])
}

func TestResolve_ExplicitChoiceIsAuthoritative(t *testing.T) {
	p := &fakePrompter{
		confirmAnswer: true,
		answers:       [][]capability.FeatureID{ids("vue", "javascript")},
	}
	r := NewResolver(capability.Default(), p)

	sel, err := r.Resolve(context.Background(), nil, ids("javascript", "react", "next"))
	require.NoError(t, err)

	assert.Equal(t, ids("javascript", "vue"), sel.Features)
	assert.Equal(t, ProvenanceDetected, sel.Provenance["javascript"])
	assert.Equal(t, ProvenanceUserChosen, sel.Provenance["vue"])
	assert.False(t, sel.Has("react"))
}

func TestResolve_PrompterErrors(t *testing.T) {
	p := &fakePrompter{confirmErr: ErrAborted}
	_, err := NewResolver(capability.Default(), p).Resolve(context.Background(), nil, ids("javascript", "react"))
	assert.ErrorIs(t, err, ErrAborted)

	p = &fakePrompter{selectErr: errors.New("terminal closed")}
	_, err = NewResolver(capability.Default(), p).Resolve(context.Background(), nil, nil)
	assert.ErrorContains(t, err, "terminal closed")
}

func TestReselect_KeepsProvenanceAndPassesProblems(t *testing.T) {
	p := &fakePrompter{answers: [][]capability.FeatureID{ids("javascript", "typescript", "react")}}
	r := NewResolver(capability.Default(), p)

	prev := Selection{
		Features: ids("javascript", "react"),
		Provenance: map[capability.FeatureID]Provenance{
			"javascript": ProvenanceDetected,
			"react":      ProvenanceRestoredFromSaved,
		},
	}

	sel, err := r.Reselect(context.Background(), prev, []string{"problem"})
	require.NoError(t, err)

	require.Len(t, p.requests, 1)
	assert.Equal(t, []string{"problem"}, p.requests[0].Problems)
	assert.Equal(t, prev.Features, p.requests[0].Initial)

	assert.Equal(t, ProvenanceDetected, sel.Provenance["javascript"])
	assert.Equal(t, ProvenanceRestoredFromSaved, sel.Provenance["react"])
	assert.Equal(t, ProvenanceUserChosen, sel.Provenance["typescript"])
}

func TestAutoPrompter(t *testing.T) {
	ctx := context.Background()
	var p AutoPrompter

	ok, err := p.Confirm(ctx, "?", true)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := p.SelectMany(ctx, SelectRequest{Initial: ids("javascript")})
	require.NoError(t, err)
	assert.Equal(t, ids("javascript"), got)

	got, err = p.SelectMany(ctx, SelectRequest{Initial: ids("react", "javascript"), Locked: ids("javascript")})
	require.NoError(t, err)
	assert.Equal(t, ids("react", "javascript"), got)

	got, err = p.SelectMany(ctx, SelectRequest{Locked: ids("javascript")})
	require.NoError(t, err)
	assert.Equal(t, ids("javascript"), got, "locked features are kept with an empty default")

	_, err = p.SelectMany(ctx, SelectRequest{Initial: ids("nest"), Problems: []string{"`nest` requires TypeScript"}})
	assert.ErrorIs(t, err, ErrAborted)
	assert.ErrorContains(t, err, "requires TypeScript")
}
