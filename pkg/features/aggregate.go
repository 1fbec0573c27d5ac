// Package features derives the auto-detected feature set of a project.
package features

import (
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/capability"
)

// Aggregate returns the features implied by the detected frameworks, the
// features whose own evidence is present in the manifest, and every required
// feature. The result is in registry order regardless of the order of
// detected, and unknown framework ids are ignored.
func Aggregate(reg *capability.Registry, detected []capability.FrameworkID, prod, dev map[string]string) []capability.FeatureID {
	set := make(map[capability.FeatureID]struct{})

	for _, id := range detected {
		fw, ok := reg.Framework(id)
		if !ok {
			continue
		}
		for _, feature := range fw.ImpliedFeatures {
			set[feature] = struct{}{}
		}
	}

	for _, f := range reg.Features() {
		if hasAny(f.AutoDetectEvidence, prod, dev) {
			set[f.ID] = struct{}{}
		}
		if f.IsRequired {
			set[f.ID] = struct{}{}
		}
	}

	ids := make([]capability.FeatureID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return reg.SortFeatures(ids)
}

func hasAny(names []string, prod, dev map[string]string) bool {
	for _, name := range names {
		if _, ok := prod[name]; ok {
			return true
		}
		if _, ok := dev[name]; ok {
			return true
		}
	}
	return false
}
