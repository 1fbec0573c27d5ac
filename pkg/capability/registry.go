package capability

import (
	"fmt"
	"sync"
)

// Registry is an immutable view over the framework and feature tables.
// It is safe for concurrent use once constructed.
type Registry struct {
	frameworks     []Framework
	features       []Feature
	frameworkIndex map[FrameworkID]int
	featureIndex   map[FeatureID]int
	flagIndex      map[string]FeatureID
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the built-in registry
func Default() *Registry {
	defaultOnce.Do(func() {
		reg, err := New(builtinFrameworks, builtinFeatures)
		if err != nil {
			panic(fmt.Sprintf("invalid built-in capability registry: %v", err))
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}

// New builds a registry and checks its referential integrity:
// ids and flags are unique and every implied feature exists.
func New(frameworks []Framework, features []Feature) (*Registry, error) {
	r := &Registry{
		frameworks:     make([]Framework, len(frameworks)),
		features:       make([]Feature, len(features)),
		frameworkIndex: make(map[FrameworkID]int, len(frameworks)),
		featureIndex:   make(map[FeatureID]int, len(features)),
		flagIndex:      make(map[string]FeatureID, len(features)),
	}
	copy(r.frameworks, frameworks)
	copy(r.features, features)

	for i, f := range r.features {
		if f.ID == "" {
			return nil, fmt.Errorf("feature at index %d has an empty id", i)
		}
		if _, dup := r.featureIndex[f.ID]; dup {
			return nil, fmt.Errorf("duplicate feature id %q", f.ID)
		}
		r.featureIndex[f.ID] = i

		if f.Flag == "" {
			return nil, fmt.Errorf("feature %q has no output flag", f.ID)
		}
		if other, dup := r.flagIndex[f.Flag]; dup {
			return nil, fmt.Errorf("features %q and %q share flag %q", other, f.ID, f.Flag)
		}
		r.flagIndex[f.Flag] = f.ID
	}

	for i, fw := range r.frameworks {
		if fw.ID == "" {
			return nil, fmt.Errorf("framework at index %d has an empty id", i)
		}
		if _, dup := r.frameworkIndex[fw.ID]; dup {
			return nil, fmt.Errorf("duplicate framework id %q", fw.ID)
		}
		r.frameworkIndex[fw.ID] = i

		for _, id := range fw.ImpliedFeatures {
			if _, ok := r.featureIndex[id]; !ok {
				return nil, fmt.Errorf("framework %q implies unknown feature %q", fw.ID, id)
			}
		}
	}

	return r, nil
}

// Frameworks returns all frameworks in registry order
func (r *Registry) Frameworks() []Framework {
	out := make([]Framework, len(r.frameworks))
	copy(out, r.frameworks)
	return out
}

// Features returns all features in registry order
func (r *Registry) Features() []Feature {
	out := make([]Feature, len(r.features))
	copy(out, r.features)
	return out
}

// Framework looks up a framework by id
func (r *Registry) Framework(id FrameworkID) (Framework, bool) {
	i, ok := r.frameworkIndex[id]
	if !ok {
		return Framework{}, false
	}
	return r.frameworks[i], true
}

// Feature looks up a feature by id
func (r *Registry) Feature(id FeatureID) (Feature, bool) {
	i, ok := r.featureIndex[id]
	if !ok {
		return Feature{}, false
	}
	return r.features[i], true
}

// HasFeature reports whether id is a known feature
func (r *Registry) HasFeature(id FeatureID) bool {
	_, ok := r.featureIndex[id]
	return ok
}

// FeatureByFlag maps an output flag back to its feature
func (r *Registry) FeatureByFlag(flag string) (FeatureID, bool) {
	id, ok := r.flagIndex[flag]
	return id, ok
}

// RequiredFeatures returns the features that are force-included in every resolution
func (r *Registry) RequiredFeatures() []FeatureID {
	var ids []FeatureID
	for _, f := range r.features {
		if f.IsRequired {
			ids = append(ids, f.ID)
		}
	}
	return ids
}

// SortFeatures returns the known ids of ids in registry order, dropping
// duplicates and unknown ids.
func (r *Registry) SortFeatures(ids []FeatureID) []FeatureID {
	present := make(map[FeatureID]struct{}, len(ids))
	for _, id := range ids {
		present[id] = struct{}{}
	}

	out := make([]FeatureID, 0, len(present))
	for _, f := range r.features {
		if _, ok := present[f.ID]; ok {
			out = append(out, f.ID)
		}
	}
	return out
}

// Groups returns the features grouped by heading. Groups without features
// are omitted; features with an unlisted group are appended last.
func (r *Registry) Groups() []FeatureGroup {
	byGroup := make(map[Group][]Feature)
	var extra []Group
	for _, f := range r.features {
		if _, seen := byGroup[f.Group]; !seen && !knownGroup(f.Group) {
			extra = append(extra, f.Group)
		}
		byGroup[f.Group] = append(byGroup[f.Group], f)
	}

	var groups []FeatureGroup
	for _, g := range append(append([]Group{}, groupOrder...), extra...) {
		if fs := byGroup[g]; len(fs) > 0 {
			groups = append(groups, FeatureGroup{Group: g, Features: fs})
		}
	}
	return groups
}

func knownGroup(g Group) bool {
	for _, known := range groupOrder {
		if known == g {
			return true
		}
	}
	return false
}
