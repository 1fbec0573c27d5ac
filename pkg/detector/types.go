package detector

import (
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/capability"
)

// Section names a dependency section of the project manifest
type Section string

const (
	SectionProduction  Section = "production"
	SectionDevelopment Section = "development"
)

// Evidence provides the read-only lookups detection is based on.
// Implementations may be called concurrently.
type Evidence interface {
	// FileExists reports whether a project-relative path exists
	FileExists(path string) (bool, error)
	// Dependencies returns the name -> version range map of one manifest section
	Dependencies(section Section) (map[string]string, error)
}

// EvidenceFuncs adapts plain functions to the Evidence interface
type EvidenceFuncs struct {
	FileExistsFunc   func(path string) (bool, error)
	DependenciesFunc func(section Section) (map[string]string, error)
}

func (e EvidenceFuncs) FileExists(path string) (bool, error) {
	if e.FileExistsFunc == nil {
		return false, nil
	}
	return e.FileExistsFunc(path)
}

func (e EvidenceFuncs) Dependencies(section Section) (map[string]string, error) {
	if e.DependenciesFunc == nil {
		return map[string]string{}, nil
	}
	return e.DependenciesFunc(section)
}

// Match is a detected framework together with the evidence that matched
type Match struct {
	Framework capability.FrameworkID `json:"framework"`
	Signals   []string               `json:"signals"`
}

// Result is the outcome of one detection pass. Matches follow registry
// order; callers must not attach meaning to that order.
type Result struct {
	Matches []Match `json:"matches"`
	Errors  []error `json:"-"`
}

// Frameworks returns the detected framework ids
func (r Result) Frameworks() []capability.FrameworkID {
	ids := make([]capability.FrameworkID, 0, len(r.Matches))
	for _, m := range r.Matches {
		ids = append(ids, m.Framework)
	}
	return ids
}

// Has reports whether id was detected
func (r Result) Has(id capability.FrameworkID) bool {
	for _, m := range r.Matches {
		if m.Framework == id {
			return true
		}
	}
	return false
}
