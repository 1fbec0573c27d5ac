package detector

import (
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/capability"
)

// detectionBuilder evaluates the evidence of a single framework.
// It collects the signals that matched and the lookups that failed.
type detectionBuilder struct {
	framework capability.FrameworkID
	ev        Evidence
	matched   bool
	signals   []string
	errs      []error
}

func newDetectionBuilder(framework capability.FrameworkID, ev Evidence) *detectionBuilder {
	return &detectionBuilder{
		framework: framework,
		ev:        ev,
		signals:   []string{},
	}
}

// CheckAnyFile stops at the first indicator that exists. A failed lookup
// counts as absent and does not stop the remaining indicators.
func (b *detectionBuilder) CheckAnyFile(paths []string) *detectionBuilder {
	for _, path := range paths {
		ok, err := b.ev.FileExists(path)
		if err != nil {
			b.errs = append(b.errs, &EvidenceError{Framework: b.framework, Indicator: path, Err: err})
			continue
		}
		if ok {
			b.hit(path)
			return b
		}
	}
	return b
}

// CheckDependency matches package names against one dependency section
func (b *detectionBuilder) CheckDependency(deps map[string]string, names []string, section string) *detectionBuilder {
	for _, name := range names {
		if _, ok := deps[name]; ok {
			b.hit("package.json " + section + " has " + name)
		}
	}
	return b
}

// CheckEitherDependency matches package names against both sections
func (b *detectionBuilder) CheckEitherDependency(prod, dev map[string]string, names []string) *detectionBuilder {
	for _, name := range names {
		if _, ok := prod[name]; ok {
			b.hit("package.json has " + name)
			continue
		}
		if _, ok := dev[name]; ok {
			b.hit("package.json has " + name)
		}
	}
	return b
}

func (b *detectionBuilder) hit(signal string) {
	b.matched = true
	b.signals = append(b.signals, signal)
}

// Build returns the match, if any, and the failed lookups
func (b *detectionBuilder) Build() (Match, bool, []error) {
	if !b.matched {
		return Match{}, false, b.errs
	}
	return Match{Framework: b.framework, Signals: b.signals}, true, b.errs
}
