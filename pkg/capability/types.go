package capability

// FrameworkID identifies a detectable tool, library or language context
type FrameworkID string

// FeatureID identifies a togglable lint configuration unit
type FeatureID string

// Capability is a logical precondition checked against detected frameworks
type Capability string

// Group is the heading a feature is listed under in the multi-select
type Group string

const (
	// CapabilityTypeScript holds when a TypeScript-capable framework was detected
	CapabilityTypeScript Capability = "TypeScript"
)

const (
	GroupCore        Group = "Core"
	GroupLanguages   Group = "Languages"
	GroupFrameworks  Group = "Frameworks"
	GroupStyling     Group = "Styling"
	GroupTesting     Group = "Testing"
	GroupCodeQuality Group = "Code quality"
	GroupFileTypes   Group = "File types"
)

// groupOrder is the display order of feature groups
var groupOrder = []Group{
	GroupCore,
	GroupLanguages,
	GroupFrameworks,
	GroupStyling,
	GroupTesting,
	GroupCodeQuality,
	GroupFileTypes,
}

// PackageIndicators holds the three disjoint manifest evidence lists of a framework
type PackageIndicators struct {
	Dependencies    []string // must appear in production dependencies
	DevDependencies []string // must appear in development dependencies
	Either          []string // may appear in either section
}

// IsEmpty reports whether no package evidence is declared
func (p PackageIndicators) IsEmpty() bool {
	return len(p.Dependencies) == 0 && len(p.DevDependencies) == 0 && len(p.Either) == 0
}

// Framework describes a detectable tool and the features it turns on
type Framework struct {
	ID                FrameworkID
	DisplayName       string
	Description       string
	FileIndicators    []string
	PackageIndicators PackageIndicators
	ImpliedFeatures   []FeatureID
	Provides          []Capability
	SupportsWatchMode bool
	LintTargets       []string
	IgnoreRules       []string
}

// Detectable reports whether the framework declares any evidence at all.
// A framework without evidence is a fallback entry and is never detected.
func (f Framework) Detectable() bool {
	return len(f.FileIndicators) > 0 || !f.PackageIndicators.IsEmpty()
}

// ProvidesCapability reports whether detecting f satisfies c
func (f Framework) ProvidesCapability(c Capability) bool {
	for _, p := range f.Provides {
		if p == c {
			return true
		}
	}
	return false
}

// Feature describes a lint capability, its packages and its output flag
type Feature struct {
	ID                 FeatureID
	Description        string
	Group              Group
	Flag               string // option name in the generated config, e.g. withTypescript
	RequiredPackages   []string
	IsRequired         bool
	AutoDetectEvidence []string
	RequiresCapability Capability // empty when the feature is valid everywhere
}

// FeatureGroup is a group heading with its features in registry order
type FeatureGroup struct {
	Group    Group
	Features []Feature
}
