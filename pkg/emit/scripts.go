package emit

import (
	"strings"

	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/capability"
)

// Script is one package.json script entry
type Script struct {
	Name    string
	Command string
}

// Scripts returns the lint scripts for the detected frameworks. Targets are
// the union of the frameworks' lint targets, "." when none declare any. A
// watch script is added when any detected framework supports watch mode.
func Scripts(reg *capability.Registry, detected []capability.FrameworkID) []Script {
	var (
		targets []string
		watch   bool
	)
	seen := make(map[string]struct{})

	for _, fw := range reg.Frameworks() {
		if !contains(detected, fw.ID) {
			continue
		}
		watch = watch || fw.SupportsWatchMode
		for _, t := range fw.LintTargets {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			targets = append(targets, t)
		}
	}
	if len(targets) == 0 {
		targets = []string{"."}
	}

	paths := strings.Join(targets, " ")
	scripts := []Script{
		{Name: "lint", Command: "eslint " + paths},
		{Name: "lint:fix", Command: "eslint --fix " + paths},
	}
	if watch {
		scripts = append(scripts, Script{Name: "lint:watch", Command: "npx eslint-watch " + paths})
	}
	return scripts
}

// IgnorePatterns merges the default ignores, the detected frameworks' ignore
// rules and any extra patterns, keeping the first occurrence of each.
func IgnorePatterns(reg *capability.Registry, detected []capability.FrameworkID, extra ...[]string) []string {
	var out []string
	seen := make(map[string]struct{})
	add := func(patterns []string) {
		for _, p := range patterns {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}

	add(DefaultIgnores)
	for _, fw := range reg.Frameworks() {
		if contains(detected, fw.ID) {
			add(fw.IgnoreRules)
		}
	}
	for _, patterns := range extra {
		add(patterns)
	}
	return out
}

// DefaultIgnores are ignored in every project
var DefaultIgnores = []string{"node_modules", "dist", "build", "coverage"}

func contains(ids []capability.FrameworkID, id capability.FrameworkID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
