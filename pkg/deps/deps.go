// Package deps expands a feature selection into the packages to install.
package deps

import (
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/capability"
)

// Resolve returns core followed by the required packages of every selected
// feature, keeping the first occurrence of each package. Unknown features and
// features without packages contribute nothing.
func Resolve(reg *capability.Registry, selection []capability.FeatureID, core []string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(core))

	add := func(pkg string) {
		if pkg == "" {
			return
		}
		if _, ok := seen[pkg]; ok {
			return
		}
		seen[pkg] = struct{}{}
		out = append(out, pkg)
	}

	for _, pkg := range core {
		add(pkg)
	}
	for _, id := range selection {
		f, ok := reg.Feature(id)
		if !ok {
			continue
		}
		for _, pkg := range f.RequiredPackages {
			add(pkg)
		}
	}
	return out
}
