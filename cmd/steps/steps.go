// Package steps provides utility for creating
// each step of the CLI flow
package steps

import (
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/capability"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/emit"
)

// A StepSchema contains the data that is used
// for an individual step of the CLI
type StepSchema struct {
	StepName string // The name of a given step
	Options  []Item // The slice of each option for a given step
	Headers  string // The title displayed at the top of a given step
}

// Steps contains a map of steps
type Steps struct {
	Steps map[string]StepSchema
}

// An Item contains the data for each option
// in a StepSchema.Options. Group items are headings and cannot be selected;
// Locked items are always selected.
type Item struct {
	Flag, Title, Desc string
	Group             bool
	Locked            bool
}

// Values returns the flags of the selectable options
func (s StepSchema) Values() []string {
	var values []string
	for _, item := range s.Options {
		if !item.Group {
			values = append(values, item.Flag)
		}
	}
	return values
}

// InitSteps initializes and returns the *Steps to be used in the CLI program
func InitSteps(reg *capability.Registry) *Steps {
	return &Steps{
		map[string]StepSchema{
			"features": {
				StepName: "Features",
				Options:  FeatureItems(reg.Groups()),
				Headers:  "Which features would you like to enable?",
			},
			"builder_formats": {
				StepName: "Output formats",
				Options: []Item{
					{Flag: string(emit.FormatESM), Title: "ES module", Desc: "import/export, for bundlers and modern runtimes"},
					{Flag: string(emit.FormatCJS), Title: "CommonJS", Desc: "require/module.exports, for Node.js"},
					{Flag: string(emit.FormatUMD), Title: "UMD", Desc: "a browser global plus AMD/CommonJS support"},
				},
				Headers: "Which output formats should the bundle have?",
			},
		},
	}
}

// FeatureItems lists every feature under its group heading. The item flag is
// the feature id.
func FeatureItems(groups []capability.FeatureGroup) []Item {
	var items []Item
	for _, g := range groups {
		items = append(items, Item{Title: string(g.Group), Group: true})
		for _, f := range g.Features {
			items = append(items, Item{
				Flag:   string(f.ID),
				Title:  string(f.ID),
				Desc:   f.Description,
				Locked: f.IsRequired,
			})
		}
	}
	return items
}
