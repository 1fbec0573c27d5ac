package steps

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/capability"
)

func TestFeatureItems(t *testing.T) {
	groups := []capability.FeatureGroup{
		{Group: "Core", Features: []capability.Feature{{ID: "javascript", Description: "Base rules", IsRequired: true}}},
		{Group: "Frameworks", Features: []capability.Feature{{ID: "react"}, {ID: "vue"}}},
	}

	items := FeatureItems(groups)
	assert.Equal(t, []Item{
		{Title: "Core", Group: true},
		{Flag: "javascript", Title: "javascript", Desc: "Base rules", Locked: true},
		{Title: "Frameworks", Group: true},
		{Flag: "react", Title: "react"},
		{Flag: "vue", Title: "vue"},
	}, items)

	schema := StepSchema{Options: items}
	assert.Equal(t, []string{"javascript", "react", "vue"}, schema.Values())
}

func TestInitSteps(t *testing.T) {
	s := InitSteps(capability.Default())

	formats := s.Steps["builder_formats"]
	assert.Equal(t, []string{"esm", "cjs", "umd"}, formats.Values())

	features := s.Steps["features"]
	assert.Len(t, features.Values(), len(capability.Default().Features()))
}
