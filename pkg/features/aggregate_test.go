package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/capability"
)

func scenarioRegistry(t *testing.T) *capability.Registry {
	t.Helper()
	reg, err := capability.New(
		[]capability.Framework{
			{
				ID:                "react",
				PackageIndicators: capability.PackageIndicators{Dependencies: []string{"react"}},
				ImpliedFeatures:   []capability.FeatureID{"react-lint", "javascript"},
			},
			{
				ID:              "next",
				FileIndicators:  []string{"next.config.js"},
				ImpliedFeatures: []capability.FeatureID{"react-lint", "next-lint"},
			},
		},
		[]capability.Feature{
			{ID: "javascript", Flag: "withJavascript", IsRequired: true},
			{ID: "react-lint", Flag: "withReact"},
			{ID: "next-lint", Flag: "withNext"},
			{ID: "prettier", Flag: "withPrettier", AutoDetectEvidence: []string{"prettier"}},
		},
	)
	require.NoError(t, err)
	return reg
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name     string
		detected []capability.FrameworkID
		prod     map[string]string
		dev      map[string]string
		want     []capability.FeatureID
	}{
		{
			name: "required only",
			want: []capability.FeatureID{"javascript"},
		},
		{
			name:     "implied features",
			detected: []capability.FrameworkID{"react"},
			want:     []capability.FeatureID{"javascript", "react-lint"},
		},
		{
			name:     "overlapping implications are deduplicated",
			detected: []capability.FrameworkID{"react", "next"},
			want:     []capability.FeatureID{"javascript", "react-lint", "next-lint"},
		},
		{
			name: "auto-detect evidence in dev deps without a framework",
			dev:  map[string]string{"prettier": "3.0.0"},
			want: []capability.FeatureID{"javascript", "prettier"},
		},
		{
			name: "auto-detect evidence in production deps",
			prod: map[string]string{"prettier": "3.0.0"},
			want: []capability.FeatureID{"javascript", "prettier"},
		},
		{
			name:     "unknown framework ids are ignored",
			detected: []capability.FrameworkID{"svelte"},
			want:     []capability.FeatureID{"javascript"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(scenarioRegistry(t), tt.detected, tt.prod, tt.dev)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAggregate_OrderIndependentAndIdempotent(t *testing.T) {
	reg := capability.Default()
	dev := map[string]string{"tailwindcss": "3", "vitest": "1"}

	a := Aggregate(reg, []capability.FrameworkID{
		capability.FrameworkNest, capability.FrameworkNext, capability.FrameworkTailwind,
	}, nil, dev)
	b := Aggregate(reg, []capability.FrameworkID{
		capability.FrameworkTailwind, capability.FrameworkNest, capability.FrameworkNext, capability.FrameworkNext,
	}, nil, dev)

	assert.Equal(t, a, b)
	assert.Equal(t, a, Aggregate(reg, []capability.FrameworkID{
		capability.FrameworkNext, capability.FrameworkTailwind, capability.FrameworkNest,
	}, nil, dev))
	assert.Contains(t, a, capability.FeatureVitest)
	assert.Contains(t, a, capability.FeatureJavaScript)
}
