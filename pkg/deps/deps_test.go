package deps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/capability"
)

func TestResolve(t *testing.T) {
	reg, err := capability.New(nil, []capability.Feature{
		{ID: "a", Flag: "withA", RequiredPackages: []string{"pkgX"}},
		{ID: "b", Flag: "withB", RequiredPackages: []string{"pkgX", "pkgY"}},
		{ID: "bare", Flag: "withBare"},
	})
	require.NoError(t, err)

	tests := []struct {
		name      string
		selection []capability.FeatureID
		core      []string
		want      []string
	}{
		{
			name:      "dedup with stable order",
			selection: []capability.FeatureID{"a", "b"},
			core:      []string{"pkgCore"},
			want:      []string{"pkgCore", "pkgX", "pkgY"},
		},
		{
			name:      "selection order decides feature package order",
			selection: []capability.FeatureID{"b", "a"},
			core:      []string{"pkgCore"},
			want:      []string{"pkgCore", "pkgX", "pkgY"},
		},
		{
			name:      "feature without packages",
			selection: []capability.FeatureID{"bare"},
			core:      []string{"pkgCore"},
			want:      []string{"pkgCore"},
		},
		{
			name:      "core package also required by a feature",
			selection: []capability.FeatureID{"b"},
			core:      []string{"pkgY", "pkgCore", "pkgY"},
			want:      []string{"pkgY", "pkgCore", "pkgX"},
		},
		{
			name:      "unknown features are ignored",
			selection: []capability.FeatureID{"gone", "a"},
			want:      []string{"pkgX"},
		},
		{
			name: "nothing",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(reg, tt.selection, tt.core))
		})
	}
}

func TestResolve_DefaultRegistry(t *testing.T) {
	got := Resolve(capability.Default(),
		[]capability.FeatureID{capability.FeatureJavaScript, capability.FeatureTypeScript, capability.FeatureTypeScriptStrict},
		[]string{"eslint"})
	assert.Equal(t, []string{"eslint", "@eslint/js", "globals", "typescript-eslint"}, got)
}
