package detector

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/capability"
)

func testRegistry(t *testing.T) *capability.Registry {
	t.Helper()
	reg, err := capability.New(
		[]capability.Framework{
			{
				ID:             "files",
				FileIndicators: []string{"a.config.js", "b.config.js"},
			},
			{
				ID: "prod",
				PackageIndicators: capability.PackageIndicators{
					Dependencies: []string{"prod-pkg"},
				},
			},
			{
				ID: "dev",
				PackageIndicators: capability.PackageIndicators{
					DevDependencies: []string{"dev-pkg"},
				},
			},
			{
				ID: "either",
				PackageIndicators: capability.PackageIndicators{
					Either: []string{"either-pkg"},
				},
			},
			{ID: "fallback"},
		},
		[]capability.Feature{{ID: "javascript", Flag: "withJavascript", IsRequired: true}},
	)
	require.NoError(t, err)
	return reg
}

func depsEvidence(files map[string]bool, prod, dev map[string]string) EvidenceFuncs {
	return EvidenceFuncs{
		FileExistsFunc: func(path string) (bool, error) {
			return files[path], nil
		},
		DependenciesFunc: func(section Section) (map[string]string, error) {
			if section == SectionProduction {
				return prod, nil
			}
			return dev, nil
		},
	}
}

func TestDetect_EachIndicatorKind(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]bool
		prod  map[string]string
		dev   map[string]string
		want  []capability.FrameworkID
	}{
		{
			name: "nothing matches",
			want: []capability.FrameworkID{},
		},
		{
			name:  "first file indicator",
			files: map[string]bool{"a.config.js": true},
			want:  []capability.FrameworkID{"files"},
		},
		{
			name:  "second file indicator",
			files: map[string]bool{"b.config.js": true},
			want:  []capability.FrameworkID{"files"},
		},
		{
			name: "production dependency",
			prod: map[string]string{"prod-pkg": "1.0.0"},
			want: []capability.FrameworkID{"prod"},
		},
		{
			name: "production indicator only counts in production",
			dev:  map[string]string{"prod-pkg": "1.0.0"},
			want: []capability.FrameworkID{},
		},
		{
			name: "dev dependency",
			dev:  map[string]string{"dev-pkg": "1.0.0"},
			want: []capability.FrameworkID{"dev"},
		},
		{
			name: "dev indicator only counts in dev",
			prod: map[string]string{"dev-pkg": "1.0.0"},
			want: []capability.FrameworkID{},
		},
		{
			name: "either in production",
			prod: map[string]string{"either-pkg": "1.0.0"},
			want: []capability.FrameworkID{"either"},
		},
		{
			name: "either in dev",
			dev:  map[string]string{"either-pkg": "1.0.0"},
			want: []capability.FrameworkID{"either"},
		},
		{
			name:  "several at once",
			files: map[string]bool{"a.config.js": true},
			prod:  map[string]string{"prod-pkg": "1"},
			dev:   map[string]string{"dev-pkg": "1", "either-pkg": "1"},
			want:  []capability.FrameworkID{"files", "prod", "dev", "either"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(testRegistry(t))
			result, err := d.Detect(context.Background(), depsEvidence(tt.files, tt.prod, tt.dev))
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, result.Frameworks())
			assert.Empty(t, result.Errors)
			assert.False(t, result.Has("fallback"), "fallback entry must never be detected")
		})
	}
}

func TestDetect_FileLookupFailureIsLocal(t *testing.T) {
	boom := errors.New("permission denied")
	ev := EvidenceFuncs{
		FileExistsFunc: func(path string) (bool, error) {
			if path == "a.config.js" {
				return false, boom
			}
			return path == "b.config.js", nil
		},
		DependenciesFunc: func(section Section) (map[string]string, error) {
			if section == SectionProduction {
				return map[string]string{"prod-pkg": "1"}, nil
			}
			return map[string]string{}, nil
		},
	}

	result, err := New(testRegistry(t)).Detect(context.Background(), ev)
	require.NoError(t, err)

	assert.ElementsMatch(t, []capability.FrameworkID{"files", "prod"}, result.Frameworks())
	require.Len(t, result.Errors, 1)

	var evErr *EvidenceError
	require.ErrorAs(t, result.Errors[0], &evErr)
	assert.Equal(t, capability.FrameworkID("files"), evErr.Framework)
	assert.Equal(t, "a.config.js", evErr.Indicator)
	assert.ErrorIs(t, result.Errors[0], boom)
}

func TestDetect_DependencyFailureKeepsFileEvidence(t *testing.T) {
	ev := EvidenceFuncs{
		FileExistsFunc: func(path string) (bool, error) {
			return path == "a.config.js", nil
		},
		DependenciesFunc: func(Section) (map[string]string, error) {
			return nil, errors.New("broken manifest")
		},
	}

	result, err := New(testRegistry(t)).Detect(context.Background(), ev)
	require.NoError(t, err)
	assert.Equal(t, []capability.FrameworkID{"files"}, result.Frameworks())
	assert.Len(t, result.Errors, 2)
}

func TestDetect_SequentialMatchesConcurrent(t *testing.T) {
	fsys := fstest.MapFS{
		"package.json": {Data: []byte(`{
			"dependencies": {"react": "18.0.0", "next": "14.0.0", "@nestjs/core": "10.0.0"},
			"devDependencies": {"typescript": "5.0.0", "prettier": "3.0.0"}
		}`)},
		"tsconfig.json": {Data: []byte(`{}`)},
	}

	reg := capability.Default()
	seq, err := New(reg, WithConcurrency(0)).Detect(context.Background(), NewFSReader(fsys))
	require.NoError(t, err)
	par, err := New(reg, WithConcurrency(16)).Detect(context.Background(), NewFSReader(fsys))
	require.NoError(t, err)

	assert.Equal(t, seq.Frameworks(), par.Frameworks())
	assert.ElementsMatch(t, []capability.FrameworkID{
		capability.FrameworkTypeScript,
		capability.FrameworkReact,
		capability.FrameworkNext,
		capability.FrameworkNest,
		capability.FrameworkPrettier,
	}, seq.Frameworks())
}

func TestDetect_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(testRegistry(t)).Detect(ctx, depsEvidence(nil, nil, nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDetect_ReactScenario(t *testing.T) {
	fsys := fstest.MapFS{
		"package.json": {Data: []byte(`{"dependencies": {"react": "18.0.0"}}`)},
	}

	result, err := New(capability.Default()).Detect(context.Background(), NewFSReader(fsys))
	require.NoError(t, err)

	assert.Equal(t, []capability.FrameworkID{capability.FrameworkReact}, result.Frameworks())
	assert.Equal(t, []string{"package.json dependencies has react"}, result.Matches[0].Signals)
}

func TestDetect_SignalsForFileIndicator(t *testing.T) {
	fsys := fstest.MapFS{
		"next.config.mjs": {Data: []byte("export default {}")},
	}

	result, err := New(capability.Default()).Detect(context.Background(), NewFSReader(fsys))
	require.NoError(t, err)

	require.True(t, result.Has(capability.FrameworkNext))
	assert.Equal(t, []string{"next.config.mjs"}, result.Matches[0].Signals)
}
