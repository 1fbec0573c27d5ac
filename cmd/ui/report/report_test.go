package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/capability"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/detector"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/emit"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/selection"
)

func TestDetection(t *testing.T) {
	var buf bytes.Buffer
	Detection(&buf, capability.Default(), detector.Result{
		Matches: []detector.Match{{Framework: capability.FrameworkReact, Signals: []string{"package.json dependencies has react"}}},
	})
	assert.Contains(t, buf.String(), "package.json dependencies has react")

	buf.Reset()
	Detection(&buf, capability.Default(), detector.Result{})
	assert.Equal(t, "No frameworks detected.\n", buf.String())
}

func TestFeatures(t *testing.T) {
	var buf bytes.Buffer
	Features(&buf, capability.Default(), "Selection",
		[]capability.FeatureID{capability.FeatureReact, capability.FeatureJavaScript},
		map[capability.FeatureID]selection.Provenance{
			capability.FeatureReact:      selection.ProvenanceDetected,
			capability.FeatureJavaScript: selection.ProvenanceUserChosen,
		})

	out := buf.String()
	assert.Contains(t, out, "withReact")
	assert.Contains(t, out, "userChosen")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("javascript")), bytes.Index(buf.Bytes(), []byte("withReact")))
}

func TestScripts(t *testing.T) {
	var buf bytes.Buffer
	Scripts(&buf, []emit.Script{{Name: "lint", Command: "eslint ."}})
	assert.Contains(t, buf.String(), "eslint .")
}
