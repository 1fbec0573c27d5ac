// Package emit renders a resolved feature selection into configuration text.
package emit

import (
	_ "embed"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/capability"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/deps"
)

//go:embed templates/eslint.config.js.tmpl
var lintConfigTemplate string

// DefaultIndent is used when an Emitter has no indent configured
const DefaultIndent = "  "

// Artifact is a rendered configuration file and the packages it needs.
type Artifact struct {
	Text         string
	Dependencies []string
}

// Emitter renders lint configuration. It only looks at the selection it is
// given, never at detection state.
type Emitter struct {
	Registry     *capability.Registry
	CorePackages []string
	Indent       string
}

// Emit renders one flag line per selected feature and the ignore patterns as
// a literal array. Selecting an unknown feature is an error.
func (e *Emitter) Emit(selection []capability.FeatureID, ignores []string) (Artifact, error) {
	var flags strings.Builder
	for _, id := range selection {
		f, ok := e.Registry.Feature(id)
		if !ok {
			return Artifact{}, fmt.Errorf("cannot emit unknown feature %q", id)
		}
		fmt.Fprintf(&flags, "    %s: true,\n", f.Flag)
	}

	text := render(lintConfigTemplate, map[string]string{
		"IGNORES": jsStringArray(ignores),
		"FLAGS":   flags.String(),
	})

	return Artifact{
		Text:         reindent(text, e.indent()),
		Dependencies: deps.Resolve(e.Registry, selection, e.CorePackages),
	}, nil
}

func (e *Emitter) indent() string {
	if e.Indent == "" {
		return DefaultIndent
	}
	return e.Indent
}

var flagLine = regexp.MustCompile(`^\s*(with[A-Za-z0-9_]+)\s*:\s*true\s*,?\s*$`)

// ParseFlags returns the flags enabled in rendered configuration text, in the
// order they appear. Lines that are not "<flag>: true" are ignored.
func ParseFlags(text string) []string {
	var flags []string
	seen := make(map[string]struct{})
	for _, line := range strings.Split(text, "\n") {
		m := flagLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		flags = append(flags, m[1])
	}
	return flags
}

// render fills {{KEY}} placeholders in one pass over template, so a value
// that itself contains a placeholder is written out literally.
func render(template string, data map[string]string) string {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, key := range keys {
		pairs = append(pairs, "{{"+key+"}}", data[key])
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

func jsStringArray(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// reindent swaps the two-space indentation templates are written with for
// indent.
func reindent(text, indent string) string {
	if indent == DefaultIndent {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		depth := (len(line) - len(trimmed)) / len(DefaultIndent)
		if depth == 0 {
			continue
		}
		lines[i] = strings.Repeat(indent, depth) + trimmed
	}
	return strings.Join(lines, "\n")
}
