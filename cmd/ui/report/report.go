// Package report renders detection and selection summaries as tables.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/capability"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/detector"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/emit"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/selection"
)

func newTable(w io.Writer, title string, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(title)
	t.AppendHeader(header)
	return t
}

// Detection writes the detected frameworks with the signals that matched
func Detection(w io.Writer, reg *capability.Registry, result detector.Result) {
	if len(result.Matches) == 0 {
		_, _ = fmt.Fprintln(w, "No frameworks detected.")
		return
	}

	t := newTable(w, "Detected frameworks", table.Row{"Framework", "Signals"})
	for _, m := range result.Matches {
		name := string(m.Framework)
		if fw, ok := reg.Framework(m.Framework); ok && fw.DisplayName != "" {
			name = fw.DisplayName
		}
		t.AppendRow(table.Row{name, strings.Join(m.Signals, "\n")})
	}
	t.Render()
}

// Features writes the given features grouped by heading
func Features(w io.Writer, reg *capability.Registry, title string, ids []capability.FeatureID, provenance map[capability.FeatureID]selection.Provenance) {
	if len(ids) == 0 {
		_, _ = fmt.Fprintln(w, "No features.")
		return
	}

	header := table.Row{"Feature", "Group", "Flag"}
	if provenance != nil {
		header = append(header, "Source")
	}
	t := newTable(w, title, header)
	for _, id := range reg.SortFeatures(ids) {
		f, _ := reg.Feature(id)
		row := table.Row{id, f.Group, f.Flag}
		if provenance != nil {
			row = append(row, provenance[id])
		}
		t.AppendRow(row)
	}
	t.Render()
}

// Scripts writes the package scripts to add
func Scripts(w io.Writer, scripts []emit.Script) {
	t := newTable(w, "package.json scripts", table.Row{"Script", "Command"})
	for _, s := range scripts {
		t.AppendRow(table.Row{s.Name, s.Command})
	}
	t.Render()
}
