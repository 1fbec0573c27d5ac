package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ElsiKora/Setup-Wizard-sub001/cmd/ui/report"
	"github.com/ElsiKora/Setup-Wizard-sub001/cmd/ui/spinner"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/capability"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/detector"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/wizard"
)

var detectCmd = &cobra.Command{
	Use:   "detect [PROJECT_PATH]",
	Short: "Show detected frameworks and the features they imply",
	Long: `Inspect the project and list the frameworks that were detected, the signals
that matched, and the features the wizard would suggest. Nothing is written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDetect,
}

// detectOutput is the --json shape of the detect command
type detectOutput struct {
	Root           string                  `json:"root"`
	Frameworks     []detector.Match        `json:"frameworks"`
	Features       []capability.FeatureID  `json:"features"`
	PackageManager detector.PackageManager `json:"packageManager"`
	Errors         []string                `json:"errors,omitempty"`
}

func runDetect(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, args)
	if err != nil {
		return err
	}

	reg := capability.Default()
	w := wizard.New(wizard.Options{Registry: reg, Logger: s.logger})

	inspection, err := s.inspect(cmd, w)
	if err != nil {
		return err
	}

	if jsonOutput {
		return writeJSON(newDetectOutput(s.root, inspection))
	}

	out := cmd.OutOrStdout()
	report.Detection(out, reg, inspection.Detection)
	fmt.Fprintln(out)
	report.Features(out, reg, "Suggested features", inspection.AutoDetected, nil)
	fmt.Fprintf(out, "\nPackage manager: %s\n", inspection.PackageManager)
	return nil
}

// inspect runs detection, behind a spinner when a terminal is attached
func (s *session) inspect(cmd *cobra.Command, w *wizard.Wizard) (wizard.Inspection, error) {
	var inspection wizard.Inspection
	detect := func() error {
		var err error
		inspection, err = w.Inspect(cmd.Context(), s.evidence)
		return err
	}

	if !s.interactive {
		return inspection, detect()
	}
	if err := spinner.Run("Detecting frameworks...", detect); err != nil {
		return inspection, err
	}
	return inspection, nil
}

func newDetectOutput(root string, inspection wizard.Inspection) detectOutput {
	out := detectOutput{
		Root:           root,
		Frameworks:     inspection.Detection.Matches,
		Features:       inspection.AutoDetected,
		PackageManager: inspection.PackageManager,
	}
	if out.Frameworks == nil {
		out.Frameworks = []detector.Match{}
	}
	if out.Features == nil {
		out.Features = []capability.FeatureID{}
	}
	for _, err := range inspection.Detection.Errors {
		out.Errors = append(out.Errors, err.Error())
	}
	return out
}

func writeJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
