package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ElsiKora/Setup-Wizard-sub001/cmd/ui/report"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/capability"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/emit"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/project"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/selection"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/wizard"
)

var initCmd = &cobra.Command{
	Use:   "init [PROJECT_PATH]",
	Short: "Choose lint features and generate the lint configuration",
	Long: `Detect the project's frameworks, confirm the suggested lint features and
write the lint configuration. The choice is saved so the next run starts from it.

Examples:
  setup-wizard init
  setup-wizard init ./packages/web --no-interactive
  setup-wizard init --allow-empty --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

// initOutput is the --json shape of the init command
type initOutput struct {
	RunID          string                                        `json:"runId"`
	Detection      detectOutput                                  `json:"detection"`
	Features       []capability.FeatureID                        `json:"features"`
	Provenance     map[capability.FeatureID]selection.Provenance `json:"provenance"`
	Attempts       int                                           `json:"attempts"`
	ConfigFile     string                                        `json:"configFile"`
	Dependencies   []string                                      `json:"dependencies"`
	InstallCommand string                                        `json:"installCommand"`
	Scripts        []emit.Script                                 `json:"scripts"`
	Written        bool                                          `json:"written"`
}

func runInit(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, args)
	if err != nil {
		return err
	}
	reg := capability.Default()

	gitignore, err := project.LoadGitIgnore(s.root)
	if err != nil {
		s.logger.Warn("ignoring unreadable .gitignore", "error", err)
		gitignore = project.ParseGitIgnore("")
	}
	indent, err := project.Indent(s.root)
	if err != nil {
		s.logger.Warn("ignoring unreadable .editorconfig", "error", err)
		indent = project.DefaultIndent
	}

	w := wizard.New(wizard.Options{
		Registry: reg,
		Prompter: s.prompter(),
		Store: selection.Stores{
			selection.NewFileStore(s.cfg.SelectionPath()),
			&selection.ConfigFlagStore{Path: s.cfg.ConfigPath(), Registry: reg},
		},
		CorePackages:    s.cfg.CorePackages,
		ExtraIgnores:    append(gitignore.Patterns(), s.cfg.ExtraIgnores...),
		Indent:          indent,
		RequireNonEmpty: s.cfg.RequireNonEmpty,
		Logger:          s.logger,
	})

	if s.interactive {
		fmt.Printf("%s\n", logoStyle.Render(Logo))
	}

	inspection, err := s.inspect(cmd, w)
	if err != nil {
		return err
	}
	if s.interactive {
		report.Detection(cmd.OutOrStdout(), reg, inspection.Detection)
	}

	result, err := w.Complete(cmd.Context(), inspection)
	if errors.Is(err, selection.ErrAborted) {
		return fmt.Errorf("setup cancelled: %w", err)
	}
	if err != nil {
		return err
	}

	configPath := s.cfg.ConfigPath()
	if gitignore.Ignores(s.relative(configPath)) {
		s.logger.Warn("the generated configuration is ignored by .gitignore", "path", s.relative(configPath))
	}

	written, err := s.writeConfig(cmd, configPath, result)
	if err != nil {
		return err
	}

	if jsonOutput {
		return writeJSON(initOutput{
			RunID:          result.RunID,
			Detection:      newDetectOutput(s.root, result.Inspection),
			Features:       result.Selection.Features,
			Provenance:     result.Selection.Provenance,
			Attempts:       result.Attempts,
			ConfigFile:     configPath,
			Dependencies:   result.Artifact.Dependencies,
			InstallCommand: result.InstallCommand,
			Scripts:        result.Scripts,
			Written:        written,
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	report.Features(out, reg, "Selected features", result.Selection.Features, result.Selection.Provenance)
	fmt.Fprintln(out)
	report.Scripts(out, result.Scripts)

	if s.cfg.DryRun {
		fmt.Fprintf(out, "\n%s\n", result.Artifact.Text)
	} else if written {
		fmt.Fprintf(out, "\n%s\n", endingMsgStyle.Render("✅ Lint configuration written to "+s.relative(configPath)))
	} else {
		fmt.Fprintf(out, "\n%s\n", warnMsgStyle.Render("Kept the existing "+s.relative(configPath)))
	}
	if len(result.Artifact.Dependencies) > 0 {
		fmt.Fprintf(out, "%s\n", endingMsgStyle.Render("Install the dependencies with: "+result.InstallCommand))
	}
	if s.interactive {
		fmt.Fprintf(out, "\n%s\n", tipMsgStyle.Render("Tip: Use --no-interactive to reuse the saved selection in CI"))
	}
	return nil
}

// writeConfig writes the rendered configuration and saves the selection.
// It reports whether the configuration file was written. A declined
// overwrite saves nothing, so the saved selection always matches the file.
func (s *session) writeConfig(cmd *cobra.Command, configPath string, result *wizard.Report) (bool, error) {
	if s.cfg.DryRun {
		return false, nil
	}

	data := []byte(result.Artifact.Text)
	ok, err := s.confirmOverwrite(cmd, configPath, data)
	if err != nil || !ok {
		return false, err
	}
	if err := s.writeFile(configPath, data); err != nil {
		return false, err
	}

	if err := selection.NewFileStore(s.cfg.SelectionPath()).Save(result.Selection.Features); err != nil {
		return true, fmt.Errorf("failed to save selection: %w", err)
	}
	return true, nil
}
