package cmd

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/ElsiKora/Setup-Wizard-sub001/cmd/steps"
	"github.com/ElsiKora/Setup-Wizard-sub001/cmd/ui/multiInput"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/capability"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/detector"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/emit"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/project"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/selection"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/wizard"
)

var (
	builderInput        string
	builderOutDir       string
	builderFormats      []string
	builderName         string
	builderSourcemap    bool
	builderMinify       bool
	builderDeclarations bool
)

var builderCmd = &cobra.Command{
	Use:   "builder [PROJECT_PATH]",
	Short: "Generate a rollup configuration for a library",
	Long: `Generate a rollup configuration that bundles the project as a library.
TypeScript support is switched on when TypeScript is detected.

Examples:
  setup-wizard builder
  setup-wizard builder --format esm,cjs --sourcemap --no-interactive
  setup-wizard builder --format umd --name myLib --minify`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuilder,
}

func init() {
	builderCmd.Flags().StringVar(&builderInput, "input", "", "Entry file (default src/index.ts or src/index.js)")
	builderCmd.Flags().StringVar(&builderOutDir, "out-dir", "dist", "Output directory")
	builderCmd.Flags().StringSliceVar(&builderFormats, "format", nil, "Output formats: esm, cjs, umd (default esm,cjs)")
	builderCmd.Flags().StringVar(&builderName, "name", "", "Global name for umd output (default derived from package.json)")
	builderCmd.Flags().BoolVar(&builderSourcemap, "sourcemap", false, "Emit source maps")
	builderCmd.Flags().BoolVar(&builderMinify, "minify", false, "Minify the output with terser")
	builderCmd.Flags().BoolVar(&builderDeclarations, "declarations", false, "Emit .d.ts files (TypeScript only)")
}

func runBuilder(cmd *cobra.Command, args []string) error {
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

	manifest, err := s.evidence.Manifest()
	if err != nil {
		s.logger.Debug("no readable package.json", "error", err)
	}
	opts := defaultBuilderOptions(reg, inspection.Detection, manifest.Name, s.evidence)
	if err := applyBuilderFlags(cmd, &opts); err != nil {
		return err
	}

	if s.interactive {
		if err := s.askBuilderOptions(cmd, &opts); err != nil {
			return err
		}
	}

	indent, err := project.Indent(s.root)
	if err != nil {
		s.logger.Warn("ignoring unreadable .editorconfig", "error", err)
		indent = project.DefaultIndent
	}
	artifact, err := emit.BuilderConfig(opts, indent)
	if err != nil {
		return fmt.Errorf("failed to render builder configuration: %w", err)
	}
	installCommand := inspection.PackageManager.AddCommand(artifact.Dependencies)

	path := s.cfg.BuilderPath()
	written := false
	if !s.cfg.DryRun {
		ok, err := s.confirmOverwrite(cmd, path, []byte(artifact.Text))
		if err != nil {
			return err
		}
		if ok {
			if err := s.writeFile(path, []byte(artifact.Text)); err != nil {
				return err
			}
			written = true
		}
	}

	if jsonOutput {
		return writeJSON(struct {
			Options        emit.BuilderOptions `json:"options"`
			BuilderFile    string              `json:"builderFile"`
			Dependencies   []string            `json:"dependencies"`
			InstallCommand string              `json:"installCommand"`
			Written        bool                `json:"written"`
		}{opts, path, artifact.Dependencies, installCommand, written})
	}

	out := cmd.OutOrStdout()
	if s.cfg.DryRun {
		fmt.Fprintf(out, "%s\n", artifact.Text)
	} else if written {
		fmt.Fprintf(out, "\n%s\n", endingMsgStyle.Render("✅ Builder configuration written to "+s.relative(path)))
	}
	fmt.Fprintf(out, "%s\n", endingMsgStyle.Render("Install the dependencies with: "+installCommand))
	fmt.Fprintf(out, "%s\n", tipMsgStyle.Render("Build with: "+inspection.PackageManager.RunCommand("build")+` after adding "build": "rollup -c" to package.json`))
	return nil
}

// defaultBuilderOptions derives the options the project most likely wants
func defaultBuilderOptions(reg *capability.Registry, detection detector.Result, packageName string, ev detector.Evidence) emit.BuilderOptions {
	ts := false
	for _, id := range detection.Frameworks() {
		if fw, ok := reg.Framework(id); ok && fw.ProvidesCapability(capability.CapabilityTypeScript) {
			ts = true
			break
		}
	}

	input := "src/index.js"
	if ts {
		input = "src/index.ts"
	}
	for _, candidate := range []string{input, "src/index.mjs", "index.js"} {
		if ok, err := ev.FileExists(candidate); err == nil && ok {
			input = candidate
			break
		}
	}

	return emit.BuilderOptions{
		Input:        input,
		OutputDir:    "dist",
		Formats:      []emit.BuilderFormat{emit.FormatESM, emit.FormatCJS},
		Name:         globalName(packageName),
		TypeScript:   ts,
		Declarations: ts,
	}
}

// applyBuilderFlags overrides opts with the flags the user set
func applyBuilderFlags(cmd *cobra.Command, opts *emit.BuilderOptions) error {
	flags := cmd.Flags()
	if flags.Changed("input") {
		opts.Input = builderInput
	}
	if flags.Changed("out-dir") {
		opts.OutputDir = builderOutDir
	}
	if flags.Changed("format") {
		formats, err := parseFormats(builderFormats)
		if err != nil {
			return err
		}
		opts.Formats = formats
	}
	if flags.Changed("name") {
		opts.Name = builderName
	}
	if flags.Changed("sourcemap") {
		opts.Sourcemap = builderSourcemap
	}
	if flags.Changed("minify") {
		opts.Minify = builderMinify
	}
	if flags.Changed("declarations") {
		opts.Declarations = builderDeclarations
	}
	return nil
}

func parseFormats(values []string) ([]emit.BuilderFormat, error) {
	var formats []emit.BuilderFormat
	for _, v := range values {
		f := emit.BuilderFormat(strings.ToLower(strings.TrimSpace(v)))
		valid := false
		for _, known := range emit.BuilderFormats {
			if f == known {
				valid = true
				break
			}
		}
		if !valid {
			return nil, fmt.Errorf("unknown output format %q (expected esm, cjs or umd)", v)
		}
		formats = append(formats, f)
	}
	return formats, nil
}

// askBuilderOptions lets the user adjust the formats and the output switches
func (s *session) askBuilderOptions(cmd *cobra.Command, opts *emit.BuilderOptions) error {
	if !cmd.Flags().Changed("format") {
		step := steps.InitSteps(capability.Default()).Steps["builder_formats"]
		initial := make([]string, len(opts.Formats))
		for i, f := range opts.Formats {
			initial[i] = string(f)
		}
		values, err := multiInput.ShowMultiSelect(step, initial, true, nil)
		if errors.Is(err, multiInput.ErrCancelled) {
			return selection.ErrAborted
		}
		if err != nil {
			return err
		}
		formats, err := parseFormats(values)
		if err != nil {
			return err
		}
		opts.Formats = formats
	}

	p := s.prompter()
	ctx := cmd.Context()
	var err error
	if !cmd.Flags().Changed("sourcemap") {
		if opts.Sourcemap, err = p.Confirm(ctx, "Emit source maps?", true); err != nil {
			return err
		}
	}
	if !cmd.Flags().Changed("minify") {
		if opts.Minify, err = p.Confirm(ctx, "Minify the output with terser?", false); err != nil {
			return err
		}
	}
	if opts.TypeScript && !cmd.Flags().Changed("declarations") {
		if opts.Declarations, err = p.Confirm(ctx, "Emit type declarations?", true); err != nil {
			return err
		}
	}
	return nil
}

// globalName turns a package name such as @scope/my-lib into myLib
func globalName(packageName string) string {
	if i := strings.LastIndex(packageName, "/"); i >= 0 {
		packageName = packageName[i+1:]
	}

	var b strings.Builder
	upper := false
	for _, r := range packageName {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = b.Len() > 0
			continue
		}
		if b.Len() == 0 && unicode.IsDigit(r) {
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return "bundle"
	}
	return b.String()
}
