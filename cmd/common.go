package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ElsiKora/Setup-Wizard-sub001/cmd/ui"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/config"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/detector"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/project"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/selection"
)

// session is the state every command starts from
type session struct {
	root        string
	cfg         *config.Config
	logger      *log.Logger
	evidence    *detector.FSReader
	interactive bool
	prompt      selection.Prompter
}

// newSession resolves the project root from args, loads its configuration and
// sets up logging.
func newSession(cmd *cobra.Command, args []string) (*session, error) {
	projectPath := "."
	if len(args) > 0 {
		projectPath = args[0]
	}

	absPath, err := project.ValidatePath(projectPath)
	if err != nil {
		return nil, err
	}
	root := project.FindRoot(absPath)

	cfg, err := config.Load(root, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := newLogger(cfg.LogLevel)
	logger.Debug("project resolved", "root", root, "git", project.IsGitRepository(root))

	interactive := cfg.Interactive && !jsonOutput && ui.IsInteractive()
	return &session{
		root:        root,
		cfg:         cfg,
		logger:      logger,
		evidence:    detector.NewFSReader(os.DirFS(root)),
		interactive: interactive,
		prompt:      choosePrompter(interactive),
	}, nil
}

func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "setup-wizard"})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// prompter picks the terminal menus when a user can answer them and the
// non-interactive defaults otherwise.
func (s *session) prompter() selection.Prompter {
	return s.prompt
}

func choosePrompter(interactive bool) selection.Prompter {
	if interactive {
		return ui.TerminalPrompter{}
	}
	return selection.AutoPrompter{}
}

// relative returns path relative to the project root, or path itself when it
// lies outside of it.
func (s *session) relative(path string) string {
	rel, err := filepath.Rel(s.root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}

// writeFile writes data to path unless the run is a dry run
func (s *session) writeFile(path string, data []byte) error {
	if s.cfg.DryRun {
		s.logger.Info("dry run, not writing", "path", path)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), config.PermDirectory); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, config.PermConfigFile); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	s.logger.Info("file written", "path", path)
	return nil
}

// confirmOverwrite asks before replacing an existing file that differs from
// data. Without a terminal the file is replaced.
func (s *session) confirmOverwrite(cmd *cobra.Command, path string, data []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if err != nil {
		return true, nil
	}
	if string(existing) == string(data) {
		return true, nil
	}
	if !s.interactive {
		s.logger.Warn("replacing existing file", "path", path)
		return true, nil
	}
	return s.prompter().Confirm(cmd.Context(), fmt.Sprintf("%s already exists. Overwrite it?", s.relative(path)), false)
}
