package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const Version = "1.0.0"

var (
	jsonOutput bool

	logoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6")).Bold(true)
	tipMsgStyle    = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("190")).Italic(true)
	endingMsgStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
	warnMsgStyle   = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("214"))
)

const Logo = `
███████╗███████╗████████╗██╗   ██╗██████╗     ██╗    ██╗██╗███████╗ █████╗ ██████╗ ██████╗
██╔════╝██╔════╝╚══██╔══╝██║   ██║██╔══██╗    ██║    ██║██║╚══███╔╝██╔══██╗██╔══██╗██╔══██╗
███████╗█████╗     ██║   ██║   ██║██████╔╝    ██║ █╗ ██║██║  ███╔╝ ███████║██████╔╝██║  ██║
╚════██║██╔══╝     ██║   ██║   ██║██╔═══╝     ██║███╗██║██║ ███╔╝  ██╔══██║██╔══██╗██║  ██║
███████║███████╗   ██║   ╚██████╔╝██║         ╚███╔███╔╝██║███████╗██║  ██║██║  ██║██████╔╝
╚══════╝╚══════╝   ╚═╝    ╚═════╝ ╚═╝          ╚══╝╚══╝ ╚═╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝
`

var rootCmd = &cobra.Command{
	Use:   "setup-wizard [PROJECT_PATH]",
	Short: "Detect a JavaScript project's tooling and generate its lint configuration",
	Long: Logo + `
Setup Wizard inspects package.json and the project's config files, works out which
frameworks and tools are in use, and lets you confirm the lint features to enable.

Running without a subcommand is the same as 'setup-wizard init'.`,
	Version:       Version,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runInit,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate("setup-wizard version {{.Version}}\n")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(builderCmd)

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&jsonOutput, "json", false, "Output results as JSON (disables interactive mode)")
	flags.Bool("no-interactive", false, "Skip interactive prompts (for CI/automation)")
	flags.String("config", "", "Path of the generated lint configuration (default \"eslint.config.js\")")
	flags.String("selection-file", "", "Path of the saved feature selection")
	flags.String("builder-file", "", "Path of the generated bundler configuration")
	flags.Bool("allow-empty", false, "Accept an empty feature selection")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.StringSlice("core-package", nil, "Package always installed with the lint configuration (repeatable)")
	flags.StringSlice("ignore", nil, "Extra ignore pattern for the lint configuration (repeatable)")
	flags.Bool("dry-run", false, "Print what would be written without touching any file")
}
