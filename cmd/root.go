// Package cmd provides the CLI commands for the FocusFlow application.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/xvierd/focusflow/internal/adapters/tui"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	dbPath     string
	configPath string
	debug      bool
)

// errNoTerminal is returned when the dashboard is started without a TTY.
var errNoTerminal = errors.New("focusflow needs an interactive terminal")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "focusflow",
	Short: "FocusFlow - a terminal productivity dashboard",
	Long: `FocusFlow is a terminal dashboard with a to-do list, a scratchpad,
a daily goal and a distraction-free flow mode with a focus timer.

Run "focusflow" with no arguments to open the dashboard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runDashboard,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the preference database (default: ~/.focusflow/focusflow.db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: ~/.focusflow/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Write a debug log next to the database")

	// cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("FocusFlow\nVersion: {{.Version}}\n")
}

// runDashboard opens the full-screen dashboard.
func runDashboard(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(os.Stdout.Fd()) {
		return errNoTerminal
	}

	ctx, stop := setupSignalHandler()
	defer stop()

	app.theme.Init(ctx)

	err := tui.Run(ctx, tui.Options{
		Dashboard: dashboardOptions(app.config),
		Theme:     app.theme,
		Themes:    &app.config.Theme,
		Notifier:  app.notifier,
		Git:       app.git,
	})
	if err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}
	return nil
}
