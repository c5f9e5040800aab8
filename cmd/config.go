package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/xvierd/focusflow/internal/config"
)

var configReset bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long:  `Prints the settings the dashboard will use and where they come from. Use --reset to rewrite the config file with the defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configReset {
			app.config = config.DefaultConfig()
			if err := config.Save(app.configPath, app.config); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote defaults to %s\n\n", app.configPath)
		}
		printConfig(cmd.OutOrStdout(), app.configPath, app.config)
		return nil
	},
}

func init() {
	configCmd.Flags().BoolVar(&configReset, "reset", false, "Overwrite the config file with the defaults")
	rootCmd.AddCommand(configCmd)
}

func printConfig(w io.Writer, path string, cfg *config.Config) {
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}

	fmt.Fprintf(w, "  Config file:      %s\n", path)
	fmt.Fprintf(w, "  Database:         %s\n", config.GetDBPath(cfg))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Confirm window:   %s\n", cfg.ConfirmWindow)
	fmt.Fprintf(w, "  Tick interval:    %s\n", cfg.TickInterval)
	fmt.Fprintf(w, "  Auto-start:       %s\n", onOff(cfg.Focus.AutoStart))
	fmt.Fprintf(w, "  Git context:      %s\n", onOff(cfg.Focus.GitContext))

	notif := onOff(cfg.Notifications.Enabled)
	if cfg.Notifications.Enabled && cfg.Notifications.Sound {
		notif = "on (with sound)"
	}
	fmt.Fprintf(w, "  Notifications:    %s\n", notif)

	logFile := cfg.Log.File
	if logFile == "" {
		logFile = "off"
	}
	fmt.Fprintf(w, "  Log file:         %s\n", logFile)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Seed tasks:       %d\n", len(cfg.Dashboard.SeedTasks))
	for _, s := range cfg.Dashboard.SeedTasks {
		box := "[ ]"
		if s.Completed {
			box = "[x]"
		}
		fmt.Fprintf(w, "    %s %s\n", box, s.Text)
	}
}
