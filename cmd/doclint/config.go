// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/invowk/doclint/internal/config"
	"github.com/invowk/doclint/internal/issue"
)

// newConfigCommand creates the `doclint config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage doclint configuration",
		Long: `Manage doclint configuration.

Configuration is stored in:
  - Linux: ~/.config/doclint/config.cue
  - macOS: ~/Library/Application Support/doclint/config.cue
  - Windows: %APPDATA%\doclint\config.cue

Every key can also be set through a DOCLINT_ environment variable,
for example DOCLINT_TIMEOUT=10m or DOCLINT_JAZZY_BINARY=/opt/bin/jazzy.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd, app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app)
		},
	})

	return cfgCmd
}

func showConfig(cmd *cobra.Command, app *App) error {
	cfg, err := app.loadConfig(cmd.Context())
	if err != nil {
		app.renderIssue(issue.ConfigLoadFailedId, "auto")
		return app.fail(cmd, err)
	}

	w := app.stdout
	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), configFileLabel(app.configPath))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("jazzy_binary"), valueStyle.Render(cfg.JazzyBinary.String()))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("swift_binary"), valueStyle.Render(cfg.SwiftBinary.String()))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("timeout"), valueStyle.Render(cfg.Timeout.String()))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("config_file_names"), valueStyle.Render(strings.Join(cfg.ConfigFileNames, ", ")))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("output"))
	fmt.Fprintf(w, "  format: %s\n", valueStyle.Render(cfg.Output.Format.String()))

	return nil
}

// configFileLabel names the file `config show` reads, or notes that only
// defaults apply.
func configFileLabel(explicit string) string {
	if explicit != "" {
		return explicit
	}
	cfgDir, err := config.ConfigDir()
	if err == nil {
		cfgPath := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
		if info, statErr := os.Stat(cfgPath); statErr == nil && !info.IsDir() {
			return cfgPath
		}
	}
	return SubtitleStyle.Render("(using defaults)")
}

func initConfig(app *App) error {
	cfgPath, err := config.CreateDefaultConfig("")
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	fmt.Fprintf(app.stdout, "%s Configuration file at %s\n", SuccessStyle.Render("✓"), cfgPath)
	return nil
}
