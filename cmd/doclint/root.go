// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for doclint.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/invowk/doclint/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the doclint command tree on top of app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "doclint",
		Short: "Report missing Swift and Objective-C documentation",
		Long: TitleStyle.Render("doclint") + SubtitleStyle.Render(" - documentation coverage lint backed by jazzy") + `

doclint runs jazzy once per .jazzy.yaml scope and reports every
undocumented public API as a line-anchored warning of the file it
lives in.

` + SubtitleStyle.Render("Examples:") + `
  doclint lint Sources/App/AppDelegate.swift   Lint one file
  doclint lint --output json Sources/**/*.swift Lint many files as JSON
  doclint explain Sources/Kit/Kit.swift        Show how a file is covered
  doclint info                                  Show jazzy and swift versions
  doclint config show                           Show current configuration`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/doclint/config.cue)")

	rootCmd.AddCommand(newLintCommand(app))
	rootCmd.AddCommand(newExplainCommand(app))
	rootCmd.AddCommand(newInfoCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI. It is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// fail prints err for the user and turns it into a silent exit status 1.
func (a *App) fail(cmd *cobra.Command, err error) error {
	cmd.SilenceErrors = true
	fmt.Fprintln(a.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, a.verbose))
	return &ExitError{Code: 1, Err: err}
}

// renderIssue writes a catalog entry to stderr. Rendering problems are not
// worth failing a command for.
func (a *App) renderIssue(id issue.Id, style string) {
	rendered, err := issue.Get(id).Render(style)
	if err != nil {
		rendered = issue.Get(id).Markdown() + "\n"
	}
	fmt.Fprint(a.stderr, rendered)
}
