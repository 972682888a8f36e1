// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/invowk/doclint/internal/issue"
	"github.com/invowk/doclint/internal/jazzy"
)

func newInfoCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show linter metadata and the installed jazzy and swift versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, app)
		},
	}
}

func runInfo(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()

	cfg, err := app.loadConfig(ctx)
	if err != nil {
		return app.fail(cmd, err)
	}
	linter, err := app.newLinter(cfg, ".")
	if err != nil {
		return err
	}

	w := app.stdout
	fmt.Fprintln(w, TitleStyle.Render(jazzy.InfoName))
	fmt.Fprintln(w, SubtitleStyle.Render(jazzy.InfoDescription))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("Linter"), jazzy.LinterName)
	fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("Configuration name"), jazzy.ConfigurationName)
	fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("Homepage"), jazzy.InfoURI)
	fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("Install"), jazzy.InstallInstructions)
	fmt.Fprintf(w, "%s: %s (%s, %s)\n", CmdStyle.Render("Rules"),
		jazzy.CodeMissingDocumentation, jazzy.CodeMissingDocumentation.Name(), jazzy.CodeMissingDocumentation.Severity())
	fmt.Fprintln(w)

	missing := false
	if v, err := linter.ToolVersion(ctx); err != nil {
		missing = true
		fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("jazzy"), ErrorStyle.Render("not found"))
		if app.verbose {
			fmt.Fprintf(w, "  %s\n", SubtitleStyle.Render(err.Error()))
		}
		app.renderIssue(issue.JazzyNotFoundId, glamourStyle(cfg))
	} else {
		fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("jazzy"), SuccessStyle.Render(v))
	}

	if v, ok := linter.SwiftVersion(ctx); ok {
		fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("swift"), SuccessStyle.Render(v))
	} else {
		fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("swift"), WarningStyle.Render("unavailable"))
		if app.verbose {
			app.renderIssue(issue.SwiftNotFoundId, glamourStyle(cfg))
		}
	}

	if missing {
		cmd.SilenceErrors = true
		return &ExitError{Code: 1}
	}
	return nil
}
