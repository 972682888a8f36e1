// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/invowk/doclint/internal/issue"
	"github.com/invowk/doclint/internal/jazzy"
)

func newExplainCommand(app *App) *cobra.Command {
	var root string

	explainCmd := &cobra.Command{
		Use:   "explain FILE",
		Short: "Show which jazzy configuration covers a file and what its report contains",
		Long: `Show which jazzy configuration covers a file and what its report contains.

Unlike lint, explain reports why a file has no diagnostics: no governing
.jazzy.yaml, a failed jazzy run, or an unreadable report.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(cmd, app, root, args[0])
		},
	}

	explainCmd.Flags().StringVar(&root, "root", "", "project root (default is the current directory)")

	return explainCmd
}

func runExplain(cmd *cobra.Command, app *App, rootFlag, file string) error {
	ctx := cmd.Context()

	cfg, err := app.loadConfig(ctx)
	if err != nil {
		return app.fail(cmd, err)
	}
	root, err := projectRoot(rootFlag)
	if err != nil {
		return err
	}
	linter, err := app.newLinter(cfg, root)
	if err != nil {
		return err
	}
	path, err := rootRelative(linter.Root(), file)
	if err != nil {
		return err
	}

	w := app.stdout
	fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("File"), path)

	report, configPath, err := linter.Report(ctx, path)
	var reportErr *jazzy.ReportError
	switch {
	case errors.Is(err, jazzy.ErrConfigNotFound):
		fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("Configuration"), SubtitleStyle.Render("(none)"))
		app.renderIssue(issue.JazzyConfigNotFoundId, glamourStyle(cfg))
		return nil
	case errors.As(err, &reportErr):
		fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("Configuration"), configPath)
		fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("Report"), ErrorStyle.Render(reportErr.Kind.String()))
		if reportErr.ExitCode != 0 {
			fmt.Fprintf(w, "%s: %d\n", CmdStyle.Render("Exit status"), reportErr.ExitCode)
		}
		if reportErr.Stderr != "" {
			fmt.Fprintf(w, "%s:\n%s\n", CmdStyle.Render("jazzy stderr"), indent(reportErr.Stderr, "  "))
		}
		app.renderIssue(issue.ReportGenerationFailedId, glamourStyle(cfg))
		cmd.SilenceErrors = true
		return &ExitError{Code: 1, Err: err}
	case err != nil:
		ae := issue.WrapWithContext(err, "resolve jazzy configuration", filepath.Join(linter.Root(), path))
		ae.Suggestions = append(ae.Suggestions, "Check that every parent directory of the file exists and is readable")
		return app.fail(cmd, ae)
	}

	diags := jazzy.Translate(report, path, linter.Root())
	fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("Configuration"), configPath)
	fmt.Fprintf(w, "%s: %s (%d warning(s) in scope)\n", CmdStyle.Render("Report"), SuccessStyle.Render("ok"), len(report.Warnings))
	fmt.Fprintf(w, "%s: %d\n", CmdStyle.Render("Undocumented in file"), len(diags))
	return writeHuman(w, [][]jazzy.Diagnostic{diags})
}
