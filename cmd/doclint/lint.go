// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/invowk/doclint/internal/config"
	"github.com/invowk/doclint/internal/jazzy"
)

type lintOptions struct {
	root              string
	output            string
	jobs              int
	timeout           time.Duration
	failOnDiagnostics bool
}

func newLintCommand(app *App) *cobra.Command {
	opts := lintOptions{}

	lintCmd := &cobra.Command{
		Use:   "lint FILE...",
		Short: "Report undocumented APIs in the given files",
		Long: `Report undocumented APIs in the given files.

Each file is governed by the nearest .jazzy.yaml (or .jazzy.yml) in its
directory or a parent directory up to --root. jazzy runs at most once per
configuration; files without a configuration produce no diagnostics.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, app, opts, args)
		},
	}

	lintCmd.Flags().StringVar(&opts.root, "root", "", "project root (default is the current directory)")
	lintCmd.Flags().StringVarP(&opts.output, "output", "o", "", "output format: human or json (default from config)")
	lintCmd.Flags().IntVarP(&opts.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of files linted in parallel")
	lintCmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "maximum duration of one jazzy run (default from config)")
	lintCmd.Flags().BoolVar(&opts.failOnDiagnostics, "fail-on-diagnostics", false, "exit with status 1 when any diagnostic is reported")

	return lintCmd
}

func runLint(cmd *cobra.Command, app *App, opts lintOptions, files []string) error {
	ctx := cmd.Context()

	cfg, err := app.loadConfig(ctx)
	if err != nil {
		return app.fail(cmd, err)
	}

	format := cfg.Output.Format
	if opts.output != "" {
		format = config.OutputFormat(opts.output)
		if valid, errs := format.IsValid(); !valid {
			return errs[0]
		}
	}
	if opts.timeout > 0 {
		cfg.Timeout = opts.timeout
	}

	root, err := projectRoot(opts.root)
	if err != nil {
		return err
	}
	linter, err := app.newLinter(cfg, root)
	if err != nil {
		return err
	}

	paths := make([]string, len(files))
	for i, f := range files {
		if paths[i], err = rootRelative(linter.Root(), f); err != nil {
			return err
		}
	}

	results, err := lintAll(ctx, linter, paths, opts.jobs)
	if err != nil {
		return err
	}

	total := 0
	for _, diags := range results {
		total += len(diags)
	}

	switch format {
	case config.OutputFormatJSON:
		err = writeJSON(app.stdout, results)
	default:
		err = writeHuman(app.stdout, results)
		writeSummary(app.stderr, total, len(paths))
	}
	if err != nil {
		return err
	}

	if opts.failOnDiagnostics && total > 0 {
		cmd.SilenceErrors = true
		return &ExitError{Code: 1}
	}
	return nil
}

// lintAll lints paths with at most jobs files in flight and returns the
// diagnostics in the order of paths.
func lintAll(ctx context.Context, linter *jazzy.Linter, paths []string, jobs int) ([][]jazzy.Diagnostic, error) {
	if jobs < 1 {
		jobs = 1
	}

	results := make([][]jazzy.Diagnostic, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			results[i] = linter.LintPath(gctx, path)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func projectRoot(flagValue string) (string, error) {
	if flagValue == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to determine working directory: %w", err)
		}
		return wd, nil
	}
	return filepath.Abs(flagValue)
}

// rootRelative turns a command-line path into the slash-separated,
// root-relative form diagnostics are keyed by.
func rootRelative(root, file string) (string, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", fmt.Errorf("%s is not below %s: %w", file, root, err)
	}
	return filepath.ToSlash(rel), nil
}

func writeJSON(w io.Writer, results [][]jazzy.Diagnostic) error {
	flat := []jazzy.Diagnostic{}
	for _, diags := range results {
		flat = append(flat, diags...)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(flat)
}

func writeHuman(w io.Writer, results [][]jazzy.Diagnostic) error {
	for _, diags := range results {
		for _, d := range diags {
			severity := WarningStyle.Render(string(d.Severity))
			if d.Severity == jazzy.SeverityError {
				severity = ErrorStyle.Render(string(d.Severity))
			}
			if _, err := fmt.Fprintf(w, "%s %s %s %s\n%s\n",
				CmdStyle.Render(fmt.Sprintf("%s:%d:%d:", d.Path, d.Line, d.Column)),
				severity,
				CmdStyle.Render(d.Code.String()),
				d.Name,
				indent(d.Message, "    "),
			); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSummary(w io.Writer, total, files int) {
	if total == 0 {
		fmt.Fprintf(w, "%s no missing documentation in %d file(s)\n", SuccessStyle.Render("✓"), files)
		return
	}
	fmt.Fprintf(w, "%s %d undocumented symbol(s) in %d file(s)\n", WarningStyle.Render("!"), total, files)
}

func indent(s, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}
