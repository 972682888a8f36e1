// SPDX-License-Identifier: MPL-2.0

package jazzy

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/viant/afs"
	"mvdan.cc/sh/v3/syntax"
)

// Generator runs jazzy for one configuration and parses its report.
type Generator struct {
	binary      string
	probe       *VersionProbe
	timeout     time.Duration
	tempDir     string
	execCommand ExecCommandFunc
	fs          afs.Service
	logger      *log.Logger
}

// Generate runs jazzy against configPath and returns the parsed report.
//
// Every failure is returned as a *ReportError. The only other errors are
// context errors of ctx itself, which mean the run was abandoned rather than
// attempted. The scratch directory is removed on every path.
func (g *Generator) Generate(ctx context.Context, configPath string) (*CoverageReport, error) {
	scopeDir := filepath.Dir(configPath)

	scratch, err := os.MkdirTemp(g.tempDir, filepath.Base(scopeDir)+"-jazzy-*")
	if err != nil {
		return nil, g.fail(&ReportError{Kind: FailureScratchDir, ConfigPath: configPath, Cause: err})
	}
	defer func() {
		if rmErr := os.RemoveAll(scratch); rmErr != nil {
			g.logger.Warn("failed to remove scratch directory", "dir", scratch, "err", rmErr)
		}
	}()

	version, ok := g.probe.Version(ctx)
	if !ok {
		g.logger.Debug("swift version unavailable, running without hint")
	}

	args := append(MandatoryFlags(),
		"--output="+scratch,
		"--config="+configPath,
		"--swift-version="+version,
	)

	runCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	cmd := g.execCommand(runCtx, g.binary, args...)
	cmd.Dir = scopeDir
	boundWait(cmd)
	stderr := &tailBuffer{max: maxStderrTail}
	cmd.Stderr = stderr

	g.logger.Debug("running jazzy", "dir", scopeDir, "cmd", quoteCommand(g.binary, args))
	start := time.Now()
	runErr := cmd.Run()
	g.logger.Debug("jazzy finished", "config", configPath, "elapsed", time.Since(start).Round(time.Millisecond))

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return nil, g.fail(&ReportError{
			Kind:       FailureTimeout,
			ConfigPath: configPath,
			Stderr:     stderr.String(),
			Cause:      runCtx.Err(),
		})
	}
	if runErr != nil {
		re := &ReportError{Kind: FailureExecution, ConfigPath: configPath, Stderr: stderr.String(), Cause: runErr}
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			re.ExitCode = exitErr.ExitCode()
		}
		return nil, g.fail(re)
	}

	reportPath := filepath.Join(scratch, ReportFileName)
	data, err := g.fs.DownloadWithURL(ctx, reportPath)
	if err != nil {
		return nil, g.fail(&ReportError{Kind: FailureReportMissing, ConfigPath: configPath, Cause: err})
	}

	report, err := ParseReport(data)
	if err != nil {
		kind := FailureReportMalformed
		if errors.Is(err, ErrReportMissing) {
			kind = FailureReportMissing
		}
		return nil, g.fail(&ReportError{Kind: kind, ConfigPath: configPath, Cause: err})
	}

	g.logger.Debug("parsed coverage report", "config", configPath, "warnings", len(report.Warnings))
	return report, nil
}

func (g *Generator) fail(err *ReportError) *ReportError {
	kv := []any{"config", err.ConfigPath, "kind", err.Kind, "err", err.Cause}
	if err.Stderr != "" {
		kv = append(kv, "stderr", strings.TrimSpace(err.Stderr))
	}
	g.logger.Warn("no documentation coverage report", kv...)
	return err
}

// quoteCommand renders a command line that can be pasted into a shell.
func quoteCommand(name string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	for _, s := range append([]string{name}, args...) {
		q, err := syntax.Quote(s, syntax.LangBash)
		if err != nil {
			q = s
		}
		parts = append(parts, q)
	}
	return strings.Join(parts, " ")
}
