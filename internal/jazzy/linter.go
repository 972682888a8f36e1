// SPDX-License-Identifier: MPL-2.0

package jazzy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/charmbracelet/log"
	"github.com/viant/afs"

	"github.com/invowk/doclint/internal/discovery"
)

// DefaultTimeout bounds a single jazzy run.
const DefaultTimeout = 5 * time.Minute

type (
	// Linter reports missing documentation for individual files of one
	// project. Reports are produced once per jazzy configuration and shared
	// by every file that configuration governs. A Linter is safe for
	// concurrent use.
	Linter struct {
		resolver  *discovery.Resolver
		probe     *VersionProbe
		generator *Generator
		cache     *ReportCache
		logger    *log.Logger

		binary      string
		execCommand ExecCommandFunc
	}

	// Option configures a Linter.
	Option func(*options)

	options struct {
		binary      string
		swiftBinary string
		configNames []string
		timeout     time.Duration
		tempDir     string
		execCommand ExecCommandFunc
		logger      *log.Logger
	}
)

// WithJazzyBinary sets the jazzy executable.
func WithJazzyBinary(path string) Option {
	return func(o *options) {
		if path != "" {
			o.binary = path
		}
	}
}

// WithSwiftBinary sets the swift executable used for the version hint.
func WithSwiftBinary(path string) Option {
	return func(o *options) {
		if path != "" {
			o.swiftBinary = path
		}
	}
}

// WithConfigNames overrides the recognized configuration file names.
func WithConfigNames(names ...string) Option {
	return func(o *options) {
		if len(names) > 0 {
			o.configNames = names
		}
	}
}

// WithTimeout bounds each jazzy run. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithTempDir sets the parent directory of the per-run scratch directories.
func WithTempDir(dir string) Option {
	return func(o *options) { o.tempDir = dir }
}

// WithExecCommand replaces exec.CommandContext, mainly for tests.
func WithExecCommand(fn ExecCommandFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.execCommand = fn
		}
	}
}

// WithLogger sets the logger. The default writes warnings to stderr.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewLogger returns a logger prefixed with the linter's configuration name
// writing to w. It logs warnings, and debug output too when verbose is set.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: ConfigurationName})
	logger.SetLevel(log.WarnLevel)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// New creates a Linter for the project rooted at projectRoot.
func New(projectRoot string, opts ...Option) (*Linter, error) {
	o := options{
		binary:      DefaultBinary,
		swiftBinary: DefaultSwiftBinary,
		timeout:     DefaultTimeout,
		execCommand: exec.CommandContext,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = NewLogger(os.Stderr, false)
	}

	resolver, err := discovery.NewResolver(projectRoot, o.configNames...)
	if err != nil {
		return nil, fmt.Errorf("jazzy linter: %w", err)
	}

	probe := NewVersionProbe(o.swiftBinary, o.execCommand)
	gen := &Generator{
		binary:      o.binary,
		probe:       probe,
		timeout:     o.timeout,
		tempDir:     o.tempDir,
		execCommand: o.execCommand,
		fs:          afs.New(),
		logger:      o.logger,
	}

	return &Linter{
		resolver:    resolver,
		probe:       probe,
		generator:   gen,
		cache:       NewReportCache(gen.Generate),
		logger:      o.logger,
		binary:      o.binary,
		execCommand: o.execCommand,
	}, nil
}

// Root returns the absolute project root.
func (l *Linter) Root() string {
	return l.resolver.Root()
}

// LintPath returns the missing-documentation diagnostics for path, a
// root-relative file path. Files no configuration governs, and files whose
// report could not be produced, yield no diagnostics.
func (l *Linter) LintPath(ctx context.Context, path string) []Diagnostic {
	report, configPath, err := l.Report(ctx, path)
	switch {
	case errors.Is(err, ErrConfigNotFound):
		l.logger.Debug("no jazzy configuration", "path", path)
		return nil
	case err != nil:
		l.logger.Debug("skipping file", "path", path, "config", configPath, "kind", FailureKindOf(err), "err", err)
		return nil
	}
	return Translate(report, path, l.Root())
}

// Report returns the coverage report governing path together with the
// configuration it came from. It returns ErrConfigNotFound when no
// configuration applies and a *ReportError when the report failed.
func (l *Linter) Report(ctx context.Context, path string) (*CoverageReport, string, error) {
	configPath, found, err := l.resolver.Resolve(path)
	if err != nil {
		return nil, "", err
	}
	if !found {
		return nil, "", ErrConfigNotFound
	}
	report, err := l.cache.Get(ctx, configPath)
	return report, configPath, err
}

// ToolVersion returns the installed jazzy version.
func (l *Linter) ToolVersion(ctx context.Context) (string, error) {
	return ToolVersion(ctx, l.execCommand, l.binary)
}

// SwiftVersion returns the swift version passed to jazzy, if known.
func (l *Linter) SwiftVersion(ctx context.Context) (string, bool) {
	return l.probe.Version(ctx)
}
