// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/invowk/doclint/internal/config"
	"github.com/invowk/doclint/internal/jazzy"
)

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer; every Cobra handler receives an App reference.
	App struct {
		Config      ConfigProvider
		ExecCommand jazzy.ExecCommandFunc
		stdout      io.Writer
		stderr      io.Writer

		// Root flag values, bound by NewRootCommand.
		verbose    bool
		configPath string
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config      ConfigProvider
		ExecCommand jazzy.ExecCommandFunc
		Stdout      io.Writer
		Stderr      io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.ExecCommand == nil {
		deps.ExecCommand = exec.CommandContext
	}

	return &App{
		Config:      deps.Config,
		ExecCommand: deps.ExecCommand,
		stdout:      deps.Stdout,
		stderr:      deps.Stderr,
	}
}

// loadConfig loads the configuration selected by --config and folds
// ui.verbose into the --verbose flag.
func (a *App) loadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: a.configPath})
	if err != nil {
		return nil, err
	}
	if cfg.UI.Verbose {
		a.verbose = true
	}
	return cfg, nil
}

// newLinter builds a jazzy linter for root from cfg.
func (a *App) newLinter(cfg *config.Config, root string) (*jazzy.Linter, error) {
	return jazzy.New(root,
		jazzy.WithJazzyBinary(cfg.JazzyBinary.String()),
		jazzy.WithSwiftBinary(cfg.SwiftBinary.String()),
		jazzy.WithConfigNames(cfg.ConfigFileNames...),
		jazzy.WithTimeout(cfg.Timeout),
		jazzy.WithExecCommand(a.ExecCommand),
		jazzy.WithLogger(jazzy.NewLogger(a.stderr, a.verbose)),
	)
}

// glamourStyle maps the configured color scheme to a glamour style name.
func glamourStyle(cfg *config.Config) string {
	if cfg == nil {
		return "auto"
	}
	switch cfg.UI.ColorScheme {
	case config.ColorSchemeDark:
		return "dark"
	case config.ColorSchemeLight:
		return "light"
	default:
		return "auto"
	}
}
