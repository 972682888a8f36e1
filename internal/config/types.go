// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// OutputFormatHuman prints styled, line-oriented diagnostics.
	OutputFormatHuman OutputFormat = "human"
	// OutputFormatJSON prints diagnostics as a JSON array.
	OutputFormatJSON OutputFormat = "json"

	// DefaultTimeout bounds a single jazzy invocation.
	DefaultTimeout = 5 * time.Minute
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidOutputFormat is returned when an OutputFormat value is not recognized.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrInvalidBinaryFilePath is returned when a BinaryFilePath value is whitespace-only.
	ErrInvalidBinaryFilePath = errors.New("invalid binary file path")
	// ErrInvalidConfigFileName is returned when a scope marker name is empty or contains a separator.
	ErrInvalidConfigFileName = errors.New("invalid config file name")
	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// OutputFormat selects how `doclint lint` prints diagnostics.
	OutputFormat string

	// InvalidOutputFormatError is returned when an OutputFormat value is not recognized.
	InvalidOutputFormatError struct {
		Value OutputFormat
	}

	// BinaryFilePath is a path or PATH-relative name of an executable.
	// The zero value ("") is valid and means "use the default binary name".
	BinaryFilePath string

	// InvalidBinaryFilePathError is returned when a BinaryFilePath value is
	// non-empty but whitespace-only.
	InvalidBinaryFilePathError struct {
		Value BinaryFilePath
	}

	// InvalidConfigFileNameError is returned for an unusable scope marker name.
	InvalidConfigFileNameError struct {
		Value string
	}

	// InvalidTimeoutError is returned when Timeout is zero or negative.
	InvalidTimeoutError struct {
		Value time.Duration
	}

	// InvalidConfigError collects field-level validation errors of a Config.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// JazzyBinary overrides the jazzy executable (default "jazzy").
		JazzyBinary BinaryFilePath `json:"jazzy_binary" mapstructure:"jazzy_binary"`
		// SwiftBinary overrides the swift executable (default "swift").
		SwiftBinary BinaryFilePath `json:"swift_binary" mapstructure:"swift_binary"`
		// ConfigFileNames lists the jazzy config spellings searched in each directory.
		ConfigFileNames []string `json:"config_file_names" mapstructure:"config_file_names"`
		// Timeout bounds a single jazzy run.
		Timeout time.Duration `json:"timeout" mapstructure:"timeout"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Output configures lint output
		Output OutputConfig `json:"output" mapstructure:"output"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables debug logging
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// OutputConfig configures how diagnostics are printed.
	OutputConfig struct {
		Format OutputFormat `json:"format" mapstructure:"format"`
	}
)

// DefaultConfigFileNames returns the jazzy config spellings, primary first.
func DefaultConfigFileNames() []string {
	return []string{".jazzy.yaml", ".jazzy.yml"}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		JazzyBinary:     "jazzy",
		SwiftBinary:     "swift",
		ConfigFileNames: DefaultConfigFileNames(),
		Timeout:         DefaultTimeout,
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
		Output: OutputConfig{
			Format: OutputFormatHuman,
		},
	}
}

// IsValid returns whether the Config has valid fields, collecting every field error.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.JazzyBinary.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.SwiftBinary.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	for _, name := range c.ConfigFileNames {
		if strings.TrimSpace(name) == "" || strings.ContainsAny(name, `/\`) {
			errs = append(errs, &InvalidConfigFileNameError{Value: name})
		}
	}
	if c.Timeout <= 0 {
		errs = append(errs, &InvalidTimeoutError{Value: c.Timeout})
	}
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Output.Format.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, 0, len(e.FieldErrors))
	for _, err := range e.FieldErrors {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// String returns the string representation of the BinaryFilePath.
func (p BinaryFilePath) String() string { return string(p) }

// IsValid returns whether the BinaryFilePath is valid.
// The zero value is valid; non-empty values must not be whitespace-only.
func (p BinaryFilePath) IsValid() (bool, []error) {
	if p == "" {
		return true, nil
	}
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidBinaryFilePathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface.
func (e *InvalidBinaryFilePathError) Error() string {
	return fmt.Sprintf("invalid binary file path %q: must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidBinaryFilePath for errors.Is() compatibility.
func (e *InvalidBinaryFilePathError) Unwrap() error { return ErrInvalidBinaryFilePath }

// Error implements the error interface.
func (e *InvalidConfigFileNameError) Error() string {
	return fmt.Sprintf("invalid config file name %q: must be a bare, non-empty file name", e.Value)
}

// Unwrap returns ErrInvalidConfigFileName for errors.Is() compatibility.
func (e *InvalidConfigFileNameError) Unwrap() error { return ErrInvalidConfigFileName }

// Error implements the error interface.
func (e *InvalidTimeoutError) Error() string {
	return fmt.Sprintf("invalid timeout %s: must be positive", e.Value)
}

// Unwrap returns ErrInvalidTimeout for errors.Is() compatibility.
func (e *InvalidTimeoutError) Unwrap() error { return ErrInvalidTimeout }

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined schemes.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// Error implements the error interface.
func (e *InvalidOutputFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q (valid: human, json)", e.Value)
}

// Unwrap returns ErrInvalidOutputFormat for errors.Is() compatibility.
func (e *InvalidOutputFormatError) Unwrap() error { return ErrInvalidOutputFormat }

// String returns the string representation of the OutputFormat.
func (f OutputFormat) String() string { return string(f) }

// IsValid returns whether the OutputFormat is one of the defined formats.
func (f OutputFormat) IsValid() (bool, []error) {
	switch f {
	case OutputFormatHuman, OutputFormatJSON:
		return true, nil
	default:
		return false, []error{&InvalidOutputFormatError{Value: f}}
	}
}
