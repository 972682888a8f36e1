// SPDX-License-Identifier: MPL-2.0

package jazzy

import (
	"errors"
	"fmt"
)

const (
	// FailureScratchDir means the temporary output directory could not be created.
	FailureScratchDir FailureKind = iota + 1
	// FailureExecution means jazzy could not be started or exited non-zero.
	FailureExecution
	// FailureTimeout means jazzy did not finish within the configured timeout.
	FailureTimeout
	// FailureReportMissing means undocumented.json was absent, unreadable or empty.
	FailureReportMissing
	// FailureReportMalformed means undocumented.json did not match the report schema.
	FailureReportMalformed
)

var (
	// ErrConfigNotFound is returned by Linter.Report when no .jazzy.yaml governs a file.
	// It means documentation linting does not apply, not that something broke.
	ErrConfigNotFound = errors.New("no jazzy configuration applies")

	ErrScratchDir      = errors.New("scratch directory allocation failed")
	ErrToolExecution   = errors.New("jazzy execution failed")
	ErrToolTimeout     = errors.New("jazzy timed out")
	ErrReportMissing   = errors.New("coverage report missing or empty")
	ErrReportMalformed = errors.New("coverage report malformed")
)

type (
	// FailureKind classifies why no report is available for a configuration.
	FailureKind int

	// ReportError describes a failed report generation. It is cached per
	// configuration like a successful report.
	ReportError struct {
		Kind       FailureKind
		ConfigPath string
		// ExitCode is set for FailureExecution when jazzy ran and exited non-zero.
		ExitCode int
		// Stderr holds the tail of jazzy's stderr, if any.
		Stderr string
		Cause  error
	}
)

// String returns a short name for the kind.
func (k FailureKind) String() string {
	switch k {
	case FailureScratchDir:
		return "scratch-dir"
	case FailureExecution:
		return "execution"
	case FailureTimeout:
		return "timeout"
	case FailureReportMissing:
		return "report-missing"
	case FailureReportMalformed:
		return "report-malformed"
	default:
		return "unknown"
	}
}

func (k FailureKind) sentinel() error {
	switch k {
	case FailureScratchDir:
		return ErrScratchDir
	case FailureExecution:
		return ErrToolExecution
	case FailureTimeout:
		return ErrToolTimeout
	case FailureReportMissing:
		return ErrReportMissing
	case FailureReportMalformed:
		return ErrReportMalformed
	default:
		return nil
	}
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	msg := fmt.Sprintf("jazzy report for %s: %v", e.ConfigPath, e.Kind.sentinel())
	if e.Kind == FailureExecution && e.ExitCode != 0 {
		msg += fmt.Sprintf(" (exit status %d)", e.ExitCode)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes both the kind's sentinel error and the cause to errors.Is/As.
func (e *ReportError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// FailureKindOf returns the kind of a report failure, or 0 if err is not one.
func FailureKindOf(err error) FailureKind {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Kind
	}
	return 0
}
