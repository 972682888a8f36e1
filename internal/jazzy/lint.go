// SPDX-License-Identifier: MPL-2.0

package jazzy

import "fmt"

// Lint metadata reported to the host framework.
const (
	LinterName          = "JAZZY"
	ConfigurationName   = "jazzy"
	InfoName            = "Jazzy Documentation Linter"
	InfoURI             = "http://github.com/realm/jazzy"
	InfoDescription     = "Use jazzy to identify missing documentation for Objective-C/Swift code."
	InstallInstructions = "Install jazzy with `gem install jazzy`"

	// DefaultBinary is the jazzy executable looked up in PATH.
	DefaultBinary = "jazzy"
	// DefaultSwiftBinary is the swift executable probed for --swift-version.
	DefaultSwiftBinary = "swift"

	// ReportFileName is the machine-readable report jazzy writes into --output.
	ReportFileName = "undocumented.json"
	// UndocumentedKind is the only warning kind turned into diagnostics.
	UndocumentedKind = "undocumented"
)

// CodeMissingDocumentation flags a public API without a documentation comment.
const CodeMissingDocumentation Code = 1

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

type (
	// Code identifies a lint rule of this linter.
	Code int

	// Severity is the level a diagnostic is surfaced at.
	Severity string
)

var (
	severityMap = map[Code]Severity{
		CodeMissingDocumentation: SeverityWarning,
	}
	nameMap = map[Code]string{
		CodeMissingDocumentation: "Missing documentation",
	}
)

// MandatoryFlags returns the flags every jazzy invocation carries.
func MandatoryFlags() []string {
	return []string{"--skip-documentation"}
}

// String returns the code in host notation, e.g. "JAZZY1".
func (c Code) String() string {
	return fmt.Sprintf("%s%d", LinterName, int(c))
}

// MarshalText encodes the code as its String form.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Severity returns the configured severity of the code.
func (c Code) Severity() Severity {
	if s, ok := severityMap[c]; ok {
		return s
	}
	return SeverityError
}

// Name returns the human-readable rule name.
func (c Code) Name() string {
	if n, ok := nameMap[c]; ok {
		return n
	}
	return "Unknown"
}
