// SPDX-License-Identifier: MPL-2.0

package jazzy

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type (
	// CoverageReport is the parsed content of undocumented.json.
	CoverageReport struct {
		Warnings []Warning `json:"warnings"`
	}

	// Warning is one entry of the report's warnings array.
	Warning struct {
		// Kind is the "warning" field; only "undocumented" is actionable.
		Kind   string `json:"warning"`
		File   string `json:"file"`
		Line   Line   `json:"line"`
		Symbol string `json:"symbol"`
	}

	// Line is a report line number. jazzy writes integers, but strings and null
	// appear in the wild; anything that is not a number decodes to 0.
	Line int

	rawReport struct {
		Warnings *[]rawWarning `json:"warnings"`
	}

	rawWarning struct {
		Kind   *string `json:"warning"`
		File   *string `json:"file"`
		Line   Line    `json:"line"`
		Symbol string  `json:"symbol"`
	}
)

// ParseReport decodes undocumented.json. It fails closed: a document without a
// warnings array, or a warning without its "warning" or "file" field, is an error
// wrapping ErrReportMalformed. Empty input wraps ErrReportMissing.
func ParseReport(data []byte) (*CoverageReport, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrReportMissing
	}

	var raw rawReport
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReportMalformed, err)
	}
	if raw.Warnings == nil {
		return nil, fmt.Errorf("%w: missing \"warnings\" array", ErrReportMalformed)
	}

	report := &CoverageReport{
		Warnings: make([]Warning, 0, len(*raw.Warnings)),
	}
	for i, w := range *raw.Warnings {
		if w.Kind == nil {
			return nil, fmt.Errorf("%w: warnings[%d]: missing \"warning\" field", ErrReportMalformed, i)
		}
		if w.File == nil {
			return nil, fmt.Errorf("%w: warnings[%d]: missing \"file\" field", ErrReportMalformed, i)
		}
		report.Warnings = append(report.Warnings, Warning{
			Kind:   *w.Kind,
			File:   *w.File,
			Line:   w.Line,
			Symbol: w.Symbol,
		})
	}

	return report, nil
}

// UnmarshalJSON accepts a number, a numeric string or null. Strings are read
// up to the first non-digit ("12abc" is 12, "abc" is 0); fractions are truncated.
func (l *Line) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, string(data) == "null":
		*l = 0
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = Line(leadingInt(s))
		return nil
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("line %s: %w", data, err)
		}
		*l = Line(int(f))
		return nil
	default:
		return errors.New("line must be a number, a string or null, got " + string(data))
	}
}

// leadingInt parses an optional sign followed by digits at the start of s.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
