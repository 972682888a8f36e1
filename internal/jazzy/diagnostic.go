// SPDX-License-Identifier: MPL-2.0

package jazzy

import "fmt"

// Diagnostic is a single line-anchored finding for one file.
type Diagnostic struct {
	// Path is the root-relative path the diagnostic belongs to.
	Path string `json:"path"`
	// Line is 1-based; 0 means the finding applies to the whole file.
	Line int `json:"line"`
	// Column is always 1.
	Column   int      `json:"column"`
	Code     Code     `json:"code"`
	Severity Severity `json:"severity"`
	Name     string   `json:"name"`
	Message  string   `json:"message"`
	// Symbol is the undocumented API name as reported by jazzy.
	Symbol string `json:"symbol"`
}

func newMissingDocumentation(path string, line int, symbol string) Diagnostic {
	return Diagnostic{
		Path:     path,
		Line:     line,
		Column:   1,
		Code:     CodeMissingDocumentation,
		Severity: CodeMissingDocumentation.Severity(),
		Name:     CodeMissingDocumentation.Name(),
		Message:  missingDocumentationMessage(symbol),
		Symbol:   symbol,
	}
}

func missingDocumentationMessage(symbol string) string {
	return fmt.Sprintf("%s is missing documentation.\nPlease use `/** */` blocks to document APIs.", symbol)
}
