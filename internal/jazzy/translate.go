// SPDX-License-Identifier: MPL-2.0

package jazzy

import "strings"

// Translate returns the diagnostics of report that belong to targetPath, in
// report order. Report file paths are made relative by stripping the
// projectRoot prefix and then compared with targetPath verbatim. Only
// "undocumented" warnings produce diagnostics. A nil report yields none.
func Translate(report *CoverageReport, targetPath, projectRoot string) []Diagnostic {
	if report == nil {
		return []Diagnostic{}
	}

	prefix := strings.TrimSuffix(projectRoot, "/") + "/"
	diagnostics := []Diagnostic{}
	for _, w := range report.Warnings {
		if w.Kind != UndocumentedKind {
			continue
		}
		if strings.TrimPrefix(w.File, prefix) != targetPath {
			continue
		}
		diagnostics = append(diagnostics, newMissingDocumentation(targetPath, int(w.Line), w.Symbol))
	}
	return diagnostics
}
