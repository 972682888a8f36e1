// SPDX-License-Identifier: MPL-2.0

package jazzy

import (
	"reflect"
	"testing"
)

func TestTranslate(t *testing.T) {
	t.Parallel()

	const root = "/p"
	report := &CoverageReport{Warnings: []Warning{
		{Kind: "undocumented", File: "/p/Sources/Foo.swift", Line: 12, Symbol: "Foo.bar"},
		{Kind: "undocumented", File: "/p/Sources/Bar.swift", Line: 4, Symbol: "Bar"},
		{Kind: "inaccessible", File: "/p/Sources/Foo.swift", Line: 20, Symbol: "Foo.hidden"},
		{Kind: "undocumented", File: "/p/Sources/Foo.swift", Line: 2, Symbol: "Foo"},
		{Kind: "undocumented", File: "/elsewhere/Sources/Foo.swift", Line: 8, Symbol: "Other"},
	}}

	tests := []struct {
		name   string
		report *CoverageReport
		target string
		root   string
		want   []Diagnostic
	}{
		{
			name:   "matching file keeps report order",
			report: report,
			target: "Sources/Foo.swift",
			root:   root,
			want: []Diagnostic{
				newMissingDocumentation("Sources/Foo.swift", 12, "Foo.bar"),
				newMissingDocumentation("Sources/Foo.swift", 2, "Foo"),
			},
		},
		{
			name:   "root with trailing slash",
			report: report,
			target: "Sources/Bar.swift",
			root:   "/p/",
			want:   []Diagnostic{newMissingDocumentation("Sources/Bar.swift", 4, "Bar")},
		},
		{
			name:   "file without warnings",
			report: report,
			target: "Sources/Baz.swift",
			root:   root,
			want:   []Diagnostic{},
		},
		{
			name:   "comparison is exact",
			report: report,
			target: "./Sources/Foo.swift",
			root:   root,
			want:   []Diagnostic{},
		},
		{
			name:   "nil report",
			target: "Sources/Foo.swift",
			root:   root,
			want:   []Diagnostic{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Translate(tt.report, tt.target, tt.root)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Translate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTranslate_DiagnosticShape(t *testing.T) {
	t.Parallel()

	report, err := ParseReport([]byte(`{"warnings": [
		{"file": "/p/Sources/Foo.swift", "line": "12", "symbol": "Foo.bar", "warning": "undocumented"}
	]}`))
	if err != nil {
		t.Fatalf("ParseReport() error: %v", err)
	}

	got := Translate(report, "Sources/Foo.swift", "/p")
	if len(got) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(got))
	}
	d := got[0]
	if d.Path != "Sources/Foo.swift" || d.Line != 12 || d.Column != 1 {
		t.Errorf("location = %s:%d:%d, want Sources/Foo.swift:12:1", d.Path, d.Line, d.Column)
	}
	if d.Code != CodeMissingDocumentation || d.Severity != SeverityWarning {
		t.Errorf("code/severity = %s/%s, want JAZZY1/warning", d.Code, d.Severity)
	}
	if d.Name != "Missing documentation" {
		t.Errorf("Name = %q", d.Name)
	}
	wantMsg := "Foo.bar is missing documentation.\nPlease use `/** */` blocks to document APIs."
	if d.Message != wantMsg {
		t.Errorf("Message = %q, want %q", d.Message, wantMsg)
	}
}

func TestTranslate_Idempotent(t *testing.T) {
	t.Parallel()

	report := &CoverageReport{Warnings: []Warning{
		{Kind: "undocumented", File: "/p/A.swift", Line: 1, Symbol: "A"},
		{Kind: "undocumented", File: "/p/A.swift", Line: 9, Symbol: "A.b"},
	}}

	first := Translate(report, "A.swift", "/p")
	second := Translate(report, "A.swift", "/p")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Translate() not idempotent: %+v vs %+v", first, second)
	}
}
