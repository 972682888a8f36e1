// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestGet_AllIdsRegistered(t *testing.T) {
	t.Parallel()

	for _, id := range []Id{JazzyNotFoundId, SwiftNotFoundId, ConfigLoadFailedId, ReportGenerationFailedId, JazzyConfigNotFoundId} {
		i := Get(id)
		if i == nil {
			t.Fatalf("Get(%d) = nil", id)
		}
		if i.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, i.Id())
		}
		if strings.TrimSpace(string(i.MarkdownMsg())) == "" {
			t.Errorf("issue %d has empty markdown", id)
		}
	}

	if Get(0) != nil {
		t.Error("Get(0) should return nil")
	}
}

func TestValues_SortedById(t *testing.T) {
	t.Parallel()

	values := Values()
	if len(values) != len(issues) {
		t.Fatalf("Values() returned %d issues, want %d", len(values), len(issues))
	}
	for i := 1; i < len(values); i++ {
		if values[i-1].Id() >= values[i].Id() {
			t.Errorf("Values() not sorted at %d: %d >= %d", i, values[i-1].Id(), values[i].Id())
		}
	}
}

func TestIssue_MarkdownIncludesLinks(t *testing.T) {
	t.Parallel()

	md := Get(JazzyNotFoundId).Markdown()
	if !strings.Contains(md, "See also") {
		t.Errorf("Markdown() missing links section: %q", md)
	}
	if !strings.Contains(md, "http://github.com/realm/jazzy") {
		t.Errorf("Markdown() missing jazzy link: %q", md)
	}

	md = Get(ConfigLoadFailedId).Markdown()
	if strings.Contains(md, "See also") {
		t.Errorf("Markdown() of issue without links should not have links section: %q", md)
	}
}

func TestIssue_LinksAreCopies(t *testing.T) {
	t.Parallel()

	i := Get(JazzyNotFoundId)
	links := i.ExtLinks()
	links[0] = "mutated"
	if i.ExtLinks()[0] == "mutated" {
		t.Error("ExtLinks() exposed internal slice")
	}
}

func TestIssue_Render(t *testing.T) {
	t.Parallel()

	out, err := Get(JazzyConfigNotFoundId).Render("notty")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, ".jazzy.yaml") {
		t.Errorf("Render() output missing config name: %q", out)
	}
}

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "lint file"},
			expected: "failed to lint file",
		},
		{
			name:     "operation with resource",
			err:      &ActionableError{Operation: "lint file", Resource: "Sources/Foo.swift"},
			expected: "failed to lint file: Sources/Foo.swift",
		},
		{
			name:     "full context",
			err:      &ActionableError{Operation: "load configuration", Resource: "config.cue", Cause: errors.New("syntax error")},
			expected: "failed to load configuration: config.cue: syntax error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	inner := errors.New("root cause")
	err := NewErrorContext().
		WithOperation("load configuration").
		WithResource("config.cue").
		WithSuggestion("Run 'doclint config init'").
		Wrap(inner).
		Build()

	plain := err.Format(false)
	if !strings.Contains(plain, "• Run 'doclint config init'") {
		t.Errorf("Format(false) missing suggestion: %q", plain)
	}
	if strings.Contains(plain, "Error chain") {
		t.Errorf("Format(false) should not include chain: %q", plain)
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:") || !strings.Contains(verbose, "1. root cause") {
		t.Errorf("Format(true) missing chain: %q", verbose)
	}

	if !errors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestErrorContext_BuildRequiresOperation(t *testing.T) {
	t.Parallel()

	if NewErrorContext().WithResource("x").Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if NewErrorContext().BuildError() != nil {
		t.Error("BuildError() without operation should return nil")
	}
}

func TestWrapWithContext(t *testing.T) {
	t.Parallel()

	if WrapWithContext(nil, "op", "res") != nil {
		t.Error("WrapWithContext(nil) should return nil")
	}
	ae := WrapWithContext(errors.New("boom"), "read report", "/tmp/x")
	if ae.Error() != "failed to read report: /tmp/x: boom" {
		t.Errorf("unexpected message %q", ae.Error())
	}
}
