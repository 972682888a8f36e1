// SPDX-License-Identifier: MPL-2.0

package jazzy

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/invowk/doclint/internal/testutil"
)

const swiftVersionOutput = "swift-driver version: 1.90.11.1 Apple Swift version 5.10 (swiftlang-5.10.0.13 clang-1500.3.9.4)\nTarget: arm64-apple-macosx14.0\n"

// TestHelperProcess is not a real test. It stands in for jazzy and swift
// when commands are created through testutil.ExecRecorder.
func TestHelperProcess(t *testing.T) {
	testutil.RunHelperProcess()
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

// reportJSON encodes warnings the way jazzy lays out undocumented.json.
func reportJSON(t *testing.T, sourceDir string, warnings ...map[string]any) string {
	t.Helper()
	if warnings == nil {
		warnings = []map[string]any{}
	}
	data, err := json.Marshal(map[string]any{
		"warnings":         warnings,
		"source_directory": sourceDir,
	})
	if err != nil {
		t.Fatalf("marshal report: %v", err)
	}
	return string(data)
}

func undocumented(file string, line any, symbol string) map[string]any {
	return map[string]any{
		"file":        file,
		"line":        line,
		"symbol":      symbol,
		"symbol_kind": "source.lang.swift.decl.function.method.instance",
		"warning":     UndocumentedKind,
	}
}
