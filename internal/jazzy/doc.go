// SPDX-License-Identifier: MPL-2.0

// Package jazzy turns jazzy's documentation-coverage report into per-file lint
// diagnostics.
//
// A Linter is created once per analysis run and queried once per source file.
// For each file it resolves the governing .jazzy.yaml, runs
//
//	jazzy --skip-documentation --output=<tmp> --config=<cfg> --swift-version=<v>
//
// at most once per configuration (concurrent callers share the run), parses
// <tmp>/undocumented.json and keeps the "undocumented" warnings that point at the
// queried file. Failures never abort a run: a file whose scope has no usable
// report simply has no diagnostics. The failure itself is cached, and Report
// exposes it for callers that want to know why.
package jazzy
