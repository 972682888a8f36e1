// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved and a list
// of suggestions. The issue catalog holds longer Markdown guidance for failures a
// user has to fix outside doclint (missing jazzy or swift binaries, broken config
// files), rendered for the terminal with glamour.
package issue
