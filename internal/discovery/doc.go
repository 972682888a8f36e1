// SPDX-License-Identifier: MPL-2.0

// Package discovery finds the jazzy configuration file that governs a source file.
//
// A configuration scope is the directory subtree below a .jazzy.yaml (or .jazzy.yml).
// Scopes nest: the nearest ancestor configuration wins, so a deeper file shadows
// broader ones for everything beneath it.
package discovery
