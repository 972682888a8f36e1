// SPDX-License-Identifier: MPL-2.0

// Package config handles doclint configuration using Viper with CUE as the file format.
//
// Configuration is loaded from $XDG_CONFIG_HOME/doclint/config.cue (~/.config on Linux,
// ~/Library/Application Support on macOS, %APPDATA% on Windows), falling back to a
// config.cue in the current directory and then to built-in defaults. Files are
// validated against the embedded CUE schema (config_schema.cue) before being merged
// into Viper, so DOCLINT_* environment variables still override file values.
package config
