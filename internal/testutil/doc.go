// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Besides filesystem helpers (MustMkdirAll, MustWriteFile, MustChdir), it provides
// ExecRecorder, which replaces external binaries (jazzy, swift) with the test
// binary itself through the TestHelperProcess pattern.
package testutil
