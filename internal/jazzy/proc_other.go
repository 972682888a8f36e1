// SPDX-License-Identifier: MPL-2.0

//go:build !unix

package jazzy

import "os/exec"

// killProcessGroupOnCancel leaves the default cancellation in place; only the
// direct child is killed and WaitDelay bounds the rest.
func killProcessGroupOnCancel(*exec.Cmd) {}
