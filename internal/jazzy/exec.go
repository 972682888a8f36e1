// SPDX-License-Identifier: MPL-2.0

package jazzy

import (
	"context"
	"os/exec"
	"time"
)

// ExecCommandFunc is the function signature for creating exec.Cmd.
// This allows injection of mock implementations for testing. Commands must be
// created with exec.CommandContext semantics.
type ExecCommandFunc func(ctx context.Context, name string, arg ...string) *exec.Cmd

// waitDelay caps how long Wait keeps draining output after the command was
// canceled. jazzy's descendants (sourcekitten, xcodebuild) inherit its stderr
// pipe and would otherwise hold Wait open until they exit.
const waitDelay = 2 * time.Second

// boundWait makes cancellation of cmd's context stop the command and its
// descendants within waitDelay.
func boundWait(cmd *exec.Cmd) {
	cmd.WaitDelay = waitDelay
	killProcessGroupOnCancel(cmd)
}

// maxStderrTail bounds how much of jazzy's stderr is kept on a ReportError.
const maxStderrTail = 4 << 10

// tailBuffer keeps the last max bytes written to it.
type tailBuffer struct {
	max int
	buf []byte
}

func (b *tailBuffer) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	if over := len(b.buf) - b.max; over > 0 {
		b.buf = b.buf[over:]
	}
	return len(p), nil
}

func (b *tailBuffer) String() string {
	return string(b.buf)
}
