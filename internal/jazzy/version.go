// SPDX-License-Identifier: MPL-2.0

package jazzy

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"
)

// probeTimeout bounds a single `--version` query.
const probeTimeout = 30 * time.Second

var (
	swiftVersionPattern = regexp.MustCompile(`version (?P<version>\d+\.\d+(?:\.\d+)?)`)
	toolVersionPattern  = regexp.MustCompile(`(?P<version>\d+\.\d+\.\d+)`)

	// ErrVersionUnavailable is returned by ToolVersion when no version could be parsed.
	ErrVersionUnavailable = errors.New("version unavailable")
)

// VersionProbe determines the swift compiler version once and remembers the
// outcome, success or not, for the lifetime of the probe.
type VersionProbe struct {
	binary      string
	execCommand ExecCommandFunc

	mu      sync.Mutex
	done    bool
	version string
	ok      bool
}

// NewVersionProbe creates a probe running `<binary> --version`.
func NewVersionProbe(binary string, execCommand ExecCommandFunc) *VersionProbe {
	return &VersionProbe{binary: binary, execCommand: execCommand}
}

// Version returns the swift version, or ok=false when it cannot be determined.
// Callers proceed without a version hint in that case. An outcome is only
// memoized when ctx was still live, so a canceled lookup can be retried.
func (p *VersionProbe) Version(ctx context.Context) (version string, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done {
		return p.version, p.ok
	}

	out, _ := runVersionCommand(ctx, p.execCommand, p.binary)
	if ctx.Err() != nil {
		return "", false
	}

	p.version, p.ok = matchVersion(swiftVersionPattern, out)
	p.done = true
	return p.version, p.ok
}

// ToolVersion runs `<binary> --version` and extracts an x.y.z version, for
// capability reporting. It is not memoized.
func ToolVersion(ctx context.Context, execCommand ExecCommandFunc, binary string) (string, error) {
	out, err := runVersionCommand(ctx, execCommand, binary)
	if err != nil {
		return "", fmt.Errorf("%s --version: %w", binary, err)
	}
	v, ok := matchVersion(toolVersionPattern, out)
	if !ok {
		return "", fmt.Errorf("%s --version: %w: %q", binary, ErrVersionUnavailable, strings.TrimSpace(out))
	}
	return v, nil
}

func runVersionCommand(ctx context.Context, execCommand ExecCommandFunc, binary string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	cmd := execCommand(ctx, binary, "--version")
	boundWait(cmd)
	out, err := cmd.Output()
	return string(out), err
}

func matchVersion(re *regexp.Regexp, out string) (string, bool) {
	m := re.FindStringSubmatch(out)
	if m == nil {
		return "", false
	}
	return m[re.SubexpIndex("version")], true
}
