// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
)

const (
	envWantHelper  = "GO_WANT_HELPER_PROCESS"
	envExitCode    = "GO_HELPER_EXIT_CODE"
	envStdout      = "GO_HELPER_STDOUT"
	envStderr      = "GO_HELPER_STDERR"
	envReport      = "GO_HELPER_REPORT"
	envWriteReport = "GO_HELPER_WRITE_REPORT"
	envSleep       = "GO_HELPER_SLEEP"
	envChildSleep  = "GO_HELPER_CHILD_SLEEP"

	// ReportFileName is the file the helper writes into the --output= directory.
	ReportFileName = "undocumented.json"
)

type (
	// HelperResponse configures what the helper process does for one command name.
	HelperResponse struct {
		// ExitCode is the exit code to return (0 = success).
		ExitCode int
		// Stdout is written to stdout.
		Stdout string
		// Stderr is written to stderr.
		Stderr string
		// Report is written to <--output>/undocumented.json when WriteReport is set.
		Report string
		// WriteReport controls whether a report file is created at all.
		WriteReport bool
		// Sleep delays the helper before it does anything else.
		Sleep time.Duration
		// ChildSleep, when set, makes the helper start a second helper that
		// sleeps this long and shares its stdout and stderr. The helper does
		// not wait for it, the way a tool leaves worker processes behind.
		ChildSleep time.Duration
	}

	// Invocation is one recorded command.
	Invocation struct {
		Name string
		Args []string
	}

	// ExecRecorder records commands and replaces them with the test binary.
	// It is safe for concurrent use.
	ExecRecorder struct {
		mu          sync.Mutex
		invocations []Invocation
		responses   map[string]HelperResponse
	}
)

// NewExecRecorder creates a recorder whose unknown commands succeed silently.
func NewExecRecorder() *ExecRecorder {
	return &ExecRecorder{responses: make(map[string]HelperResponse)}
}

// On sets the response for commands whose base name equals name.
func (r *ExecRecorder) On(name string, resp HelperResponse) *ExecRecorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses[name] = resp
	return r
}

// CommandContext returns a function with the exec.CommandContext signature that
// records the call and runs TestHelperProcess in the current test binary instead.
// The test package must define TestHelperProcess calling RunHelperProcess.
func (r *ExecRecorder) CommandContext(t testing.TB) func(ctx context.Context, name string, args ...string) *exec.Cmd {
	t.Helper()
	return func(ctx context.Context, name string, args ...string) *exec.Cmd {
		r.mu.Lock()
		r.invocations = append(r.invocations, Invocation{Name: name, Args: slices.Clone(args)})
		resp := r.responses[filepath.Base(name)]
		r.mu.Unlock()

		cs := []string{"-test.run=^TestHelperProcess$", "--", name}
		cs = append(cs, args...)
		//nolint:gosec // TestHelperProcess is a test-only pattern
		cmd := exec.CommandContext(ctx, os.Args[0], cs...)
		cmd.Env = []string{
			envWantHelper + "=1",
			envExitCode + "=" + strconv.Itoa(resp.ExitCode),
			envStdout + "=" + resp.Stdout,
			envStderr + "=" + resp.Stderr,
			envReport + "=" + resp.Report,
			envSleep + "=" + resp.Sleep.String(),
			envChildSleep + "=" + resp.ChildSleep.String(),
		}
		if resp.WriteReport {
			cmd.Env = append(cmd.Env, envWriteReport+"=1")
		}
		return cmd
	}
}

// Invocations returns a copy of the recorded invocations.
func (r *ExecRecorder) Invocations() []Invocation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.invocations)
}

// Count returns how many times a command with the given base name ran.
func (r *ExecRecorder) Count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, inv := range r.invocations {
		if filepath.Base(inv.Name) == name {
			n++
		}
	}
	return n
}

// LastArgs returns the arguments of the most recent invocation of name, or nil.
func (r *ExecRecorder) LastArgs(name string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.invocations) - 1; i >= 0; i-- {
		if filepath.Base(r.invocations[i].Name) == name {
			return slices.Clone(r.invocations[i].Args)
		}
	}
	return nil
}

// RunHelperProcess is the body of a package's TestHelperProcess. It returns
// immediately in a normal test run and otherwise never returns.
//
//	func TestHelperProcess(t *testing.T) { testutil.RunHelperProcess() }
func RunHelperProcess() {
	if os.Getenv(envWantHelper) != "1" {
		return
	}

	if d, err := time.ParseDuration(os.Getenv(envChildSleep)); err == nil && d > 0 {
		startLingeringChild(d)
	}

	if d, err := time.ParseDuration(os.Getenv(envSleep)); err == nil && d > 0 {
		time.Sleep(d)
	}

	if os.Getenv(envWriteReport) == "1" {
		if out := outputDirArg(os.Args); out != "" {
			if err := os.WriteFile(filepath.Join(out, ReportFileName), []byte(os.Getenv(envReport)), 0o644); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
		}
	}

	if stdout := os.Getenv(envStdout); stdout != "" {
		fmt.Fprint(os.Stdout, stdout)
	}
	if stderr := os.Getenv(envStderr); stderr != "" {
		fmt.Fprint(os.Stderr, stderr)
	}

	exitCode, _ := strconv.Atoi(os.Getenv(envExitCode))
	os.Exit(exitCode)
}

// startLingeringChild starts a copy of the helper that holds the inherited
// stdout and stderr open for d.
func startLingeringChild(d time.Duration) {
	//nolint:gosec // TestHelperProcess is a test-only pattern
	child := exec.Command(os.Args[0], "-test.run=^TestHelperProcess$", "--", "child")
	child.Env = []string{envWantHelper + "=1", envSleep + "=" + d.String()}
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr
	if err := child.Start(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func outputDirArg(args []string) string {
	for _, arg := range args {
		if v, ok := strings.CutPrefix(arg, "--output="); ok {
			return v
		}
	}
	return ""
}
