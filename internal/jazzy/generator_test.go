// SPDX-License-Identifier: MPL-2.0

package jazzy

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/viant/afs"

	"github.com/invowk/doclint/internal/testutil"
)

type generatorFixture struct {
	gen        *Generator
	rec        *testutil.ExecRecorder
	root       string
	configPath string
	scratch    string
}

func newGeneratorFixture(t *testing.T, jazzy testutil.HelperResponse, timeout time.Duration) *generatorFixture {
	t.Helper()

	root := t.TempDir()
	configPath := filepath.Join(root, "Kit", ".jazzy.yaml")
	testutil.MustWriteFile(t, configPath, "module: Kit\n")
	scratch := t.TempDir()

	rec := testutil.NewExecRecorder().
		On("swift", testutil.HelperResponse{Stdout: swiftVersionOutput}).
		On("jazzy", jazzy)
	execCommand := rec.CommandContext(t)

	return &generatorFixture{
		gen: &Generator{
			binary:      "jazzy",
			probe:       NewVersionProbe("swift", execCommand),
			timeout:     timeout,
			tempDir:     scratch,
			execCommand: execCommand,
			fs:          afs.New(),
			logger:      discardLogger(),
		},
		rec:        rec,
		root:       root,
		configPath: configPath,
		scratch:    scratch,
	}
}

func (f *generatorFixture) assertScratchRemoved(t *testing.T) {
	t.Helper()

	entries, err := os.ReadDir(f.scratch)
	if err != nil {
		t.Fatalf("ReadDir(%s): %v", f.scratch, err)
	}
	if len(entries) != 0 {
		t.Errorf("scratch directory left behind: %v", entries)
	}
}

func TestGenerator_Generate(t *testing.T) {
	t.Parallel()

	root := "/p"
	f := newGeneratorFixture(t, testutil.HelperResponse{
		WriteReport: true,
		Report:      reportJSON(t, root, undocumented(root+"/Kit/Foo.swift", 12, "Foo.bar")),
	}, time.Minute)

	report, err := f.gen.Generate(context.Background(), f.configPath)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(report.Warnings) != 1 || report.Warnings[0].Symbol != "Foo.bar" {
		t.Errorf("Generate() warnings = %+v", report.Warnings)
	}

	args := f.rec.LastArgs("jazzy")
	if len(args) != 4 {
		t.Fatalf("jazzy args = %v, want 4 arguments", args)
	}
	if args[0] != "--skip-documentation" {
		t.Errorf("args[0] = %q, want --skip-documentation", args[0])
	}
	out, ok := strings.CutPrefix(args[1], "--output=")
	if !ok || filepath.Dir(out) != f.scratch || !strings.HasPrefix(filepath.Base(out), "Kit-jazzy-") {
		t.Errorf("args[1] = %q, want a Kit-jazzy-* directory under %s", args[1], f.scratch)
	}
	if args[2] != "--config="+f.configPath {
		t.Errorf("args[2] = %q, want --config=%s", args[2], f.configPath)
	}
	if args[3] != "--swift-version=5.10" {
		t.Errorf("args[3] = %q, want --swift-version=5.10", args[3])
	}

	f.assertScratchRemoved(t)
}

func TestGenerator_Generate_WithoutSwift(t *testing.T) {
	t.Parallel()

	f := newGeneratorFixture(t, testutil.HelperResponse{WriteReport: true, Report: `{"warnings": []}`}, time.Minute)
	f.rec.On("swift", testutil.HelperResponse{ExitCode: 127})

	if _, err := f.gen.Generate(context.Background(), f.configPath); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	args := f.rec.LastArgs("jazzy")
	if got := args[len(args)-1]; got != "--swift-version=" {
		t.Errorf("last arg = %q, want empty --swift-version=", got)
	}
}

func TestGenerator_Generate_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		resp     testutil.HelperResponse
		timeout  time.Duration
		wantKind FailureKind
		wantErr  error
	}{
		{
			name:     "nonzero exit",
			resp:     testutil.HelperResponse{ExitCode: 1, Stderr: "error: could not parse .jazzy.yaml"},
			wantKind: FailureExecution,
			wantErr:  ErrToolExecution,
		},
		{
			name:     "nonzero exit with report",
			resp:     testutil.HelperResponse{ExitCode: 1, WriteReport: true, Report: `{"warnings": []}`},
			wantKind: FailureExecution,
			wantErr:  ErrToolExecution,
		},
		{
			name:     "report not written",
			resp:     testutil.HelperResponse{},
			wantKind: FailureReportMissing,
			wantErr:  ErrReportMissing,
		},
		{
			name:     "empty report",
			resp:     testutil.HelperResponse{WriteReport: true, Report: ""},
			wantKind: FailureReportMissing,
			wantErr:  ErrReportMissing,
		},
		{
			name:     "truncated report",
			resp:     testutil.HelperResponse{WriteReport: true, Report: `{"warnings": [{"file": "/p/A.swift"`},
			wantKind: FailureReportMalformed,
			wantErr:  ErrReportMalformed,
		},
		{
			name:     "report without warnings",
			resp:     testutil.HelperResponse{WriteReport: true, Report: `{"source_directory": "/p"}`},
			wantKind: FailureReportMalformed,
			wantErr:  ErrReportMalformed,
		},
		{
			name:     "timeout",
			resp:     testutil.HelperResponse{Sleep: 10 * time.Second, WriteReport: true, Report: `{"warnings": []}`},
			timeout:  200 * time.Millisecond,
			wantKind: FailureTimeout,
			wantErr:  ErrToolTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			timeout := tt.timeout
			if timeout == 0 {
				timeout = time.Minute
			}
			f := newGeneratorFixture(t, tt.resp, timeout)

			report, err := f.gen.Generate(context.Background(), f.configPath)
			if report != nil {
				t.Errorf("Generate() report = %+v, want nil", report)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Generate() error = %v, want %v", err, tt.wantErr)
			}

			var re *ReportError
			if !errors.As(err, &re) {
				t.Fatalf("Generate() error %T is not a *ReportError", err)
			}
			if re.Kind != tt.wantKind {
				t.Errorf("Kind = %s, want %s", re.Kind, tt.wantKind)
			}
			if re.ConfigPath != f.configPath {
				t.Errorf("ConfigPath = %q, want %q", re.ConfigPath, f.configPath)
			}

			f.assertScratchRemoved(t)
		})
	}
}

func TestGenerator_Generate_ExitDetails(t *testing.T) {
	t.Parallel()

	f := newGeneratorFixture(t, testutil.HelperResponse{ExitCode: 3, Stderr: "boom"}, time.Minute)

	_, err := f.gen.Generate(context.Background(), f.configPath)
	var re *ReportError
	if !errors.As(err, &re) {
		t.Fatalf("Generate() error = %v, want *ReportError", err)
	}
	if re.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", re.ExitCode)
	}
	if re.Stderr != "boom" {
		t.Errorf("Stderr = %q, want %q", re.Stderr, "boom")
	}
	if !strings.Contains(err.Error(), "exit status 3") {
		t.Errorf("Error() = %q, want exit status", err.Error())
	}
}

func TestGenerator_Generate_CallerCanceled(t *testing.T) {
	t.Parallel()

	f := newGeneratorFixture(t, testutil.HelperResponse{Sleep: 10 * time.Second}, time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_, err := f.gen.Generate(ctx, f.configPath)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Generate() error = %v, want context.DeadlineExceeded", err)
	}
	if FailureKindOf(err) != 0 {
		t.Errorf("caller cancellation classified as %s", FailureKindOf(err))
	}
	f.assertScratchRemoved(t)
}

func TestGenerator_Generate_TimeoutWithLingeringChild(t *testing.T) {
	t.Parallel()

	f := newGeneratorFixture(t, testutil.HelperResponse{
		Sleep:      30 * time.Second,
		ChildSleep: 30 * time.Second,
	}, 200*time.Millisecond)

	start := time.Now()
	_, err := f.gen.Generate(context.Background(), f.configPath)
	elapsed := time.Since(start)

	if FailureKindOf(err) != FailureTimeout {
		t.Fatalf("Generate() error = %v, want timeout failure", err)
	}
	if limit := 200*time.Millisecond + waitDelay + 3*time.Second; elapsed > limit {
		t.Errorf("Generate() returned after %s, want under %s", elapsed, limit)
	}
	f.assertScratchRemoved(t)
}

func TestGenerator_Generate_ScratchDirFailure(t *testing.T) {
	t.Parallel()

	f := newGeneratorFixture(t, testutil.HelperResponse{}, time.Minute)
	f.gen.tempDir = filepath.Join(f.root, "does", "not", "exist")

	_, err := f.gen.Generate(context.Background(), f.configPath)
	if FailureKindOf(err) != FailureScratchDir {
		t.Fatalf("Generate() error = %v, want scratch-dir failure", err)
	}
	if n := f.rec.Count("jazzy"); n != 0 {
		t.Errorf("jazzy ran %d times, want 0", n)
	}
}

func TestQuoteCommand(t *testing.T) {
	t.Parallel()

	got := quoteCommand("jazzy", []string{"--skip-documentation", "--config=/My Project/.jazzy.yaml", "--swift-version="})
	if !strings.HasPrefix(got, "jazzy --skip-documentation ") {
		t.Errorf("quoteCommand() = %q, want plain words unquoted", got)
	}
	if !strings.Contains(got, "'--config=/My Project/.jazzy.yaml'") {
		t.Errorf("quoteCommand() = %q, want the path with a space single-quoted", got)
	}
}
