package transcode

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"revolver/internal/services/ffmpeg"
)

// fakeExecutor emulates the transcoder by writing to the last argument.
type fakeExecutor struct {
	calls    int
	write    bool
	exitCode int
	cancel   context.CancelFunc
}

func (f *fakeExecutor) Binary() string { return "ffmpeg" }

func (f *fakeExecutor) Run(_ context.Context, args []string) ffmpeg.ExecResult {
	f.calls++
	if f.cancel != nil {
		f.cancel()
	}
	if f.write {
		_ = os.WriteFile(args[len(args)-1], []byte("encoded output"), 0o644)
	}
	return ffmpeg.ExecResult{ExitCode: f.exitCode}
}

func newRequest(t *testing.T) Request {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "clip1.mov")
	if err := os.WriteFile(input, []byte("source"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return BuildRequest(input, proxyParams(CodecMJPEG))
}

func TestRunnerCompleted(t *testing.T) {
	req := newRequest(t)
	exec := &fakeExecutor{write: true}

	result := NewRunner(exec).Run(context.Background(), req)
	if result.Status != StatusCompleted {
		t.Fatalf("expected completed, got %s (%s)", result.Status, result.Reason)
	}
	if result.Size != int64(len("encoded output")) {
		t.Fatalf("unexpected size %d", result.Size)
	}
}

func TestRunnerIgnoresExitCodeWhenOutputWritten(t *testing.T) {
	req := newRequest(t)
	result := NewRunner(&fakeExecutor{write: true, exitCode: 1}).Run(context.Background(), req)
	if result.Status != StatusCompleted || result.ExitCode != 1 {
		t.Fatalf("expected completed with exit code 1, got %s/%d", result.Status, result.ExitCode)
	}
}

func TestRunnerFailsWithoutOutput(t *testing.T) {
	req := newRequest(t)
	result := NewRunner(&fakeExecutor{}).Run(context.Background(), req)
	if result.Status != StatusFailed || result.Reason != ReasonNoOutput {
		t.Fatalf("expected failure without output, got %s (%s)", result.Status, result.Reason)
	}
}

// With overwrite disabled the transcoder refuses to touch an existing output.
// The stale file must not count as a fresh encode.
func TestRunnerFlagsPreExistingUnchangedOutput(t *testing.T) {
	req := newRequest(t)
	if err := os.WriteFile(req.Output, []byte("old proxy"), 0o644); err != nil {
		t.Fatalf("write existing output: %v", err)
	}
	exec := &fakeExecutor{exitCode: 1}

	result := NewRunner(exec).Run(context.Background(), req)
	if exec.calls != 1 {
		t.Fatalf("expected transcoder to run, got %d calls", exec.calls)
	}
	if result.Status != StatusFailed || result.Reason != ReasonNotRewritten {
		t.Fatalf("expected not-rewritten failure, got %s (%s)", result.Status, result.Reason)
	}
}

func TestRunnerAcceptsRewrittenOutput(t *testing.T) {
	req := newRequest(t)
	if err := os.WriteFile(req.Output, []byte("old"), 0o644); err != nil {
		t.Fatalf("write existing output: %v", err)
	}
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(req.Output, past, past); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	result := NewRunner(&fakeExecutor{write: true}).Run(context.Background(), req)
	if result.Status != StatusCompleted {
		t.Fatalf("expected completed, got %s (%s)", result.Status, result.Reason)
	}
}

func TestRunnerSkipExisting(t *testing.T) {
	req := newRequest(t)
	if err := os.WriteFile(req.Output, []byte("old"), 0o644); err != nil {
		t.Fatalf("write existing output: %v", err)
	}
	exec := &fakeExecutor{write: true}

	result := NewRunner(exec, WithSkipExisting(true)).Run(context.Background(), req)
	if exec.calls != 0 {
		t.Fatalf("expected no transcoder call, got %d", exec.calls)
	}
	if result.Status != StatusSkipped || result.Reason != ReasonAlreadyExists {
		t.Fatalf("expected skipped, got %s (%s)", result.Status, result.Reason)
	}
}

func TestRunnerCanceledBeforeStart(t *testing.T) {
	req := newRequest(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exec := &fakeExecutor{write: true}

	result := NewRunner(exec).Run(ctx, req)
	if exec.calls != 0 || result.Status != StatusFailed || result.Reason != ReasonCanceled {
		t.Fatalf("expected canceled without running, got %d calls %s (%s)", exec.calls, result.Status, result.Reason)
	}
}

func TestRunnerCanceledDuringRun(t *testing.T) {
	req := newRequest(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	result := NewRunner(&fakeExecutor{write: true, cancel: cancel}).Run(ctx, req)
	if result.Status != StatusFailed || result.Reason != ReasonCanceled {
		t.Fatalf("expected canceled, got %s (%s)", result.Status, result.Reason)
	}
}

func TestRunnerWithRealClient(t *testing.T) {
	req := newRequest(t)
	bin := filepath.Join(t.TempDir(), "ffmpeg")
	script := "#!/bin/sh\nfor last; do :; done\necho encoded > \"$last\"\n"
	if err := os.WriteFile(bin, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}

	result := NewRunner(ffmpeg.New(bin)).Run(context.Background(), req)
	if result.Status != StatusCompleted {
		t.Fatalf("expected completed, got %s (%s, stderr %q)", result.Status, result.Reason, result.Stderr)
	}
}
