package preflight

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"revolver/internal/config"
)

func writeExecutable(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckTranscoder_Configured(t *testing.T) {
	ffmpeg := filepath.Join(t.TempDir(), "ffmpeg")
	writeExecutable(t, ffmpeg)
	cfg := config.Default()
	cfg.Transcoder.FFmpeg = ffmpeg

	got, err := CheckTranscoder(&cfg)
	if err != nil {
		t.Fatalf("CheckTranscoder: %v", err)
	}
	if got != ffmpeg {
		t.Fatalf("expected %q, got %q", ffmpeg, got)
	}
}

func TestCheckTranscoder_Missing(t *testing.T) {
	cfg := config.Default()
	cfg.Transcoder.FFmpeg = filepath.Join(t.TempDir(), "ffmpeg")

	_, err := CheckTranscoder(&cfg)
	if !errors.Is(err, ErrMissingTranscoder) {
		t.Fatalf("expected ErrMissingTranscoder, got %v", err)
	}
}

func TestRunAll_NilConfig(t *testing.T) {
	if results := RunAll(context.Background(), nil, ""); results != nil {
		t.Fatal("expected nil results for nil config")
	}
}

func TestRunAll_ReportsBinariesAndFolders(t *testing.T) {
	binDir := t.TempDir()
	ffmpeg := filepath.Join(binDir, "ffmpeg")
	ffprobe := filepath.Join(binDir, "ffprobe")
	writeExecutable(t, ffmpeg)
	writeExecutable(t, ffprobe)

	cfg := config.Default()
	cfg.Transcoder.FFmpeg = ffmpeg
	cfg.Transcoder.FFprobe = ffprobe
	cfg.Paths.StateDir = t.TempDir()

	results := RunAll(context.Background(), &cfg, t.TempDir())
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d: %#v", len(results), results)
	}
	if failed := Failed(results); len(failed) != 0 {
		t.Fatalf("unexpected failures: %#v", failed)
	}
}

func TestRunAll_MarksOptionalFFprobe(t *testing.T) {
	binDir := t.TempDir()
	ffmpeg := filepath.Join(binDir, "ffmpeg")
	writeExecutable(t, ffmpeg)

	cfg := config.Default()
	cfg.Transcoder.FFmpeg = ffmpeg
	cfg.Transcoder.FFprobe = filepath.Join(binDir, "missing-ffprobe")
	cfg.Paths.StateDir = ""

	results := RunAll(context.Background(), &cfg, "")
	failed := Failed(results)
	if len(failed) != 1 || failed[0].Name != "FFprobe" {
		t.Fatalf("expected only FFprobe to fail, got %#v", failed)
	}
	if !failed[0].Optional {
		t.Fatalf("expected FFprobe to be optional")
	}
	if got := failed[0].Detail; got == "" || got[len(got)-len("(optional)"):] != "(optional)" {
		t.Fatalf("expected optional marker, got %q", got)
	}
}
