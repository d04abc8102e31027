package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"revolver/internal/batch"
	"revolver/internal/testsupport"
)

func TestEncodeProxies(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithFFmpegStub())
	testsupport.Touch(t, env.mediaDir, "clip1.mov", "clip2.MTS", "notes.txt", "clip1_proxy.mov.bak")

	out, _, err := runCLI(t, []string{"encode", env.mediaDir}, env.configPath)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	requireContains(t, out, "clip1_proxy.mov")
	requireContains(t, out, "clip2_proxy.mov")
	requireContains(t, out, batch.MessageFinished)

	for _, name := range []string{"clip1_proxy.mov", "clip2_proxy.mov"} {
		if _, err := os.Stat(filepath.Join(env.mediaDir, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
	if calls := testsupport.StubCalls(t, env.cfg); len(calls) != 2 {
		t.Fatalf("expected 2 transcoder calls, got %v", calls)
	}
}

func TestEncodeReportsFailures(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithFFmpegStub())
	testsupport.Touch(t, env.mediaDir, "a.mov", testsupport.FailMarker+".mov")

	out, _, err := runCLI(t, []string{"encode", env.mediaDir}, env.configPath)
	if err == nil {
		t.Fatal("expected failed jobs to produce an error")
	}
	requireContains(t, err.Error(), "1 of 2 jobs failed")
	requireContains(t, out, batch.MessageFailures)
	if _, statErr := os.Stat(filepath.Join(env.mediaDir, "a_proxy.mov")); statErr != nil {
		t.Fatalf("expected the healthy clip to be encoded: %v", statErr)
	}
}

func TestEncodeDryRunPrintsCommands(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithFFmpegStub())
	testsupport.Touch(t, env.mediaDir, "clip1.mov")

	out, _, err := runCLI(t, []string{
		"encode", env.mediaDir, "--dry-run", "--intermediates", "--codec", "mjpeg", "--proxy-size", "640x360",
	}, env.configPath)
	if err != nil {
		t.Fatalf("encode --dry-run: %v", err)
	}
	requireContains(t, out, "-i")
	requireContains(t, out, "-s 640x360")
	requireContains(t, out, "clip1_MJPEG.mov")
	requireContains(t, out, "2 jobs planned")
	if calls := testsupport.StubCalls(t, env.cfg); len(calls) != 0 {
		t.Fatalf("dry run invoked the transcoder: %v", calls)
	}
}

func TestEncodeJSON(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithFFmpegStub())
	testsupport.Touch(t, env.mediaDir, "clip1.mov", "clip2.mp4")

	out, _, err := runCLI(t, []string{"encode", env.mediaDir, "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("encode --json: %v", err)
	}
	var payload jsonBatch
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if payload.Completed != 2 || payload.Failed != 0 || len(payload.Jobs) != 2 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if payload.RunID == "" {
		t.Fatal("expected a run id")
	}
	for _, job := range payload.Jobs {
		if job.Pass != "proxy" || job.Status != "completed" {
			t.Fatalf("unexpected job: %+v", job)
		}
	}
}

func TestEncodeWithoutPasses(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithFFmpegStub())
	testsupport.Touch(t, env.mediaDir, "clip1.mov")

	_, _, err := runCLI(t, []string{"encode", env.mediaDir, "--proxies=false"}, env.configPath)
	if err == nil {
		t.Fatal("expected error when no pass is selected")
	}
	requireContains(t, err.Error(), "--proxies")
}

func TestEncodeUsesSessionFolderAndFPS(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithFFmpegStub())
	testsupport.Touch(t, env.mediaDir, "clip1.mov")
	sessionPath := filepath.Join(env.mediaDir, "edit.toml")
	content := "[scene]\nfps = 25\nfps_base = 1\nresolution_x = 1920\nresolution_y = 1080\n"
	if err := os.WriteFile(sessionPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write session: %v", err)
	}

	out, _, err := runCLI(t, []string{"encode", "--session", sessionPath, "--dry-run"}, env.configPath)
	if err != nil {
		t.Fatalf("encode --session: %v", err)
	}
	requireContains(t, out, "-r 25 ")
	requireContains(t, out, "1 jobs planned for "+env.mediaDir)
}

func TestEncodeRequiresFolder(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := runCLI(t, []string{"encode"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "folder is required") {
		t.Fatalf("expected missing folder error, got %v", err)
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{in: "1280x720", w: 1280, h: 720},
		{in: " 640X360 ", w: 640, h: 360},
		{in: "1280", wantErr: true},
		{in: "0x720", wantErr: true},
		{in: "axb", wantErr: true},
	}
	for _, tt := range tests {
		w, h, err := parseSize(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseSize(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil || w != tt.w || h != tt.h {
			t.Errorf("parseSize(%q) = %d, %d, %v", tt.in, w, h, err)
		}
	}
}
