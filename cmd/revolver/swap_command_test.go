package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"revolver/internal/session"
	"revolver/internal/testsupport"
)

const swapSession = `
[scene]
fps = 25
fps_base = 1
resolution_x = 1920
resolution_y = 1080

[[strips]]
name = "clip1"
type = "movie"
filepath = "clip1.mov"

[[strips]]
name = "clip1 audio"
type = "sound"
sound_filepath = "clip1.mov"

[[strips]]
name = "clip2"
type = "movie"
filepath = "clip2.mov"
`

func writeSwapSession(t *testing.T, dir string) string {
	t.Helper()
	testsupport.Touch(t, dir, "clip1.mov", "clip1_proxy.mov", "clip2.mov")
	path := filepath.Join(dir, "edit.toml")
	if err := os.WriteFile(path, []byte(swapSession), 0o644); err != nil {
		t.Fatalf("write session: %v", err)
	}
	return path
}

func TestSwapToProxiesAndBack(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeSwapSession(t, env.mediaDir)

	out, _, err := runCLI(t, []string{"swap", "proxy", path, "--sync-resolution=false"}, env.configPath)
	if err != nil {
		t.Fatalf("swap proxy: %v", err)
	}
	requireContains(t, out, "2 retargeted to proxy, 1 missing")
	requireContains(t, out, "Saved "+path)

	sess, err := session.Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := sess.Strips[0].Filepath; got != "clip1_proxy.mov" {
		t.Fatalf("movie strip = %q", got)
	}
	if got := sess.Strips[1].SoundFilepath; got != "clip1_proxy.mov" {
		t.Fatalf("sound strip = %q", got)
	}
	if got := sess.Strips[2].Filepath; got != "clip2.mov" {
		t.Fatalf("missing proxy should leave strip alone, got %q", got)
	}

	out, _, err = runCLI(t, []string{"swap", "fullres", path, "--sync-resolution=false"}, env.configPath)
	if err != nil {
		t.Fatalf("swap fullres: %v", err)
	}
	requireContains(t, out, "2 retargeted to fullres")
	sess, err = session.Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := sess.Strips[0].Filepath; got != "clip1.mov" {
		t.Fatalf("movie strip after fullres = %q", got)
	}
}

func TestSwapDryRunLeavesFileUntouched(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeSwapSession(t, env.mediaDir)

	out, _, err := runCLI(t, []string{"swap", "proxy", path, "--dry-run", "--sync-resolution=false"}, env.configPath)
	if err != nil {
		t.Fatalf("swap --dry-run: %v", err)
	}
	requireContains(t, out, "Dry run")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read session: %v", err)
	}
	if string(data) != swapSession {
		t.Fatalf("dry run rewrote the session:\n%s", data)
	}
}

func TestSwapJSONToOutputPath(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeSwapSession(t, env.mediaDir)
	target := filepath.Join(env.mediaDir, "edit-proxy.yaml")

	out, _, err := runCLI(t, []string{
		"swap", "proxy", path, "--json", "--sync-resolution=false", "-o", target,
	}, env.configPath)
	if err != nil {
		t.Fatalf("swap --json: %v", err)
	}
	var payload jsonSwap
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if payload.Mode != "proxy" || !payload.Saved || payload.Session != target {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if len(payload.Changes) != 3 || payload.Changes[2].Outcome != "missing" {
		t.Fatalf("unexpected changes: %+v", payload.Changes)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "clip1_proxy.mov") {
		t.Fatalf("expected yaml output to reference the proxy:\n%s", data)
	}
	original, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read session: %v", err)
	}
	if string(original) != swapSession {
		t.Fatal("expected the source session to stay untouched")
	}
}

func TestSwapOutputInSiblingFolderKeepsReferencesValid(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeSwapSession(t, env.mediaDir)
	elsewhere := filepath.Join(env.baseDir, "elsewhere")
	if err := os.MkdirAll(elsewhere, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	target := filepath.Join(elsewhere, "edit-proxy.toml")

	if _, _, err := runCLI(t, []string{"swap", "proxy", path, "--sync-resolution=false", "-o", target}, env.configPath); err != nil {
		t.Fatalf("swap -o: %v", err)
	}

	sess, err := session.Load(target)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	want := map[string]string{
		"clip1":       "clip1_proxy.mov",
		"clip1 audio": "clip1_proxy.mov",
		"clip2":       "clip2.mov",
	}
	for _, strip := range sess.Strips {
		ref, ok := strip.Reference()
		if !ok {
			t.Fatalf("strip %q lost its reference", strip.Name)
		}
		resolved := filepath.Join(sess.Root, ref)
		if resolved != filepath.Join(env.mediaDir, want[strip.Name]) {
			t.Fatalf("strip %q resolves to %q", strip.Name, resolved)
		}
		if _, err := os.Stat(resolved); err != nil {
			t.Fatalf("strip %q points at a missing file: %v", strip.Name, err)
		}
	}
}

func TestSwapRejectsUnknownMode(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeSwapSession(t, env.mediaDir)

	if _, _, err := runCLI(t, []string{"swap", "sideways", path}, env.configPath); err == nil {
		t.Fatal("expected unknown mode to fail")
	}
}
