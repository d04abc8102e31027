package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"revolver/internal/services"
	"revolver/internal/testsupport"
)

func TestResolveCommand(t *testing.T) {
	dir := t.TempDir()
	testsupport.Touch(t, dir, "clip.mov", "clip_proxy.mov")

	out, _, err := runCLI(t, []string{"resolve", "proxy", filepath.Join(dir, "clip.mov")}, "")
	if err != nil {
		t.Fatalf("resolve proxy: %v", err)
	}
	if got := strings.TrimSpace(out); got != filepath.Join(dir, "clip_proxy.mov") {
		t.Fatalf("resolve proxy = %q", got)
	}

	out, _, err = runCLI(t, []string{"resolve", "fullres", filepath.Join(dir, "clip_proxy.mov")}, "")
	if err != nil {
		t.Fatalf("resolve fullres: %v", err)
	}
	if got := strings.TrimSpace(out); got != filepath.Join(dir, "clip.mov") {
		t.Fatalf("resolve fullres = %q", got)
	}
}

func TestResolveCommandNotFound(t *testing.T) {
	dir := t.TempDir()
	testsupport.Touch(t, dir, "lonely.mov")

	_, _, err := runCLI(t, []string{"resolve", "proxy", filepath.Join(dir, "lonely.mov")}, "")
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
