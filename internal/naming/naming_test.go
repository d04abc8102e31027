package naming_test

import (
	"os"
	"path/filepath"
	"testing"

	"revolver/internal/naming"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func TestClassify(t *testing.T) {
	cases := map[string]naming.Role{
		"/media/clip.mov":              naming.RoleOriginal,
		"/media/clip_proxy.mov":        naming.RoleProxy,
		"/media/clip_PRORES.mov":       naming.RoleProRes,
		"/media/clip_MJPEG.mov":        naming.RoleMJPEG,
		"/media/clip_h264.mkv":         naming.RoleH264,
		"/media/clip_prores.mov":       naming.RoleOriginal,
		"/media/clip_PRORES_proxy.mov": naming.RoleProxy,
		"/media_proxy.d/clip.mov":      naming.RoleOriginal,
	}
	for path, want := range cases {
		if got := naming.Classify(path).Role; got != want {
			t.Errorf("Classify(%q) = %s, want %s", path, got, want)
		}
	}
}

func TestRoleIsIntermediate(t *testing.T) {
	want := map[naming.Role]bool{
		naming.RoleOriginal: false,
		naming.RoleProxy:    false,
		naming.RoleProRes:   true,
		naming.RoleMJPEG:    true,
		naming.RoleH264:     true,
	}
	for role, intermediate := range want {
		if got := role.IsIntermediate(); got != intermediate {
			t.Errorf("%s.IsIntermediate() = %v, want %v", role, got, intermediate)
		}
	}
}

func TestIsOriginalName(t *testing.T) {
	cases := map[string]bool{
		"clip.mov":         true,
		"clip_proxy.mov":   false,
		"clip_PRORES.mov":  false,
		"clip_MJPEG.mov":   false,
		"clip_h264.mkv":    false,
		"clip_h264_v2.mp4": false,
		"clip_prores.mov":  true,
	}
	for name, want := range cases {
		if got := naming.IsOriginalName(name); got != want {
			t.Errorf("IsOriginalName(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestIsMovieExtensionIgnoresCase(t *testing.T) {
	for _, ext := range []string{".mov", ".MOV", ".Mp4", ".mkv"} {
		if !naming.IsMovieExtension(ext) {
			t.Errorf("expected %q to be a movie extension", ext)
		}
	}
	for _, ext := range []string{".wav", ".txt", ""} {
		if naming.IsMovieExtension(ext) {
			t.Errorf("expected %q not to be a movie extension", ext)
		}
	}
}

func TestResolveProxyStripsDocumentedSuffixLength(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "clip_proxy.mov")

	cases := []struct {
		input string
		tag   string
	}{
		{"clip_PRORES.mov", "_PRORES"},
		{"clip_MJPEG.mov", "_MJPEG"},
		{"clip_h264.mkv", "_h264"},
	}
	for _, tc := range cases {
		ref := naming.Classify(filepath.Join(dir, tc.input))
		stem, _ := naming.Stem(ref.Path)
		base := naming.BaseStem(ref)
		if len(stem)-len(base) != len(tc.tag) {
			t.Fatalf("%s: stripped %d chars, want %d", tc.input, len(stem)-len(base), len(tc.tag))
		}
		got, ok := naming.Resolver{}.ResolveProxy(ref.Path)
		if !ok {
			t.Fatalf("%s: expected proxy to resolve", tc.input)
		}
		if got != filepath.Join(dir, "clip_proxy.mov") {
			t.Fatalf("%s: resolved %q", tc.input, got)
		}
	}
}

func TestResolveProxyPrefersOriginalExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "clip.mp4", "clip_proxy.mov", "clip_proxy.mp4")

	got, ok := naming.Resolver{}.ResolveProxy(filepath.Join(dir, "clip.mp4"))
	if !ok || got != filepath.Join(dir, "clip_proxy.mp4") {
		t.Fatalf("expected same-extension proxy, got %q ok=%v", got, ok)
	}
}

func TestResolveProxyFallsBackToOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "clip.MTS", "clip_proxy.mov")

	got, ok := naming.Resolver{}.ResolveProxy(filepath.Join(dir, "clip.MTS"))
	if !ok || got != filepath.Join(dir, "clip_proxy.mov") {
		t.Fatalf("expected fallback proxy, got %q ok=%v", got, ok)
	}
}

func TestResolveProxyMisses(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "clip.mov", "notes.txt", "notes_proxy.mov")

	if got, ok := (naming.Resolver{}).ResolveProxy(filepath.Join(dir, "clip.mov")); ok {
		t.Fatalf("expected miss, got %q", got)
	}
	if got, ok := (naming.Resolver{}).ResolveProxy(filepath.Join(dir, "notes.txt")); ok {
		t.Fatalf("non-movie originals must not resolve, got %q", got)
	}
	if _, ok := (naming.Resolver{}).ResolveProxy(filepath.Join(dir, "missing-dir", "clip.mov")); ok {
		t.Fatal("expected miss for unreadable directory")
	}
}

func TestResolveProxyOfProxyIsNoop(t *testing.T) {
	path := "/nowhere/clip_proxy.mov"
	got, ok := naming.Resolver{}.ResolveProxy(path)
	if !ok || got != path {
		t.Fatalf("expected proxy to resolve to itself, got %q ok=%v", got, ok)
	}
}

func TestResolveFullResTierOrder(t *testing.T) {
	dir := t.TempDir()
	proxy := filepath.Join(dir, "clip_proxy.mov")
	touch(t, dir, "clip_proxy.mov", "clip.mov", "clip_h264.mkv", "clip_MJPEG.mov", "clip_PRORES.mov")

	want := []string{"clip_PRORES.mov", "clip_MJPEG.mov", "clip_h264.mkv", "clip.mov"}
	for _, name := range want {
		got, ok := naming.Resolver{}.ResolveFullRes(proxy)
		if !ok || got != filepath.Join(dir, name) {
			t.Fatalf("expected %s, got %q ok=%v", name, got, ok)
		}
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			t.Fatalf("remove %s: %v", name, err)
		}
	}
	if got, ok := (naming.Resolver{}).ResolveFullRes(proxy); ok {
		t.Fatalf("expected miss once every candidate is gone, got %q", got)
	}
}

func TestResolveFullResAcceptsAnyExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "clip_proxy.mov", "clip.MXF")

	got, ok := naming.Resolver{}.ResolveFullRes(filepath.Join(dir, "clip_proxy.mov"))
	if !ok || got != filepath.Join(dir, "clip.MXF") {
		t.Fatalf("expected clip.MXF, got %q ok=%v", got, ok)
	}
}

func TestResolveFullResRejectsNonProxy(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "clip.mov", "clip_PRORES.mov")

	if got, ok := (naming.Resolver{}).ResolveFullRes(filepath.Join(dir, "clip.mov")); ok {
		t.Fatalf("expected non-proxy to stay unresolved, got %q", got)
	}
}

func TestResolveRoundTripRecoversBaseStem(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "shot01.mov", "shot01_proxy.mov", "shot01_MJPEG.mov")

	for _, input := range []string{"shot01.mov", "shot01_MJPEG.mov"} {
		original := filepath.Join(dir, input)
		proxy, ok := naming.Resolver{}.ResolveProxy(original)
		if !ok {
			t.Fatalf("%s: expected proxy", input)
		}
		full, ok := naming.Resolver{}.ResolveFullRes(proxy)
		if !ok {
			t.Fatalf("%s: expected full-res", input)
		}
		if got, want := naming.BaseStem(naming.Classify(full)), naming.BaseStem(naming.Classify(original)); got != want {
			t.Fatalf("%s: round trip base %q, want %q", input, got, want)
		}
	}
}

func TestResolveMatchesDecomposedNames(t *testing.T) {
	dir := t.TempDir()
	decomposed := "cafe\u0301_proxy.mov"
	touch(t, dir, decomposed)

	got, ok := naming.Resolver{}.ResolveProxy(filepath.Join(dir, "caf\u00e9.mov"))
	if !ok || got != filepath.Join(dir, decomposed) {
		t.Fatalf("expected NFD proxy to match NFC original, got %q ok=%v", got, ok)
	}
}
