package naming

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// fullResTiers is the search order when leaving proxy mode.
var fullResTiers = []string{TagProRes, TagMJPEG, TagH264, ""}

// Resolver locates proxy and full-resolution siblings on disk.
// The zero value searches MovieExtensions.
type Resolver struct {
	Extensions []string
}

func (r Resolver) extensions() []string {
	if len(r.Extensions) > 0 {
		return r.Extensions
	}
	return MovieExtensions
}

// ResolveProxy returns the proxy counterpart of path. Proxies resolve to
// themselves. The original's own extension is tried first, then every movie
// extension in order.
func (r Resolver) ResolveProxy(path string) (string, bool) {
	ref := Classify(path)
	if ref.Role == RoleProxy {
		return path, true
	}
	_, ext := Stem(path)
	if ref.Role == RoleOriginal && !IsMovieExtension(ext) {
		return "", false
	}

	dir, baseName := filepath.Split(BaseStem(ref))
	index, err := readDirIndex(dir)
	if err != nil {
		return "", false
	}

	want := baseName + TagProxy
	if name, ok := index.lookup(want + ext); ok {
		return filepath.Join(dir, name), true
	}
	for _, candidate := range r.extensions() {
		if strings.EqualFold(candidate, ext) {
			continue
		}
		if name, ok := index.lookup(want + candidate); ok {
			return filepath.Join(dir, name), true
		}
	}
	return "", false
}

// ResolveFullRes returns the full-resolution counterpart of a proxy path,
// preferring ProRes, then MJPEG, then H.264 intermediates, then the original.
// Any extension is accepted within a tier; the lexically first match wins.
// Paths that are not proxies are never resolved.
func (r Resolver) ResolveFullRes(path string) (string, bool) {
	ref := Classify(path)
	if ref.Role != RoleProxy {
		return "", false
	}
	dir, baseName := filepath.Split(BaseStem(ref))
	index, err := readDirIndex(dir)
	if err != nil {
		return "", false
	}
	for _, tag := range fullResTiers {
		if name, ok := index.firstWithPrefix(baseName + tag + "."); ok {
			return filepath.Join(dir, name), true
		}
	}
	return "", false
}

// dirIndex is a snapshot of the regular files in one directory, keyed by
// NFC-normalized name so composed and decomposed spellings compare equal.
type dirIndex struct {
	names []string
	byNFC map[string]string
}

func readDirIndex(dir string) (dirIndex, error) {
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return dirIndex{}, err
	}
	index := dirIndex{byNFC: make(map[string]string, len(entries))}
	for _, entry := range entries {
		if !IsFileEntry(dir, entry) {
			continue
		}
		index.names = append(index.names, entry.Name())
		index.byNFC[norm.NFC.String(entry.Name())] = entry.Name()
	}
	sort.Strings(index.names)
	return index, nil
}

// IsFileEntry reports whether entry in dir is a regular file, following
// symlinks to their target.
func IsFileEntry(dir string, entry os.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.Mode().IsRegular()
}

func (d dirIndex) lookup(name string) (string, bool) {
	actual, ok := d.byNFC[norm.NFC.String(name)]
	return actual, ok
}

func (d dirIndex) firstWithPrefix(prefix string) (string, bool) {
	prefix = norm.NFC.String(prefix)
	for _, name := range d.names {
		normalized := norm.NFC.String(name)
		if strings.HasPrefix(normalized, prefix) && len(normalized) > len(prefix) {
			return name, true
		}
	}
	return "", false
}
