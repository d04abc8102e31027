package naming

import (
	"path/filepath"
	"strings"
)

// MovieExtensions is the set of container extensions recognised as video,
// in lookup priority order.
var MovieExtensions = []string{
	".mov", ".mp4", ".mkv", ".avi", ".mxf", ".m4v", ".mts", ".m2ts", ".m2t",
	".m2v", ".ts", ".mpg", ".mpeg", ".mpg2", ".vob", ".webm", ".wmv", ".flv",
	".ogv", ".ogg", ".dv", ".r3d", ".divx", ".xvid", ".avs", ".flc", ".mv",
	".movie",
}

var movieExtensionSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(MovieExtensions))
	for _, ext := range MovieExtensions {
		set[ext] = struct{}{}
	}
	return set
}()

// IsMovieExtension reports whether ext (with leading dot) is a known movie
// extension, ignoring case.
func IsMovieExtension(ext string) bool {
	_, ok := movieExtensionSet[strings.ToLower(ext)]
	return ok
}

// IsMovieFile reports whether path has a known movie extension.
func IsMovieFile(path string) bool {
	return IsMovieExtension(filepath.Ext(path))
}
