package session

import "path/filepath"

// MakeAbsolute anchors every relative strip path at root.
func (s *Session) MakeAbsolute(root string) {
	s.rewritePaths(func(p string) string {
		if filepath.IsAbs(p) {
			return filepath.Clean(p)
		}
		return filepath.Join(root, p)
	})
}

// MakeRelative expresses every strip path relative to root. Paths that cannot
// be made relative (another volume) stay absolute.
func (s *Session) MakeRelative(root string) {
	s.rewritePaths(func(p string) string {
		if !filepath.IsAbs(p) {
			return p
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return p
		}
		return rel
	})
}

func (s *Session) rewritePaths(fn func(string) string) {
	for i := range s.Strips {
		if s.Strips[i].Filepath != "" {
			s.Strips[i].Filepath = fn(s.Strips[i].Filepath)
		}
		if s.Strips[i].SoundFilepath != "" {
			s.Strips[i].SoundFilepath = fn(s.Strips[i].SoundFilepath)
		}
	}
}
