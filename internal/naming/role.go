package naming

import (
	"path/filepath"
	"strings"
)

// Role is the part a media file plays, derived from its name.
type Role int

const (
	RoleOriginal Role = iota
	RoleProxy
	RoleProRes
	RoleMJPEG
	RoleH264
)

const (
	TagProxy  = "_proxy"
	TagProRes = "_PRORES"
	TagMJPEG  = "_MJPEG"
	TagH264   = "_h264"
)

// classification order matters: a proxy of an intermediate is still a proxy.
var roleTags = []struct {
	role Role
	tag  string
}{
	{RoleProxy, TagProxy},
	{RoleProRes, TagProRes},
	{RoleMJPEG, TagMJPEG},
	{RoleH264, TagH264},
}

func (r Role) String() string {
	switch r {
	case RoleProxy:
		return "proxy"
	case RoleProRes:
		return "prores"
	case RoleMJPEG:
		return "mjpeg"
	case RoleH264:
		return "h264"
	default:
		return "original"
	}
}

// Tag returns the filename tag for the role, or "" for originals.
func (r Role) Tag() string {
	for _, rt := range roleTags {
		if rt.role == r {
			return rt.tag
		}
	}
	return ""
}

// IsIntermediate reports whether r is one of the full-resolution re-encodes.
func (r Role) IsIntermediate() bool {
	return r == RoleProRes || r == RoleMJPEG || r == RoleH264
}

// Reference is a media path together with its derived role.
type Reference struct {
	Path string
	Role Role
}

// Classify derives the role of path from its file name. Tags are matched
// case-sensitively and must be followed by a dot.
func Classify(path string) Reference {
	name := filepath.Base(path)
	for _, rt := range roleTags {
		if strings.Contains(name, rt.tag+".") {
			return Reference{Path: path, Role: rt.role}
		}
	}
	return Reference{Path: path, Role: RoleOriginal}
}

// IsOriginalName reports whether name carries none of the reserved tags.
// The H.264 tag is rejected even without a trailing dot so that stray
// "_h264" renders are never treated as sources.
func IsOriginalName(name string) bool {
	name = filepath.Base(name)
	return !strings.Contains(name, TagProxy+".") &&
		!strings.Contains(name, TagProRes+".") &&
		!strings.Contains(name, TagMJPEG+".") &&
		!strings.Contains(name, TagH264)
}

// Stem returns path without its extension, plus the extension.
func Stem(path string) (string, string) {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext), ext
}

// BaseStem strips the role tag (if any) from the stem of path, yielding the
// name shared by all siblings. The tag is removed by length from the end of
// the stem, matching how intermediates and proxies are named on output.
func BaseStem(ref Reference) string {
	stem, _ := Stem(ref.Path)
	tag := ref.Role.Tag()
	if tag == "" || len(stem) < len(tag) {
		return stem
	}
	return stem[:len(stem)-len(tag)]
}
