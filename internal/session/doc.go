// Package session models an edit session file: the scene settings and the
// timeline strips whose media references are swapped between proxies and
// full-resolution files.
//
// Sessions are stored as TOML or YAML, chosen by file extension. Strip paths
// may be relative to the session file's directory; retargeting resolves
// them to absolute paths, rewrites what it can, and stores them relative
// again.
package session
