// Package naming implements the filename convention that links an original
// clip to its proxy and full-resolution intermediate siblings.
//
// A file's role is derived purely from its name: "_proxy." marks a proxy,
// "_PRORES.", "_MJPEG." and "_h264." mark intermediates, anything else is an
// original. Resolver answers "which sibling should a strip point at" with
// read-only directory lookups; it never renames or writes files.
package naming
