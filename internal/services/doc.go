// Package services defines shared utilities consumed by the batch runner and
// the external tool clients.
//
// Key responsibilities:
//   - Context helpers that stamp batch run IDs and encode pass names for
//     logging.
//   - Structured error markers plus the Wrap helper so callers can tell
//     configuration problems apart from tool failures with errors.Is.
//
// Tool-specific clients live in subpackages (for example services/ffmpeg).
package services
