// Package transcode turns a source clip and a set of encode parameters into
// a concrete transcoder invocation, runs it, and classifies the outcome from
// the filesystem.
//
// Key types:
//   - Params: immutable encode settings shared by a pass
//   - Request: one input, its deterministic output path and the Params
//   - Runner: executes a Request through the ffmpeg client
//   - Result: Completed, Failed or Skipped, with a reason on failure
//
// Requests are pure values; building one never touches the disk.
package transcode
