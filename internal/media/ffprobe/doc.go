// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// revolver only needs a narrow slice of what ffprobe reports. After a swap the
// video frame size keeps an edit session's scene in step with its footage.
// Before a batch, Summary flags sources whose frame rate or scan type will not
// match the encode settings.
//
// Primary entry points:
//   - Inspect: executes ffprobe and returns the parsed Result
//   - Prober: binds a binary so callers can depend on the Probe interface
//   - Result.Summarize / Prober.Summarize: the per-clip Summary
package ffprobe
