// Package config loads, normalizes, and validates revolver configuration data.
//
// It supplies repository defaults (proxy 640x360, intermediates 1920x1080,
// MJPEG, 48 kHz), expands user paths including tilde shortcuts, reads TOML
// files, and honours the REVOLVER_FFMPEG and REVOLVER_FFPROBE environment
// fallbacks. The resulting Config is the parameter bundle handed to the batch
// runner; command-line flags override individual fields.
package config
