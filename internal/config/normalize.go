package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeTranscoder(); err != nil {
		return err
	}
	c.normalizeEncode()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(strings.TrimSpace(c.Paths.StateDir)); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

// normalizeTranscoder applies REVOLVER_FFMPEG / REVOLVER_FFPROBE when the file
// leaves the binaries unset. Values containing a path separator are expanded;
// bare names are left for PATH lookup.
func (c *Config) normalizeTranscoder() error {
	c.Transcoder.FFmpeg = strings.TrimSpace(c.Transcoder.FFmpeg)
	if c.Transcoder.FFmpeg == "" {
		if value, ok := os.LookupEnv("REVOLVER_FFMPEG"); ok {
			c.Transcoder.FFmpeg = strings.TrimSpace(value)
		}
	}
	c.Transcoder.FFprobe = strings.TrimSpace(c.Transcoder.FFprobe)
	if c.Transcoder.FFprobe == "" {
		if value, ok := os.LookupEnv("REVOLVER_FFPROBE"); ok {
			c.Transcoder.FFprobe = strings.TrimSpace(value)
		}
	}
	var err error
	if looksLikePath(c.Transcoder.FFmpeg) {
		if c.Transcoder.FFmpeg, err = expandPath(c.Transcoder.FFmpeg); err != nil {
			return fmt.Errorf("transcoder.ffmpeg: %w", err)
		}
	}
	if looksLikePath(c.Transcoder.FFprobe) {
		if c.Transcoder.FFprobe, err = expandPath(c.Transcoder.FFprobe); err != nil {
			return fmt.Errorf("transcoder.ffprobe: %w", err)
		}
	}
	return nil
}

func looksLikePath(value string) bool {
	return value != "" && (strings.ContainsAny(value, `/\`) || strings.HasPrefix(value, "~"))
}

func (c *Config) normalizeEncode() {
	c.Encode.Codec = strings.ToLower(strings.TrimSpace(c.Encode.Codec))
	switch c.Encode.Codec {
	case "":
		c.Encode.Codec = defaultCodec
	case "h.264", "x264", "avc":
		c.Encode.Codec = "h264"
	case "prores422", "prores_ks":
		c.Encode.Codec = "prores"
	}
	if c.Encode.FPSBase == 0 {
		c.Encode.FPSBase = defaultFPSBase
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
