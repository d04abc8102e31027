package config

import (
	"errors"
	"fmt"
)

var validCodecs = map[string]struct{}{
	"prores": {},
	"mjpeg":  {},
	"h264":   {},
}

// Validate ensures the configuration is usable. It does not check that the
// transcoder exists; that is a preflight concern so `config` commands keep
// working on machines without ffmpeg.
func (c *Config) Validate() error {
	if err := c.validatePass("proxy", c.Proxy); err != nil {
		return err
	}
	if err := c.validatePass("intermediate", c.Intermediate); err != nil {
		return err
	}
	if err := c.validateEncode(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePass(name string, pass Pass) error {
	if pass.Width <= 0 || pass.Height <= 0 {
		return fmt.Errorf("%s.width and %s.height must be positive (got %dx%d)", name, name, pass.Width, pass.Height)
	}
	return nil
}

func (c *Config) validateEncode() error {
	if _, ok := validCodecs[c.Encode.Codec]; !ok {
		return fmt.Errorf("encode.codec must be one of prores, mjpeg, h264 (got %q)", c.Encode.Codec)
	}
	if c.Encode.AudioRate <= 0 {
		return errors.New("encode.audio_rate must be positive")
	}
	if c.Encode.FPS <= 0 {
		return errors.New("encode.fps must be positive")
	}
	if c.Encode.FPSBase < 0 {
		return errors.New("encode.fps_base must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level)
	}
}
