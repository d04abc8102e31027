package session

import (
	"fmt"
	"strings"

	"revolver/internal/config"
)

// StripType distinguishes the kinds of timeline strip.
type StripType string

const (
	StripMovie StripType = "movie"
	StripSound StripType = "sound"
	StripOther StripType = "other"
)

// Scene holds the timeline settings that follow the footage.
type Scene struct {
	FPS         float64 `toml:"fps" yaml:"fps"`
	FPSBase     float64 `toml:"fps_base" yaml:"fps_base"`
	ResolutionX int     `toml:"resolution_x" yaml:"resolution_x"`
	ResolutionY int     `toml:"resolution_y" yaml:"resolution_y"`
}

// Strip is one timeline entry. Movie strips reference media through
// Filepath, sound strips through SoundFilepath.
type Strip struct {
	Name          string    `toml:"name" yaml:"name"`
	Type          StripType `toml:"type" yaml:"type"`
	Channel       int       `toml:"channel,omitempty" yaml:"channel,omitempty"`
	Filepath      string    `toml:"filepath,omitempty" yaml:"filepath,omitempty"`
	SoundFilepath string    `toml:"sound_filepath,omitempty" yaml:"sound_filepath,omitempty"`
}

// Reference returns the media path the strip points at. Strips that carry
// no media report false.
func (s Strip) Reference() (string, bool) {
	switch s.Type {
	case StripMovie:
		return s.Filepath, s.Filepath != ""
	case StripSound:
		return s.SoundFilepath, s.SoundFilepath != ""
	default:
		return "", false
	}
}

func (s *Strip) setReference(path string) {
	switch s.Type {
	case StripMovie:
		s.Filepath = path
	case StripSound:
		s.SoundFilepath = path
	}
}

// Session is an edit session loaded from disk.
type Session struct {
	Scene  Scene   `toml:"scene" yaml:"scene"`
	Strips []Strip `toml:"strips" yaml:"strips"`

	// Root is the directory relative strip paths are anchored to.
	Root string `toml:"-" yaml:"-"`
}

// FPS returns the scene frame rate rounded to two decimals.
func (s *Session) FPS() float64 {
	return config.RoundFPS(s.Scene.FPS, s.Scene.FPSBase)
}

// Validate checks the fields retargeting and encoding depend on.
func (s *Session) Validate() error {
	if s.Scene.FPS < 0 || s.Scene.FPSBase < 0 {
		return fmt.Errorf("scene fps must not be negative")
	}
	for i, strip := range s.Strips {
		switch StripType(strings.ToLower(string(strip.Type))) {
		case StripMovie, StripSound, StripOther:
			s.Strips[i].Type = StripType(strings.ToLower(string(strip.Type)))
		case "":
			s.Strips[i].Type = StripOther
		default:
			return fmt.Errorf("strip %q: unknown type %q", strip.Name, strip.Type)
		}
	}
	return nil
}
