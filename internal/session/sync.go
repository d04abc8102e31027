package session

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"revolver/internal/media/ffprobe"
)

// ErrNoMovieStrip is returned when there is no movie strip to measure.
var ErrNoMovieStrip = errors.New("session has no movie strip")

// SyncResolution sets the scene resolution to the frame size of the first
// movie strip's media.
func SyncResolution(ctx context.Context, s *Session, probe ffprobe.Probe) (ffprobe.Dimensions, error) {
	for _, strip := range s.Strips {
		if strip.Type != StripMovie || strip.Filepath == "" {
			continue
		}
		path := strip.Filepath
		if !filepath.IsAbs(path) {
			path = filepath.Join(s.Root, path)
		}
		dims, err := probe.VideoDimensions(ctx, path)
		if err != nil {
			return ffprobe.Dimensions{}, fmt.Errorf("measure %s: %w", strip.Name, err)
		}
		if dims.Width <= 0 || dims.Height <= 0 {
			return ffprobe.Dimensions{}, fmt.Errorf("measure %s: invalid frame size %s", strip.Name, dims)
		}
		s.Scene.ResolutionX, s.Scene.ResolutionY = dims.Width, dims.Height
		return dims, nil
	}
	return ffprobe.Dimensions{}, ErrNoMovieStrip
}
