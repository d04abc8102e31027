package ffprobe

import "context"

// Probe measures the video frame size of a media file.
type Probe interface {
	VideoDimensions(ctx context.Context, path string) (Dimensions, error)
}

// Prober runs a specific ffprobe binary.
type Prober struct {
	Binary string
}

// VideoDimensions inspects path and returns its first video stream's frame size.
func (p Prober) VideoDimensions(ctx context.Context, path string) (Dimensions, error) {
	result, err := Inspect(ctx, p.Binary, path)
	if err != nil {
		return Dimensions{}, err
	}
	return result.VideoDimensions()
}
