package ffprobe

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// Summary is the subset of a clip's properties that matters when encoding it
// for an edit: frame size, timing, scan type and audio layout.
type Summary struct {
	Dimensions Dimensions
	FPS        float64
	Interlaced bool
	FieldOrder string
	Duration   time.Duration
	// SampleRate and Channels are zero when the clip has no audio stream.
	SampleRate int
	Channels   int
	Container  string
}

// Summarize condenses r into a Summary. It fails with ErrNoVideoStream when
// there is nothing to encode.
func (r Result) Summarize() (Summary, error) {
	video, ok := r.VideoStream()
	if !ok {
		return Summary{}, ErrNoVideoStream
	}
	summary := Summary{
		Dimensions: Dimensions{Width: video.Width, Height: video.Height},
		FPS:        video.FramesPerSecond(),
		Interlaced: video.Interlaced(),
		FieldOrder: strings.TrimSpace(video.FieldOrder),
		Duration:   time.Duration(r.DurationSeconds() * float64(time.Second)),
		Container:  strings.TrimSpace(r.Format.FormatName),
	}
	if audio, ok := r.AudioStream(); ok {
		summary.SampleRate, _ = strconv.Atoi(strings.TrimSpace(audio.SampleRate))
		summary.Channels = audio.Channels
	}
	return summary, nil
}

// Summarize inspects path and condenses the result.
func (p Prober) Summarize(ctx context.Context, path string) (Summary, error) {
	result, err := Inspect(ctx, p.Binary, path)
	if err != nil {
		return Summary{}, err
	}
	return result.Summarize()
}
