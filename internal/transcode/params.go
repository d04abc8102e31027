package transcode

import (
	"fmt"
	"strings"
)

// Target selects which kind of file a job produces.
type Target int

const (
	TargetProxy Target = iota
	TargetIntermediate
)

func (t Target) String() string {
	if t == TargetIntermediate {
		return "intermediate"
	}
	return "proxy"
}

// Codec selects the video codec family.
type Codec int

const (
	CodecProRes Codec = iota
	CodecMJPEG
	CodecH264
)

func (c Codec) String() string {
	switch c {
	case CodecProRes:
		return "prores"
	case CodecH264:
		return "h264"
	default:
		return "mjpeg"
	}
}

// ParseCodec accepts the codec names used in configuration and flags.
func ParseCodec(value string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "prores", "prores422", "prores_ks":
		return CodecProRes, nil
	case "mjpeg", "mjpg":
		return CodecMJPEG, nil
	case "h264", "h.264", "x264", "avc":
		return CodecH264, nil
	default:
		return 0, fmt.Errorf("unknown codec %q", value)
	}
}

// Params are the encode settings for one pass. Values are copied into every
// Request, so later changes never leak into jobs already built.
type Params struct {
	Target      Target
	Codec       Codec
	Width       int
	Height      int
	FPS         float64
	AudioRate   int
	Deinterlace bool
	Mono        bool
	Overwrite   bool
}

// Size renders the frame size in the transcoder's WxH form.
func (p Params) Size() string {
	return fmt.Sprintf("%dx%d", p.Width, p.Height)
}

// Validate rejects parameter sets the transcoder cannot honour.
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("frame size %s must be positive", p.Size())
	}
	if p.FPS <= 0 {
		return fmt.Errorf("fps %v must be positive", p.FPS)
	}
	if p.AudioRate <= 0 {
		return fmt.Errorf("audio rate %d must be positive", p.AudioRate)
	}
	return nil
}
