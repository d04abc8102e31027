package batch

import (
	"context"
	"fmt"
	"math"

	"revolver/internal/media/ffprobe"
	"revolver/internal/transcode"
)

// fpsTolerance absorbs the rounding in NTSC rates such as 30000/1001.
const fpsTolerance = 0.01

// Inspector summarizes a media file.
type Inspector interface {
	Summarize(ctx context.Context, path string) (ffprobe.Summary, error)
}

// SourceCheck is the survey result for one source clip.
type SourceCheck struct {
	Path     string
	Media    ffprobe.Summary
	Err      error
	Warnings []string
}

// Survey inspects every source and notes where the clip will not match the
// encode settings: a frame rate other than the scene rate is resampled, and
// interlaced footage is encoded as-is unless deinterlacing is on.
func Survey(ctx context.Context, inspector Inspector, sources []string, params transcode.Params) []SourceCheck {
	checks := make([]SourceCheck, 0, len(sources))
	for _, source := range sources {
		if ctx.Err() != nil {
			break
		}
		check := SourceCheck{Path: source}
		check.Media, check.Err = inspector.Summarize(ctx, source)
		if check.Err == nil {
			check.Warnings = mismatches(check.Media, params)
		}
		checks = append(checks, check)
	}
	return checks
}

func mismatches(media ffprobe.Summary, params transcode.Params) []string {
	var warnings []string
	if params.FPS > 0 && media.FPS > 0 && math.Abs(media.FPS-params.FPS) > fpsTolerance {
		warnings = append(warnings, fmt.Sprintf("%.3f fps will be resampled to %.3f", media.FPS, params.FPS))
	}
	if media.Interlaced && !params.Deinterlace {
		warnings = append(warnings, fmt.Sprintf("interlaced (%s) but deinterlace is off", media.FieldOrder))
	}
	return warnings
}
