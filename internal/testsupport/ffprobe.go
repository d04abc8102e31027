package testsupport

import (
	"path/filepath"
	"strings"
)

// InterlacedMarker makes the stub inspector report top-field-first video for
// any clip whose path contains it.
const InterlacedMarker = "interlaced"

const stubFFprobe = `#!/bin/sh
in=""
for arg in "$@"; do in="$arg"; done
case "$in" in
  *` + FailMarker + `*) echo "$in: Invalid data found when processing input" >&2; exit 1 ;;
esac
order=progressive
case "$in" in
  *` + InterlacedMarker + `*) order=tt ;;
esac
cat <<JSON
{"streams": [
  {"index": 0, "codec_name": "prores", "codec_type": "video", "width": 1920, "height": 1080,
   "r_frame_rate": "__RATE__", "field_order": "$order"},
  {"index": 1, "codec_name": "pcm_s16le", "codec_type": "audio", "sample_rate": "48000", "channels": 2}
],
 "format": {"duration": "12.5", "format_name": "mov,mp4,m4a,3gp,3g2,mj2"}}
JSON
`

// WithFFprobeStub installs an inspector that reports every clip as 1920x1080
// at frameRate (an ffprobe rational such as "30000/1001") with 48 kHz stereo
// audio, and points the config at it.
func WithFFprobeStub(frameRate string) ConfigOption {
	return func(b *configBuilder) {
		path := filepath.Join(stubDir(b), "ffprobe")
		writeScript(b.t, path, strings.ReplaceAll(stubFFprobe, "__RATE__", frameRate))
		b.cfg.Transcoder.FFprobe = path
	}
}
