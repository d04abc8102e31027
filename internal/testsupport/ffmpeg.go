package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"revolver/internal/config"
)

// FailMarker makes the stub transcoder fail for any input whose path contains it.
const FailMarker = "broken"

const stubCallLog = "ffmpeg-calls.log"

// stubFFmpeg behaves like ffmpeg as far as the filesystem is concerned: it
// writes its last argument, honours -n by refusing to replace an existing
// file, and fails on inputs carrying FailMarker.
const stubFFmpeg = `#!/bin/sh
in=""
out=""
prev=""
noclobber=0
for arg in "$@"; do
  if [ "$prev" = "-i" ]; then in="$arg"; fi
  if [ "$arg" = "-n" ]; then noclobber=1; fi
  prev="$arg"
  out="$arg"
done
printf '%s\n' "$in" >> '__LOG__'
case "$in" in
  *` + FailMarker + `*) echo "$in: Invalid data found when processing input" >&2; exit 1 ;;
esac
if [ "$noclobber" = 1 ] && [ -e "$out" ]; then
  echo "File '$out' already exists. Exiting." >&2
  exit 1
fi
printf 'encoded %s\n' "$in" > "$out"
`

// WithFFmpegStub installs the stub transcoder and points the config at it.
func WithFFmpegStub() ConfigOption {
	return func(b *configBuilder) {
		path := filepath.Join(stubDir(b), "ffmpeg")
		script := strings.ReplaceAll(stubFFmpeg, "__LOG__", filepath.Join(b.baseDir, stubCallLog))
		writeScript(b.t, path, script)
		b.cfg.Transcoder.FFmpeg = path
	}
}

// StubCalls returns the input path of every stub transcoder invocation, in order.
func StubCalls(t testing.TB, cfg *config.Config) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(BaseDir(cfg), stubCallLog))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("read stub log: %v", err)
	}
	trimmed := strings.TrimRight(string(data), "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}
