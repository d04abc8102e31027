package deps

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// FallbackFFmpegPath is used when no ffmpeg is configured or found on PATH.
const FallbackFFmpegPath = "/usr/bin/ffmpeg"

// ResolveFFmpegPath picks the transcoder binary: the configured value when
// set, else "ffmpeg" from PATH, else FallbackFFmpegPath. The result is not
// checked for existence.
func ResolveFFmpegPath(configured string) string {
	if configured = strings.TrimSpace(configured); configured != "" {
		return configured
	}
	if resolved, err := exec.LookPath("ffmpeg"); err == nil {
		return resolved
	}
	return FallbackFFmpegPath
}

// CheckFFmpeg reports whether the transcoder revolver will execute is present
// and executable.
func CheckFFmpeg(configured string) Status {
	command := ResolveFFmpegPath(configured)
	result := Status{
		Name:        "FFmpeg",
		Command:     command,
		Description: "Encodes proxies and intermediates",
	}

	resolved, err := exec.LookPath(command)
	if err != nil {
		result.Detail = fmt.Sprintf("binary %q not found", command)
		return result
	}
	info, err := os.Stat(resolved)
	if err != nil || !isExecutable(info) {
		result.Detail = fmt.Sprintf("%q is not executable", resolved)
		return result
	}
	result.Command = resolved
	result.Available = true
	return result
}

func isExecutable(info os.FileInfo) bool {
	if info == nil {
		return false
	}
	if info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
