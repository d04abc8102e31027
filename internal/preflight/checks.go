package preflight

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"revolver/internal/config"
	"revolver/internal/deps"
)

// CheckTranscoder resolves the transcoder for cfg and verifies it can be
// executed. The returned path is what jobs must invoke.
func CheckTranscoder(cfg *config.Config) (string, error) {
	configured := ""
	if cfg != nil {
		configured = cfg.FFmpegBinary()
	}
	status := deps.CheckFFmpeg(configured)
	if !status.Available {
		return status.Command, fmt.Errorf("%w: %s", ErrMissingTranscoder, status.Detail)
	}
	return status.Command, nil
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckSystemDeps evaluates the external binaries for the given config.
// Only the transcoder is required.
func CheckSystemDeps(_ context.Context, cfg *config.Config) []deps.Status {
	return []deps.Status{
		deps.CheckFFmpeg(cfg.FFmpegBinary()),
		deps.CheckFFprobe(cfg.FFprobeBinary()),
	}
}
