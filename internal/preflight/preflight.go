package preflight

import (
	"context"
	"errors"
	"strings"

	"revolver/internal/config"
	"revolver/internal/deps"
)

// ErrMissingTranscoder reports that the configured transcoder cannot be
// executed. Batches fail fast on it instead of failing every job.
var ErrMissingTranscoder = errors.New("transcoder not found")

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
	// Optional checks report a warning rather than a failure.
	Optional bool
}

// RunAll executes every preflight check for the given config. When folder is
// non-empty, the batch folder is checked too.
func RunAll(ctx context.Context, cfg *config.Config, folder string) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result
	for _, status := range CheckSystemDeps(ctx, cfg) {
		results = append(results, fromStatus(status))
	}
	if dir := strings.TrimSpace(cfg.Paths.StateDir); dir != "" {
		results = append(results, CheckDirectoryAccess("State directory", dir))
	}
	if folder = strings.TrimSpace(folder); folder != "" {
		results = append(results, CheckDirectoryAccess("Media folder", folder))
	}
	return results
}

// Failed returns the checks that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}

func fromStatus(status deps.Status) Result {
	result := Result{Name: status.Name, Passed: status.Available, Detail: status.Command, Optional: status.Optional}
	if !status.Available {
		result.Detail = status.Detail
		if status.Optional {
			result.Detail += " (optional)"
		}
	}
	return result
}
