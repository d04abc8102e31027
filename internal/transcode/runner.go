package transcode

import (
	"context"
	"log/slog"
	"os"
	"time"

	"revolver/internal/logging"
	"revolver/internal/services/ffmpeg"
)

// Status classifies the outcome of one job.
type Status int

const (
	StatusCompleted Status = iota
	StatusFailed
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusSkipped:
		return "skipped"
	default:
		return "failed"
	}
}

const (
	ReasonNotRewritten  = "output pre-existed and was not rewritten"
	ReasonNoOutput      = "transcoder produced no output"
	ReasonAlreadyExists = "output already exists"
	ReasonCanceled      = "canceled"
)

// Result records the outcome of a job.
type Result struct {
	Request  Request
	Status   Status
	Reason   string
	Size     int64
	Duration time.Duration
	ExitCode int
	Stderr   string
}

// Executor runs the transcoder binary.
type Executor interface {
	Binary() string
	Run(ctx context.Context, args []string) ffmpeg.ExecResult
}

// Runner executes requests one at a time and judges them by their output file.
type Runner struct {
	exec         Executor
	logger       *slog.Logger
	skipExisting bool
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithRunnerLogger attaches a logger.
func WithRunnerLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithSkipExisting makes the runner leave existing outputs alone instead of
// invoking the transcoder.
func WithSkipExisting(skip bool) RunnerOption {
	return func(r *Runner) {
		r.skipExisting = skip
	}
}

// NewRunner constructs a runner around exec.
func NewRunner(exec Executor, opts ...RunnerOption) *Runner {
	r := &Runner{exec: exec, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = logging.NewComponentLogger(r.logger, "transcode")
	return r
}

// Run executes req synchronously. The job completed only if the output exists
// afterwards and was either absent before or has changed since; the exit
// status is recorded but not trusted.
func (r *Runner) Run(ctx context.Context, req Request) Result {
	logger := logging.WithContext(ctx, r.logger).With(
		logging.String(logging.FieldSource, req.Input),
		logging.String(logging.FieldOutput, req.Output),
	)
	result := Result{Request: req}

	before, existed := statFile(req.Output)
	if existed && r.skipExisting {
		result.Status = StatusSkipped
		result.Reason = ReasonAlreadyExists
		result.Size = before.Size()
		logger.Info("output exists, skipping")
		return result
	}
	if err := ctx.Err(); err != nil {
		result.Status = StatusFailed
		result.Reason = ReasonCanceled
		return result
	}

	logger.Debug("transcoder command", logging.String("command", req.CommandLine(r.exec.Binary())))
	exec := r.exec.Run(ctx, req.Args())
	result.Duration = exec.Duration
	result.ExitCode = exec.ExitCode
	result.Stderr = exec.Stderr
	if exec.Err != nil {
		logger.Debug("transcoder reported failure", logging.Error(exec.Err))
	}

	after, exists := statFile(req.Output)
	switch {
	case ctx.Err() != nil:
		result.Status = StatusFailed
		result.Reason = ReasonCanceled
	case !exists:
		result.Status = StatusFailed
		result.Reason = ReasonNoOutput
	case existed && sameFile(before, after):
		result.Status = StatusFailed
		result.Reason = ReasonNotRewritten
	default:
		result.Status = StatusCompleted
		result.Size = after.Size()
	}
	if result.Status == StatusCompleted && exec.ExitCode != 0 {
		logging.WarnWithContext(logger, "output written despite non-zero exit", "transcoder_exit_nonzero",
			logging.Int("exit_code", exec.ExitCode),
			logging.String(logging.FieldImpact, "output kept; inspect it before editing"),
		)
	}
	return result
}

func statFile(path string) (os.FileInfo, bool) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, false
	}
	return info, true
}

func sameFile(a, b os.FileInfo) bool {
	return a.Size() == b.Size() && a.ModTime().Equal(b.ModTime())
}
