package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"revolver/internal/config"
	"revolver/internal/deps"
	"revolver/internal/logging"
	"revolver/internal/preflight"
	"revolver/internal/services"
	"revolver/internal/services/ffmpeg"
	"revolver/internal/transcode"
)

var (
	// ErrNoAction means neither proxies nor intermediates were requested.
	ErrNoAction = errors.New("no encode pass selected")
	// ErrNoSources means the folder holds no eligible source clips.
	ErrNoSources = errors.New("no source clips found")
	// ErrBusy means another batch holds the folder lock.
	ErrBusy = errors.New("folder is already being encoded")
)

const (
	MessageFinished = "finished encoding files"
	MessageFailures = "some files were not encoded; see log for details"

	reasonDryRun = "dry run"

	// progressLogBucket is the percentage step between progress log lines.
	progressLogBucket = 25
)

// Summary aggregates a batch.
type Summary struct {
	RunID     string
	Folder    string
	Binary    string
	Sources   []string
	Results   []transcode.Result
	Completed int
	Failed    int
	Skipped   int
	Duration  time.Duration
	Message   string
}

// Jobs returns the number of jobs that were run or planned.
func (s Summary) Jobs() int {
	return len(s.Results)
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithTranscoderOutput streams transcoder output to w.
func WithTranscoderOutput(w io.Writer) Option {
	return func(o *Orchestrator) {
		o.transcoderOutput = w
	}
}

// Orchestrator drives batches for one configuration.
type Orchestrator struct {
	cfg              *config.Config
	base             *slog.Logger
	logger           *slog.Logger
	transcoderOutput io.Writer
}

// New constructs an orchestrator.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) *Orchestrator {
	if logger == nil {
		logger = logging.NewNop()
	}
	o := &Orchestrator{
		cfg:    cfg,
		base:   logger,
		logger: logging.NewComponentLogger(logger, "batch"),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run encodes every source in folder according to opts. Per-job failures are
// recorded in the Summary; an error is returned only when the batch could not
// start or was canceled.
func (o *Orchestrator) Run(ctx context.Context, folder string, opts Options) (Summary, error) {
	summary := Summary{Folder: folder}
	passes := opts.passes()
	if len(passes) == 0 {
		return summary, ErrNoAction
	}
	for _, p := range passes {
		if err := p.Validate(); err != nil {
			return summary, services.Wrap(services.ErrValidation, "batch", p.Target.String(), "invalid parameters", err)
		}
	}

	sources, err := Discover(folder)
	if err != nil {
		marker := services.ErrConfiguration
		if errors.Is(err, fs.ErrNotExist) {
			marker = services.ErrNotFound
		}
		return summary, services.Wrap(marker, "batch", "discover", folder, err)
	}
	if len(sources) == 0 {
		return summary, fmt.Errorf("%w in %s", ErrNoSources, folder)
	}
	summary.Sources = sources

	if opts.DryRun {
		summary.Binary = deps.ResolveFFmpegPath(o.cfg.FFmpegBinary())
	} else {
		summary.Binary, err = preflight.CheckTranscoder(o.cfg)
		if err != nil {
			return summary, err
		}
	}

	lock, err := folderLock(o.cfg.Paths.StateDir, folder)
	if err != nil {
		return summary, services.Wrap(services.ErrConfiguration, "batch", "lock", o.cfg.Paths.StateDir, err)
	}
	if lock != nil {
		ok, err := lock.TryLock()
		if err != nil {
			return summary, services.Wrap(services.ErrConfiguration, "batch", "lock", lock.Path(), err)
		}
		if !ok {
			return summary, fmt.Errorf("%w: %s", ErrBusy, folder)
		}
		defer func() {
			if err := lock.Unlock(); err != nil {
				o.logger.Warn("failed to release folder lock", logging.Error(err))
			}
		}()
	}

	summary.RunID = uuid.NewString()
	ctx = services.WithRunID(ctx, summary.RunID)
	logger := logging.WithContext(ctx, o.logger)

	var jobs []transcode.Request
	for _, p := range passes {
		for _, source := range sources {
			jobs = append(jobs, transcode.BuildRequest(source, p))
		}
	}
	logger.Info("batch started",
		logging.String("folder", folder),
		logging.Int("sources", len(sources)),
		logging.Int("jobs", len(jobs)),
		logging.Bool("dry_run", opts.DryRun),
	)

	client := ffmpeg.New(summary.Binary, ffmpeg.WithLogger(o.base), ffmpeg.WithOutput(o.transcoderOutput))
	runner := transcode.NewRunner(client,
		transcode.WithRunnerLogger(o.base),
		transcode.WithSkipExisting(opts.SkipExisting),
	)

	sampler := logging.NewProgressSampler(progressLogBucket)
	start := time.Now()
	var runErr error
	for i, job := range jobs {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		pct := percent(i, len(jobs))
		report(opts.Progress, Progress{Percent: pct, Index: i, Total: len(jobs), Request: job})
		if sampler.ShouldLog(float64(pct), job.Params.Target.String()) {
			logger.Info("batch progress",
				logging.Int("percent", pct),
				logging.String(logging.FieldPass, job.Params.Target.String()),
				logging.Int("job", i+1),
				logging.Int("jobs", len(jobs)),
			)
		}

		jobCtx := services.WithPass(ctx, job.Params.Target.String())
		result := o.runJob(jobCtx, runner, job, opts.DryRun, summary.Binary, i, len(jobs))
		summary.Results = append(summary.Results, result)
		switch result.Status {
		case transcode.StatusCompleted:
			summary.Completed++
		case transcode.StatusSkipped:
			summary.Skipped++
		default:
			summary.Failed++
		}
	}
	summary.Duration = time.Since(start)
	report(opts.Progress, Progress{Percent: 100, Index: len(jobs), Total: len(jobs)})

	if summary.Failed == 0 && runErr == nil {
		summary.Message = MessageFinished
	} else {
		summary.Message = MessageFailures
	}
	logger.Info("batch finished",
		logging.Int("completed", summary.Completed),
		logging.Int("failed", summary.Failed),
		logging.Int("skipped", summary.Skipped),
		logging.Duration("duration", summary.Duration),
	)
	if runErr != nil {
		return summary, fmt.Errorf("batch interrupted: %w", runErr)
	}
	return summary, nil
}

func (o *Orchestrator) runJob(ctx context.Context, runner *transcode.Runner, job transcode.Request, dryRun bool, binary string, index, total int) transcode.Result {
	logger := logging.WithContext(ctx, o.logger).With(
		logging.String(logging.FieldSource, job.Input),
		logging.String(logging.FieldOutput, job.Output),
	)
	if dryRun {
		logger.Info("planned", logging.String("command", job.CommandLine(binary)))
		return transcode.Result{Request: job, Status: transcode.StatusSkipped, Reason: reasonDryRun}
	}

	logger.Info("encoding", logging.Int("job", index+1), logging.Int("total", total))
	result := runner.Run(ctx, job)
	if result.Status == transcode.StatusFailed {
		logging.ErrorWithContext(logger, "encode failed", "encode_failed",
			logging.String("reason", result.Reason),
			logging.Int("exit_code", result.ExitCode),
			logging.String("stderr", result.Stderr),
			logging.String(logging.FieldErrorHint, "run the logged command by hand to see the transcoder's full output"),
		)
	}
	return result
}

func report(fn func(Progress), p Progress) {
	if fn != nil {
		fn(p)
	}
}
