package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"revolver/internal/logging"
	"revolver/internal/services"
)

var commandContext = exec.CommandContext

const (
	defaultBinary    = "ffmpeg"
	defaultTailBytes = 4096
	killGrace        = 5 * time.Second
)

// ExecResult holds the outcome of a single transcoder invocation.
type ExecResult struct {
	ExitCode int
	Stderr   string
	Duration time.Duration
	Err      error
}

// Started reports whether the process was launched at all.
func (r ExecResult) Started() bool {
	return r.ExitCode >= 0
}

// Option configures the client.
type Option func(*Client)

// WithLogger attaches a logger for command and exit diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithOutput tees the transcoder's stdout and stderr to w in real time.
func WithOutput(w io.Writer) Option {
	return func(c *Client) {
		c.output = w
	}
}

// Client wraps a transcoder binary.
type Client struct {
	binary string
	logger *slog.Logger
	output io.Writer
}

// New constructs a client for binary, defaulting to "ffmpeg".
func New(binary string, opts ...Option) *Client {
	c := &Client{
		binary: strings.TrimSpace(binary),
		logger: logging.NewNop(),
	}
	if c.binary == "" {
		c.binary = defaultBinary
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logging.NewComponentLogger(c.logger, "ffmpeg")
	return c
}

// Binary returns the executable the client launches.
func (c *Client) Binary() string {
	return c.binary
}

// Run executes the transcoder with args and blocks until it exits. Cancelling
// ctx kills the process.
func (c *Client) Run(ctx context.Context, args []string) ExecResult {
	logger := logging.WithContext(ctx, c.logger)
	cmd := commandContext(ctx, c.binary, args...) //nolint:gosec
	cmd.WaitDelay = killGrace

	tail := newTailBuffer(defaultTailBytes)
	if c.output != nil {
		cmd.Stdout = c.output
		cmd.Stderr = io.MultiWriter(tail, c.output)
	} else {
		cmd.Stderr = tail
	}

	logger.Debug("launching transcoder", logging.String("binary", c.binary), logging.Int("args", len(args)))
	start := time.Now()
	err := cmd.Run()
	result := ExecResult{
		Stderr:   tail.String(),
		Duration: time.Since(start),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
		result.Err = services.Wrap(services.ErrExternalTool, "ffmpeg", "run", fmt.Sprintf("exit status %d", result.ExitCode), err)
	default:
		result.ExitCode = -1
		result.Err = services.Wrap(services.ErrExternalTool, "ffmpeg", "start", c.binary, err)
	}

	logger.Debug("transcoder exited",
		logging.Int("exit_code", result.ExitCode),
		logging.Duration("duration", result.Duration),
	)
	return result
}
