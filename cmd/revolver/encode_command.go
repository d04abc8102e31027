package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"revolver/internal/batch"
	"revolver/internal/config"
	"revolver/internal/session"
	"revolver/internal/transcode"
)

type encodeFlags struct {
	proxies          bool
	intermediates    bool
	proxySize        string
	intermediateSize string
	codec            string
	audioRate        int
	deinterlace      bool
	mono             bool
	overwrite        bool
	skipExisting     bool
	fps              float64
	fpsBase          float64
	sessionPath      string
	dryRun           bool
	jsonOutput       bool
	verbose          bool
}

func newEncodeCommand(ctx *commandContext) *cobra.Command {
	var flags encodeFlags

	cmd := &cobra.Command{
		Use:   "encode [folder]",
		Short: "Encode proxies and/or intermediates for every clip in a folder",
		Long: `Encode every movie file directly inside folder. Files already named as
proxies or intermediates (_proxy, _PRORES, _MJPEG, _h264) are never used as
sources. With --session and no folder, the session file's directory is used
and the scene frame rate is read from it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			var sess *session.Session
			if path := strings.TrimSpace(flags.sessionPath); path != "" {
				sess, err = session.Load(path)
				if err != nil {
					return err
				}
			}

			folder, err := encodeFolder(args, sess)
			if err != nil {
				return err
			}
			opts, err := encodeOptions(cmd, cfg, flags, sess)
			if err != nil {
				return err
			}

			stderr := cmd.ErrOrStderr()
			showBar := !flags.jsonOutput && !flags.verbose && isTerminal(stderr)
			console := stderr
			if showBar {
				console = io.Discard
			}
			logger, err := ctx.logger(console)
			if err != nil {
				return err
			}

			var orchestratorOpts []batch.Option
			if flags.verbose {
				orchestratorOpts = append(orchestratorOpts, batch.WithTranscoderOutput(stderr))
			}
			if showBar {
				bar := newEncodeProgress(stderr)
				opts.Progress = bar.update
			}

			summary, err := batch.New(cfg, logger, orchestratorOpts...).Run(cmd.Context(), folder, opts)
			if err != nil && summary.RunID == "" {
				return explainBatchError(err)
			}

			if flags.jsonOutput {
				if jsonErr := writeJSON(cmd, batchJSON(summary, flags.dryRun)); jsonErr != nil {
					return jsonErr
				}
			} else {
				printEncodeSummary(cmd.OutOrStdout(), summary, flags.dryRun)
			}
			if err != nil {
				return err
			}
			if summary.Failed > 0 {
				return fmt.Errorf("%d of %d jobs failed", summary.Failed, summary.Jobs())
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVar(&flags.proxies, "proxies", false, "Encode proxies (default from proxy.enabled)")
	f.BoolVar(&flags.intermediates, "intermediates", false, "Encode full-resolution intermediates (default from intermediate.enabled)")
	f.StringVar(&flags.proxySize, "proxy-size", "", "Proxy frame size as WxH")
	f.StringVar(&flags.intermediateSize, "intermediate-size", "", "Intermediate frame size as WxH")
	f.StringVar(&flags.codec, "codec", "", "Codec: prores, mjpeg or h264")
	f.IntVar(&flags.audioRate, "audio-rate", 0, "Audio sample rate in Hz")
	f.BoolVar(&flags.deinterlace, "deinterlace", false, "Deinterlace with yadif")
	f.BoolVar(&flags.mono, "mono", false, "Downmix audio to one channel")
	f.BoolVar(&flags.overwrite, "overwrite", false, "Overwrite existing outputs")
	f.BoolVar(&flags.skipExisting, "skip-existing", false, "Do not run the transcoder when the output already exists")
	f.Float64Var(&flags.fps, "fps", 0, "Scene frame rate")
	f.Float64Var(&flags.fpsBase, "fps-base", 0, "Scene frame rate base (fps / fps-base is used)")
	f.StringVar(&flags.sessionPath, "session", "", "Edit session file to read the scene frame rate from")
	f.BoolVar(&flags.dryRun, "dry-run", false, "Print the planned transcoder commands without running them")
	f.BoolVar(&flags.jsonOutput, "json", false, "Output results as JSON")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "Stream transcoder output to stderr")

	return cmd
}

func encodeFolder(args []string, sess *session.Session) (string, error) {
	if len(args) == 1 {
		expanded, err := config.ExpandPath(args[0])
		if err != nil {
			return "", fmt.Errorf("resolve folder: %w", err)
		}
		return expanded, nil
	}
	if sess != nil {
		return sess.Root, nil
	}
	return "", errors.New("folder is required (or pass --session)")
}

// encodeOptions layers flags over the session and the configured defaults.
func encodeOptions(cmd *cobra.Command, cfg *config.Config, flags encodeFlags, sess *session.Session) (batch.Options, error) {
	opts, err := batch.OptionsFromConfig(cfg)
	if err != nil {
		return batch.Options{}, err
	}
	changed := cmd.Flags().Changed

	if changed("proxies") {
		opts.Proxies = flags.proxies
	}
	if changed("intermediates") {
		opts.Intermediates = flags.intermediates
	}
	if changed("proxy-size") {
		if opts.ProxyParams.Width, opts.ProxyParams.Height, err = parseSize(flags.proxySize); err != nil {
			return batch.Options{}, fmt.Errorf("--proxy-size: %w", err)
		}
	}
	if changed("intermediate-size") {
		if opts.IntermediateParams.Width, opts.IntermediateParams.Height, err = parseSize(flags.intermediateSize); err != nil {
			return batch.Options{}, fmt.Errorf("--intermediate-size: %w", err)
		}
	}

	shared := func(apply func(p *transcode.Params)) {
		apply(&opts.ProxyParams)
		apply(&opts.IntermediateParams)
	}
	if changed("codec") {
		codec, err := transcode.ParseCodec(flags.codec)
		if err != nil {
			return batch.Options{}, fmt.Errorf("--codec: %w", err)
		}
		shared(func(p *transcode.Params) { p.Codec = codec })
	}
	if changed("audio-rate") {
		shared(func(p *transcode.Params) { p.AudioRate = flags.audioRate })
	}
	if changed("deinterlace") {
		shared(func(p *transcode.Params) { p.Deinterlace = flags.deinterlace })
	}
	if changed("mono") {
		shared(func(p *transcode.Params) { p.Mono = flags.mono })
	}
	if changed("overwrite") {
		shared(func(p *transcode.Params) { p.Overwrite = flags.overwrite })
	}
	if changed("skip-existing") {
		opts.SkipExisting = flags.skipExisting
	}

	fps := opts.ProxyParams.FPS
	if sess != nil && sess.Scene.FPS > 0 {
		fps = sess.FPS()
	}
	if changed("fps") || changed("fps-base") {
		base := cfg.Encode.FPSBase
		if changed("fps-base") {
			base = flags.fpsBase
		}
		rate := cfg.Encode.FPS
		if changed("fps") {
			rate = flags.fps
		}
		fps = config.RoundFPS(rate, base)
	}
	shared(func(p *transcode.Params) { p.FPS = fps })

	opts.DryRun = flags.dryRun
	return opts, nil
}

func parseSize(value string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(value)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("expected WxH, got %q", value)
	}
	width, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("invalid width in %q", value)
	}
	height, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("invalid height in %q", value)
	}
	return width, height, nil
}

func explainBatchError(err error) error {
	switch {
	case errors.Is(err, batch.ErrNoAction):
		return fmt.Errorf("%w: pass --proxies and/or --intermediates", err)
	case errors.Is(err, batch.ErrBusy):
		return fmt.Errorf("%w; wait for the other run to finish", err)
	default:
		return err
	}
}

func printEncodeSummary(out io.Writer, summary batch.Summary, dryRun bool) {
	if dryRun {
		for _, r := range summary.Results {
			fmt.Fprintln(out, r.Request.CommandLine(summary.Binary))
		}
		fmt.Fprintf(out, "%d jobs planned for %s\n", summary.Jobs(), summary.Folder)
		return
	}

	rows := make([][]string, 0, len(summary.Results))
	var total int64
	for _, r := range summary.Results {
		total += r.Size
		rows = append(rows, []string{
			r.Request.Params.Target.String(),
			filepath.Base(r.Request.Input),
			filepath.Base(r.Request.Output),
			r.Status.String(),
			formatSize(r.Size),
			formatElapsed(r.Duration),
			r.Reason,
		})
	}
	fmt.Fprintln(out, renderTable(tableSpec{
		headers: []string{"Pass", "Source", "Output", "Status", "Size", "Time", "Note"},
		rows:    rows,
		aligns:  []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft},
		footer: []string{
			"", "", fmt.Sprintf("%d jobs", summary.Jobs()),
			fmt.Sprintf("%d ok / %d failed", summary.Completed, summary.Failed),
			formatSize(total), formatElapsed(summary.Duration), "",
		},
	}))
	fmt.Fprintln(out, summary.Message)
}

func formatSize(size int64) string {
	if size <= 0 {
		return "-"
	}
	return humanize.IBytes(uint64(size))
}

func formatElapsed(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	return d.Round(100 * time.Millisecond).String()
}
