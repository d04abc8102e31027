package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"revolver/internal/batch"
	"revolver/internal/config"
	"revolver/internal/deps"
	"revolver/internal/media/ffprobe"
	"revolver/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check [folder]",
		Short: "Check the transcoder, ffprobe and (optionally) a media folder",
		Long: `Check that the transcoder and state directories are usable. With a folder,
also verify it is writable and, when ffprobe is available, inspect every
source clip and warn about frame rates that differ from the scene rate or
interlaced footage encoded without --deinterlace. Source warnings never fail
the check.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			folder := ""
			if len(args) == 1 {
				folder = args[0]
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			results := preflight.RunAll(cmd.Context(), cfg, folder)

			for _, line := range renderSectionHeader("Preflight", colorize) {
				fmt.Fprintln(out, line)
			}
			failed := 0
			for _, r := range results {
				kind := resultKind(r)
				if kind == statusError {
					failed++
				}
				fmt.Fprintln(out, renderStatusLine(r.Name, kind, r.Detail, colorize))
			}
			fmt.Fprintln(out, renderStatusLine("Skip existing", statusInfo, yesNo(cfg.Encode.SkipExisting), colorize))
			fmt.Fprintln(out, renderStatusLine("Overwrite", statusInfo, yesNo(cfg.Encode.Overwrite), colorize))

			if folder != "" {
				if err := printSourceSurvey(cmd, out, cfg, folder, colorize); err != nil {
					return err
				}
			}

			if failed > 0 {
				return errors.New("preflight checks failed")
			}
			return nil
		},
	}
}

// printSourceSurvey lists each source clip with its properties. It is silent
// when ffprobe is missing or the folder cannot be read, since preflight
// already reported both.
func printSourceSurvey(cmd *cobra.Command, out io.Writer, cfg *config.Config, folder string, colorize bool) error {
	inspector := deps.CheckFFprobe(cfg.FFprobeBinary())
	if !inspector.Available {
		return nil
	}
	expanded, err := config.ExpandPath(folder)
	if err != nil {
		return nil
	}
	sources, err := batch.Discover(expanded)
	if err != nil {
		return nil
	}
	opts, err := batch.OptionsFromConfig(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	for _, line := range renderSectionHeader("Sources", colorize) {
		fmt.Fprintln(out, line)
	}
	if len(sources) == 0 {
		fmt.Fprintln(out, renderStatusLine("Sources", statusInfo, "no source clips found", colorize))
		return nil
	}

	checks := batch.Survey(cmd.Context(), ffprobe.Prober{Binary: inspector.Command}, sources, opts.ProxyParams)
	flagged := 0
	for _, check := range checks {
		kind, detail := statusOK, describeMedia(check.Media)
		switch {
		case check.Err != nil:
			kind, detail = statusWarn, check.Err.Error()
		case len(check.Warnings) > 0:
			kind, detail = statusWarn, strings.Join(check.Warnings, "; ")
		}
		if kind == statusWarn {
			flagged++
		}
		fmt.Fprintln(out, renderStatusLine(filepath.Base(check.Path), kind, detail, colorize))
	}
	summary := fmt.Sprintf("%d clips at %.3f fps, %d flagged", len(checks), opts.ProxyParams.FPS, flagged)
	fmt.Fprintln(out, renderStatusLine("Survey", statusInfo, summary, colorize))
	return nil
}

func describeMedia(m ffprobe.Summary) string {
	scan := "p"
	if m.Interlaced {
		scan = "i"
	}
	parts := []string{fmt.Sprintf("%s%s %.3f fps", m.Dimensions, scan, m.FPS)}
	if m.Channels > 0 {
		parts = append(parts, fmt.Sprintf("%dch %d Hz", m.Channels, m.SampleRate))
	}
	if m.Duration > 0 {
		parts = append(parts, formatElapsed(m.Duration))
	}
	if m.Container != "" {
		parts = append(parts, m.Container)
	}
	return strings.Join(parts, ", ")
}
