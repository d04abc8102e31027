package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"revolver/internal/logging"
	"revolver/internal/media/ffprobe"
	"revolver/internal/naming"
	"revolver/internal/session"
)

func newSwapCommand(ctx *commandContext) *cobra.Command {
	var syncResolution bool
	var dryRun bool
	var jsonOutput bool
	var outputPath string

	cmd := &cobra.Command{
		Use:   "swap <proxy|fullres> <session-file>",
		Short: "Point an edit session's strips at proxies or full-resolution media",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			mode, err := session.ParseMode(args[0])
			if err != nil {
				return err
			}
			path := args[1]
			sess, err := session.Load(path)
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			report := session.Retarget(sess, mode, naming.Resolver{}, logger)

			resolution := ""
			if syncResolution {
				probe := ffprobe.Prober{Binary: cfg.FFprobeBinary()}
				dims, err := session.SyncResolution(cmd.Context(), sess, probe)
				if err != nil {
					logging.WarnWithContext(logging.NewComponentLogger(logger, "session"),
						"scene resolution not updated", "resolution_sync_failed",
						logging.Error(err),
						logging.String(logging.FieldErrorHint, "check transcoder.ffprobe or pass --sync-resolution=false"),
						logging.String(logging.FieldImpact, "scene keeps its previous resolution"),
					)
				} else {
					resolution = dims.String()
				}
			}

			target := strings.TrimSpace(outputPath)
			if target == "" {
				target = path
			}
			saved := false
			if !dryRun {
				if err := sess.SaveAs(target); err != nil {
					return err
				}
				saved = true
			}

			if jsonOutput {
				return writeJSON(cmd, swapJSON(target, report, saved, resolution))
			}
			printSwapReport(cmd.OutOrStdout(), report, resolution, saved, target)
			return nil
		},
	}

	cmd.Flags().BoolVar(&syncResolution, "sync-resolution", true, "Set the scene resolution from the first movie strip")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report changes without saving the session")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the updated session here instead of in place")
	return cmd
}

func printSwapReport(out io.Writer, report session.Report, resolution string, saved bool, target string) {
	rows := make([][]string, 0, len(report.Changes))
	for _, c := range report.Changes {
		to := ""
		if c.Outcome == session.OutcomeRetargeted {
			to = filepath.Base(c.To)
		}
		from := ""
		if c.From != "" {
			from = filepath.Base(c.From)
		}
		rows = append(rows, []string{c.Strip, string(c.Type), c.Outcome.String(), from, to})
	}
	fmt.Fprintln(out, renderTable(tableSpec{
		headers: []string{"Strip", "Type", "Outcome", "From", "To"},
		rows:    rows,
	}))
	fmt.Fprintf(out, "%d retargeted to %s, %d missing, %d unchanged\n",
		report.Count(session.OutcomeRetargeted), report.Mode,
		report.Count(session.OutcomeMissing), report.Count(session.OutcomeAlreadyTarget))
	if resolution != "" {
		fmt.Fprintf(out, "Scene resolution: %s\n", resolution)
	}
	if saved {
		fmt.Fprintf(out, "Saved %s\n", target)
	} else {
		fmt.Fprintln(out, "Dry run: session not saved")
	}
}
