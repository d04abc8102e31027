package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"revolver/internal/batch"
	"revolver/internal/session"
)

type jsonJob struct {
	Input    string  `json:"input"`
	Output   string  `json:"output"`
	Pass     string  `json:"pass"`
	Status   string  `json:"status"`
	Reason   string  `json:"reason,omitempty"`
	Size     int64   `json:"size_bytes,omitempty"`
	Seconds  float64 `json:"seconds,omitempty"`
	ExitCode int     `json:"exit_code,omitempty"`
	Command  string  `json:"command,omitempty"`
}

type jsonBatch struct {
	RunID     string    `json:"run_id"`
	Folder    string    `json:"folder"`
	Completed int       `json:"completed"`
	Failed    int       `json:"failed"`
	Skipped   int       `json:"skipped"`
	Message   string    `json:"message"`
	Jobs      []jsonJob `json:"jobs"`
}

func batchJSON(summary batch.Summary, dryRun bool) jsonBatch {
	out := jsonBatch{
		RunID:     summary.RunID,
		Folder:    summary.Folder,
		Completed: summary.Completed,
		Failed:    summary.Failed,
		Skipped:   summary.Skipped,
		Message:   summary.Message,
		Jobs:      make([]jsonJob, 0, len(summary.Results)),
	}
	for _, r := range summary.Results {
		job := jsonJob{
			Input:    r.Request.Input,
			Output:   r.Request.Output,
			Pass:     r.Request.Params.Target.String(),
			Status:   r.Status.String(),
			Reason:   r.Reason,
			Size:     r.Size,
			Seconds:  r.Duration.Seconds(),
			ExitCode: r.ExitCode,
		}
		if dryRun {
			job.Command = r.Request.CommandLine(summary.Binary)
		}
		out.Jobs = append(out.Jobs, job)
	}
	return out
}

type jsonChange struct {
	Strip   string `json:"strip"`
	Type    string `json:"type"`
	From    string `json:"from,omitempty"`
	To      string `json:"to,omitempty"`
	Outcome string `json:"outcome"`
}

type jsonSwap struct {
	Mode       string       `json:"mode"`
	Session    string       `json:"session"`
	Saved      bool         `json:"saved"`
	Resolution string       `json:"resolution,omitempty"`
	Changes    []jsonChange `json:"changes"`
}

func swapJSON(path string, report session.Report, saved bool, resolution string) jsonSwap {
	out := jsonSwap{
		Mode:       report.Mode.String(),
		Session:    path,
		Saved:      saved,
		Resolution: resolution,
		Changes:    make([]jsonChange, 0, len(report.Changes)),
	}
	for _, c := range report.Changes {
		out.Changes = append(out.Changes, jsonChange{
			Strip:   c.Strip,
			Type:    string(c.Type),
			From:    c.From,
			To:      c.To,
			Outcome: c.Outcome.String(),
		})
	}
	return out
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
