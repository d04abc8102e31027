package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"revolver/internal/batch"
)

// encodeProgress renders batch progress as a terminal bar.
type encodeProgress struct {
	bar *progressbar.ProgressBar
}

func newEncodeProgress(w io.Writer) *encodeProgress {
	bar := progressbar.NewOptions(100,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(w) }),
	)
	return &encodeProgress{bar: bar}
}

func (p *encodeProgress) update(update batch.Progress) {
	if update.Done() {
		p.bar.Describe("done")
		_ = p.bar.Set(100)
		_ = p.bar.Finish()
		return
	}
	p.bar.Describe(fmt.Sprintf("[%d/%d] %s %s", update.Index+1, update.Total,
		update.Request.Params.Target, filepath.Base(update.Request.Input)))
	_ = p.bar.Set(update.Percent)
}
