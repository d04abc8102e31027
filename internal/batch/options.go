package batch

import (
	"fmt"

	"revolver/internal/config"
	"revolver/internal/transcode"
)

// Progress is reported before each job and once more when the batch ends.
type Progress struct {
	Percent int
	Index   int
	Total   int
	// Request is the job about to run; zero on the final report.
	Request transcode.Request
}

// Done reports whether this is the final progress report.
func (p Progress) Done() bool {
	return p.Index >= p.Total
}

// Options controls a single batch run.
type Options struct {
	Proxies            bool
	Intermediates      bool
	ProxyParams        transcode.Params
	IntermediateParams transcode.Params
	SkipExisting       bool
	DryRun             bool
	Progress           func(Progress)
}

// OptionsFromConfig derives batch options from the configured defaults.
// Callers override individual fields from flags afterwards.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	codec, err := transcode.ParseCodec(cfg.Encode.Codec)
	if err != nil {
		return Options{}, fmt.Errorf("encode.codec: %w", err)
	}
	shared := transcode.Params{
		Codec:       codec,
		FPS:         cfg.SceneFPS(),
		AudioRate:   cfg.Encode.AudioRate,
		Deinterlace: cfg.Encode.Deinterlace,
		Mono:        cfg.Encode.Mono,
		Overwrite:   cfg.Encode.Overwrite,
	}

	proxy := shared
	proxy.Target = transcode.TargetProxy
	proxy.Width, proxy.Height = cfg.Proxy.Width, cfg.Proxy.Height

	intermediate := shared
	intermediate.Target = transcode.TargetIntermediate
	intermediate.Width, intermediate.Height = cfg.Intermediate.Width, cfg.Intermediate.Height

	return Options{
		Proxies:            cfg.Proxy.Enabled,
		Intermediates:      cfg.Intermediate.Enabled,
		ProxyParams:        proxy,
		IntermediateParams: intermediate,
		SkipExisting:       cfg.Encode.SkipExisting,
	}, nil
}

// passes returns the parameter sets to run, proxies first.
func (o Options) passes() []transcode.Params {
	var passes []transcode.Params
	if o.Proxies {
		passes = append(passes, o.ProxyParams)
	}
	if o.Intermediates {
		passes = append(passes, o.IntermediateParams)
	}
	return passes
}

// percent maps a zero-based job index to the 1..100 progress scale.
func percent(index, total int) int {
	if total <= 0 {
		return 100
	}
	p := 1 + int(float64(index)*100/float64(total))
	if p > 100 {
		return 100
	}
	return p
}
