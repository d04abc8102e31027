package transcode

import (
	"path/filepath"
	"strconv"
	"strings"

	"revolver/internal/naming"
)

const probeSize = "5000000"

// Request is a single encode job. Output is derived from Input and Params.
type Request struct {
	Input  string
	Output string
	Params Params
}

// BuildRequest computes the job for input. The input's extension is replaced
// by the role tag and container of the output.
func BuildRequest(input string, p Params) Request {
	stem := strings.TrimSuffix(input, filepath.Ext(input))
	return Request{
		Input:  input,
		Output: stem + outputSuffix(p),
		Params: p,
	}
}

func outputSuffix(p Params) string {
	if p.Target == TargetProxy {
		return naming.TagProxy + ".mov"
	}
	switch p.Codec {
	case CodecProRes:
		return naming.TagProRes + ".mov"
	case CodecH264:
		return naming.TagH264 + ".mkv"
	default:
		return naming.TagMJPEG + ".mov"
	}
}

func codecArgs(p Params) []string {
	args := []string{"-probesize", probeSize}
	switch p.Codec {
	case CodecProRes:
		profile, qscale := "0", "13"
		if p.Target == TargetIntermediate {
			profile, qscale = "3", "5"
		}
		args = append(args, "-c:v", "prores", "-profile:v", profile, "-qscale:v", qscale,
			"-vendor", "ap10", "-pix_fmt", "yuv422p10le", "-acodec", "pcm_s16be")
	case CodecH264:
		args = append(args, "-c:v", "libx264", "-pix_fmt", "yuv420p", "-g", "1", "-sn",
			"-crf", "25", "-preset", "ultrafast", "-tune", "fastdecode", "-c:a", "copy")
	default:
		if p.Target == TargetIntermediate {
			args = append(args, "-c:v", "mjpeg", "-qscale:v", "1", "-acodec", "pcm_s16be")
		} else {
			args = append(args, "-c:v", "mjpeg", "-qscale:v", "5", "-pix_fmt", "yuvj422p", "-acodec", "pcm_s16be")
		}
	}
	return args
}

// Args returns the transcoder arguments, excluding the binary itself.
func (r Request) Args() []string {
	p := r.Params
	args := []string{"-hwaccel", "auto", "-i", r.Input}
	args = append(args, codecArgs(p)...)
	args = append(args, "-r", formatFPS(p.FPS), "-s", p.Size())
	if p.Deinterlace {
		args = append(args, "-vf", "yadif")
	}
	if p.Mono {
		args = append(args, "-ac", "1")
	}
	args = append(args, "-ar", strconv.Itoa(p.AudioRate))
	if p.Overwrite {
		args = append(args, "-y")
	} else {
		args = append(args, "-n")
	}
	return append(args, r.Output)
}

// CommandLine renders the full invocation as a single shell-quoted line for
// logs and dry runs. It is never executed.
func (r Request) CommandLine(binary string) string {
	parts := append([]string{binary}, r.Args()...)
	for i, part := range parts {
		parts[i] = shellQuote(part)
	}
	return strings.Join(parts, " ")
}

func formatFPS(fps float64) string {
	return strconv.FormatFloat(fps, 'f', -1, 64)
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n'\"\\$`!*?[]{}()<>|&;#~") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
