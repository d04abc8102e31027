package ffmpeg

import "strings"

// tailBuffer keeps only the last max bytes written to it.
type tailBuffer struct {
	max  int
	buf  []byte
	lost bool
}

func newTailBuffer(max int) *tailBuffer {
	return &tailBuffer{max: max}
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	n := len(p)
	if len(p) >= t.max {
		t.lost = t.lost || len(t.buf) > 0 || len(p) > t.max
		t.buf = append(t.buf[:0], p[len(p)-t.max:]...)
		return n, nil
	}
	if overflow := len(t.buf) + len(p) - t.max; overflow > 0 {
		t.buf = append(t.buf[:0], t.buf[overflow:]...)
		t.lost = true
	}
	t.buf = append(t.buf, p...)
	return n, nil
}

// String returns the retained output, starting at a line boundary when
// earlier output was dropped.
func (t *tailBuffer) String() string {
	out := string(t.buf)
	if t.lost {
		if idx := strings.IndexByte(out, '\n'); idx >= 0 && idx < len(out)-1 {
			out = out[idx+1:]
		}
	}
	return strings.TrimSpace(out)
}
