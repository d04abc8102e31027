package logging

import "strings"

// ProgressSampler decides which progress updates are worth a log line: the
// first update of each pass and each time the percentage enters a new bucket.
type ProgressSampler struct {
	bucketSize float64
	lastPass   string
	lastBucket int
}

// NewProgressSampler returns a sampler with the given bucket width in percent
// (5 when non-positive).
func NewProgressSampler(bucketSize float64) *ProgressSampler {
	if bucketSize <= 0 {
		bucketSize = 5
	}
	return &ProgressSampler{bucketSize: bucketSize, lastBucket: -1}
}

// ShouldLog records percent for pass and reports whether it should be logged.
// A negative percent never opens a new bucket. A nil sampler logs everything.
func (s *ProgressSampler) ShouldLog(percent float64, pass string) bool {
	if s == nil {
		return true
	}
	emit := false
	if pass = strings.TrimSpace(pass); pass != "" && pass != s.lastPass {
		s.lastPass = pass
		s.lastBucket = -1
		emit = true
	}
	if percent < 0 {
		return emit
	}
	bucket := int(min(percent, 100) / s.bucketSize)
	if bucket > s.lastBucket {
		s.lastBucket = bucket
		emit = true
	}
	return emit
}

// Reset forgets the last pass and bucket.
func (s *ProgressSampler) Reset() {
	if s == nil {
		return
	}
	s.lastPass = ""
	s.lastBucket = -1
}
