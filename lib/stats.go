package lib

import "fmt"
import "math"
import "strings"

// SizeStats accumulates min/max/mean/standard-deviation over a stream of
// byte-count samples, with an optional histogram for a one-line summary.
// cmd/lwmembench is the only caller: one SizeStats tracks the sizes it
// requests from the heap, another tracks the heap's available-bytes
// watermark over the run.
type SizeStats struct {
	n     int64
	minv  int64
	maxv  int64
	sum   int64
	sumsq float64
	init  bool

	from, width int64
	buckets     []int64 // nil unless a histogram was requested
}

// NewSizeStats returns a SizeStats. When width > 0, Add also buckets
// samples into a histogram spanning [from, till) plus an overflow bucket
// for samples >= till, surfaced by Logstring. Pass width <= 0 to track
// only min/max/mean/sd.
func NewSizeStats(from, till, width int64) *SizeStats {
	s := &SizeStats{from: from, width: width}
	if width > 0 {
		s.buckets = make([]int64, (till-from)/width+2)
	}
	return s
}

// Add records one sample.
func (s *SizeStats) Add(sample int64) {
	s.n++
	s.sum += sample
	f := float64(sample)
	s.sumsq += f * f
	if !s.init || sample < s.minv {
		s.minv, s.init = sample, true
	}
	if sample > s.maxv {
		s.maxv = sample
	}
	if s.buckets == nil {
		return
	}
	idx := int64(0)
	if sample >= s.from {
		idx = 1 + (sample-s.from)/s.width
		if last := int64(len(s.buckets)) - 1; idx > last {
			idx = last
		}
	}
	s.buckets[idx]++
}

// Min returns the smallest sample seen, or 0 if none.
func (s *SizeStats) Min() int64 { return s.minv }

// Max returns the largest sample seen, or 0 if none.
func (s *SizeStats) Max() int64 { return s.maxv }

// Mean returns the arithmetic mean of every sample seen, or 0 if none.
func (s *SizeStats) Mean() int64 {
	if s.n == 0 {
		return 0
	}
	return int64(float64(s.sum) / float64(s.n))
}

// SD returns the standard deviation of every sample seen, or 0 if none.
func (s *SizeStats) SD() float64 {
	if s.n == 0 {
		return 0
	}
	nF, meanF := float64(s.n), float64(s.Mean())
	variance := (s.sumsq / nF) - (meanF * meanF)
	return math.Sqrt(variance)
}

// Logstring renders a one-line summary suitable for a log line: sample
// count, min/max/mean/sd, and — when a histogram was configured — the
// non-empty bucket counts in ascending order.
func (s *SizeStats) Logstring() string {
	line := fmt.Sprintf("{samples:%v min:%v max:%v mean:%v sd:%.1f",
		s.n, s.minv, s.maxv, s.Mean(), s.SD())
	if s.buckets == nil {
		return line + "}"
	}

	parts := make([]string, 0, len(s.buckets))
	if s.buckets[0] > 0 {
		parts = append(parts, fmt.Sprintf("<%v:%v", s.from, s.buckets[0]))
	}
	last := len(s.buckets) - 1
	for i := 1; i < last; i++ {
		if s.buckets[i] == 0 {
			continue
		}
		lo := s.from + int64(i-1)*s.width
		parts = append(parts, fmt.Sprintf("%v:%v", lo, s.buckets[i]))
	}
	if s.buckets[last] > 0 {
		parts = append(parts, fmt.Sprintf(">=%v:%v", s.from+int64(last-1)*s.width, s.buckets[last]))
	}
	return line + fmt.Sprintf(" histogram:{%v}}", strings.Join(parts, ","))
}
