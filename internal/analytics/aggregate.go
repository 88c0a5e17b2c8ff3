package analytics

import "math"

// Agg names an aggregation applied to a named value across a frame.
type Agg string

const (
	AggMean  Agg = "mean"
	AggSum   Agg = "sum"
	AggCount Agg = "count"
	AggMin   Agg = "min"
	AggMax   Agg = "max"
)

// Aggregate applies an aggregation to a named value across the frame.
// Empty frames aggregate to 0, never NaN or Inf.
func (f *Frame) Aggregate(value string, agg Agg) float64 {
	switch agg {
	case AggSum:
		return f.Sum(value)
	case AggCount:
		return float64(f.Len())
	case AggMin:
		return f.Min(value)
	case AggMax:
		return f.Max(value)
	default:
		return f.Mean(value)
	}
}

// Sum totals a named value across the frame.
func (f *Frame) Sum(value string) float64 {
	var total float64
	for i := 0; i < f.Len(); i++ {
		total += f.Value(i, value)
	}
	return total
}

// Mean averages a named value across the frame, 0 for an empty frame.
func (f *Frame) Mean(value string) float64 {
	n := f.Len()
	if n == 0 {
		return 0
	}
	return f.Sum(value) / float64(n)
}

// Min returns the smallest named value in the frame, 0 for an empty frame.
func (f *Frame) Min(value string) float64 {
	n := f.Len()
	if n == 0 {
		return 0
	}
	m := math.Inf(1)
	for i := 0; i < n; i++ {
		if v := f.Value(i, value); v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest named value in the frame, 0 for an empty frame.
func (f *Frame) Max(value string) float64 {
	n := f.Len()
	if n == 0 {
		return 0
	}
	m := math.Inf(-1)
	for i := 0; i < n; i++ {
		if v := f.Value(i, value); v > m {
			m = v
		}
	}
	return m
}
