// Package analytics provides in-memory filtering, grouping, and aggregation
// over indicator observations, plus render-ready chart and table outputs.
package analytics

import (
	"sort"
	"strconv"
)

// Observation is a single indicator data point: a year, string dimensions
// (region, country, crop, indicator), and named numeric values.
type Observation struct {
	Year   int                `json:"year"`
	Dims   map[string]string  `json:"dims"`
	Values map[string]float64 `json:"values"`
}

// Frame provides indexed access to a set of observations. Filtering and
// grouping return sub-frames holding indices into the shared backing slice,
// so no observation data is copied after construction.
type Frame struct {
	obs     []Observation
	indices []int // nil means the whole backing slice
}

// NewFrame wraps a slice of observations. The frame holds a reference to the
// slice; callers must not mutate it afterwards.
func NewFrame(obs []Observation) *Frame {
	return &Frame{obs: obs}
}

func (f *Frame) subFrame(indices []int) *Frame {
	return &Frame{obs: f.obs, indices: indices}
}

// Len returns the number of observations visible through this frame.
func (f *Frame) Len() int {
	if f.indices != nil {
		return len(f.indices)
	}
	return len(f.obs)
}

func (f *Frame) at(i int) *Observation {
	if f.indices != nil {
		return &f.obs[f.indices[i]]
	}
	return &f.obs[i]
}

// Year returns the year of the i-th observation.
func (f *Frame) Year(i int) int {
	return f.at(i).Year
}

// Dim returns a dimension value of the i-th observation. The virtual
// dimension "year" resolves to the formatted year.
func (f *Frame) Dim(i int, key string) string {
	if key == DimYear {
		return strconv.Itoa(f.at(i).Year)
	}
	return f.at(i).Dims[key]
}

// Value returns a named value of the i-th observation, or 0 when absent.
func (f *Frame) Value(i int, key string) float64 {
	return f.at(i).Values[key]
}

// DimYear is the virtual dimension name resolving to an observation's year.
const DimYear = "year"

// Years returns the distinct years in the frame in ascending order.
func (f *Frame) Years() []int {
	seen := make(map[int]bool)
	var years []int
	for i := 0; i < f.Len(); i++ {
		y := f.Year(i)
		if !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	sort.Ints(years)
	return years
}

// DimValues returns the distinct values of a dimension in first-seen order.
func (f *Frame) DimValues(key string) []string {
	seen := make(map[string]bool)
	var values []string
	for i := 0; i < f.Len(); i++ {
		v := f.Dim(i, key)
		if v != "" && !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	return values
}

// LatestYear returns the largest year in the frame, or 0 for an empty frame.
func (f *Frame) LatestYear() int {
	latest := 0
	for i := 0; i < f.Len(); i++ {
		if y := f.Year(i); y > latest {
			latest = y
		}
	}
	return latest
}

// EarliestYear returns the smallest year in the frame, or 0 for an empty frame.
func (f *Frame) EarliestYear() int {
	if f.Len() == 0 {
		return 0
	}
	earliest := f.Year(0)
	for i := 1; i < f.Len(); i++ {
		if y := f.Year(i); y < earliest {
			earliest = y
		}
	}
	return earliest
}
