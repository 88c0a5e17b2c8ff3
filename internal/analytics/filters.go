package analytics

import "strings"

// Filters selects observations by dimension values and year bounds. Values
// within a dimension are OR-combined; dimensions are AND-combined; matching
// is case-insensitive. Zero bounds leave the year range open.
type Filters struct {
	Dims     map[string][]string
	FromYear int
	ToYear   int
	Years    []int
}

// HasDim reports whether a dimension filter is set.
func (fl Filters) HasDim(key string) bool {
	if fl.Dims == nil {
		return false
	}
	vals, ok := fl.Dims[key]
	return ok && len(vals) > 0
}

// IsEmpty reports whether the filters impose no restriction.
func (fl Filters) IsEmpty() bool {
	if fl.FromYear != 0 || fl.ToYear != 0 || len(fl.Years) > 0 {
		return false
	}
	for _, vals := range fl.Dims {
		if len(vals) > 0 {
			return false
		}
	}
	return true
}

// Filter returns a sub-frame of observations matching all filters in a
// single pass over the frame.
func (f *Frame) Filter(fl Filters) *Frame {
	if fl.IsEmpty() {
		return f
	}

	sets := make(map[string]map[string]bool)
	for dim, allowed := range fl.Dims {
		if len(allowed) > 0 {
			sets[dim] = toLowerSet(allowed)
		}
	}

	var yearSet map[int]bool
	if len(fl.Years) > 0 {
		yearSet = make(map[int]bool, len(fl.Years))
		for _, y := range fl.Years {
			yearSet[y] = true
		}
	}

	n := f.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		y := f.Year(i)
		if fl.FromYear != 0 && y < fl.FromYear {
			continue
		}
		if fl.ToYear != 0 && y > fl.ToYear {
			continue
		}
		if yearSet != nil && !yearSet[y] {
			continue
		}

		pass := true
		for dim, set := range sets {
			if !set[strings.ToLower(f.Dim(i, dim))] {
				pass = false
				break
			}
		}
		if !pass {
			continue
		}

		if f.indices != nil {
			indices = append(indices, f.indices[i])
		} else {
			indices = append(indices, i)
		}
	}

	return f.subFrame(indices)
}

func toLowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = true
	}
	return set
}
