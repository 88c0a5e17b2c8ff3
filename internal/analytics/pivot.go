package analytics

import (
	"math"
	"sort"
)

// Matrix is a pivoted aggregation: one cell per row label and column label
// pair. Has marks which cells had at least one observation.
type Matrix struct {
	RowLabels []string    `json:"rowLabels"`
	ColLabels []string    `json:"colLabels"`
	Cells     [][]float64 `json:"cells"`
	Has       [][]bool    `json:"has"`
}

// Pivot aggregates a named value into a rowDim by colDim matrix. Row and
// column labels appear in first-seen order; the virtual dimension "year"
// yields ascending year columns. Cells without observations are 0 with
// Has false.
func (f *Frame) Pivot(rowDim, colDim, value string, agg Agg) Matrix {
	rows := f.DimValues(rowDim)
	var cols []string
	if colDim == DimYear {
		for _, g := range f.GroupBy(DimYear) {
			cols = append(cols, g.Key)
		}
		sortYearLabels(cols)
	} else {
		cols = f.DimValues(colDim)
	}

	rowIdx := indexOf(rows)
	colIdx := indexOf(cols)

	cells := make([][]*Frame, len(rows))
	for i := range cells {
		cells[i] = make([]*Frame, len(cols))
	}

	for _, rg := range f.GroupBy(rowDim) {
		ri, ok := rowIdx[rg.Key]
		if !ok {
			continue
		}
		for _, cg := range rg.Frame.GroupBy(colDim) {
			if ci, ok := colIdx[cg.Key]; ok {
				cells[ri][ci] = cg.Frame
			}
		}
	}

	m := Matrix{
		RowLabels: rows,
		ColLabels: cols,
		Cells:     make([][]float64, len(rows)),
		Has:       make([][]bool, len(rows)),
	}
	for i := range rows {
		m.Cells[i] = make([]float64, len(cols))
		m.Has[i] = make([]bool, len(cols))
		for j := range cols {
			if cells[i][j] != nil && cells[i][j].Len() > 0 {
				m.Cells[i][j] = cells[i][j].Aggregate(value, agg)
				m.Has[i][j] = true
			}
		}
	}
	return m
}

// MinMax returns the smallest and largest populated cell values. An empty
// matrix yields (0, 0).
func (m Matrix) MinMax() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	found := false
	for i := range m.Cells {
		for j := range m.Cells[i] {
			if !m.Has[i][j] {
				continue
			}
			v := m.Cells[i][j]
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
			found = true
		}
	}
	if !found {
		return 0, 0
	}
	return lo, hi
}

func indexOf(labels []string) map[string]int {
	idx := make(map[string]int, len(labels))
	for i, l := range labels {
		idx[l] = i
	}
	return idx
}

// Year labels are fixed-width digits, so lexicographic order matches
// numeric order.
func sortYearLabels(labels []string) {
	sort.Strings(labels)
}
