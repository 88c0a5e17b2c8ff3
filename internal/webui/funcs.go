package webui

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strconv"

	"github.com/Terry84/sdg2-dashboard/internal/analytics"
	"github.com/Terry84/sdg2-dashboard/internal/models"
)

var templateFuncs = template.FuncMap{
	"heatCell":  heatCell,
	"cellValue": cellValue,
	"chartJSON": chartJSON,
	"fmtPct":    fmtPct,
	"fmtYear":   strconv.Itoa,
	"seq":       seq,
}

// seq returns the inclusive range of years for the filter dropdowns.
func seq(first, last int) []int {
	if last < first {
		return nil
	}
	years := make([]int, 0, last-first+1)
	for year := first; year <= last; year++ {
		years = append(years, year)
	}
	return years
}

// heatCell returns the inline style for one heatmap cell; cells without an
// observation stay neutral.
func heatCell(heat models.HeatmapData, row, col int) template.CSS {
	m := heat.Matrix
	if row >= len(m.Has) || col >= len(m.Has[row]) || !m.Has[row][col] {
		return "background-color: #f4f4f4"
	}
	return heatStyle(m.Cells[row][col], heat.Min, heat.Max)
}

// heatStyle returns an inline background style interpolated between green
// (low) and red (high). Prevalence rates read this way: more is worse.
func heatStyle(v, min, max float64) template.CSS {
	t := analytics.ScaleToScore(v, min, max) / 100

	lerp := func(a, b int) int { return a + int(t*float64(b-a)) }
	r := lerp(0x2e, 0xc6)
	g := lerp(0x7d, 0x28)
	b := lerp(0x32, 0x28)

	return template.CSS(fmt.Sprintf("background-color: rgb(%d, %d, %d)", r, g, b))
}

// cellValue formats one heatmap cell, or a dash when no observation exists.
func cellValue(m analytics.Matrix, row, col int) string {
	if row >= len(m.Has) || col >= len(m.Has[row]) || !m.Has[row][col] {
		return "–"
	}
	return strconv.FormatFloat(m.Cells[row][col], 'f', 1, 64)
}

// chartJSON serializes a chart definition for the client-side radar script.
func chartJSON(config analytics.ChartConfig) (template.JS, error) {
	raw, err := json.Marshal(config)
	if err != nil {
		return "", err
	}
	return template.JS(raw), nil // nolint:gosec // marshaled from our own structs
}

func fmtPct(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}
