// Package dashboard assembles the chart, table, and metric payloads behind
// the dashboard pages. Builders read the manager's indicator frames (and the
// row store for detail listings) and return render-ready models shared by
// the JSON API, the PNG chart renderer, and the web UI.
package dashboard

import (
	"strconv"

	"github.com/Terry84/sdg2-dashboard/internal/analytics"
	"github.com/Terry84/sdg2-dashboard/internal/sdg"
)

// palette drives multi-series charts. Greens lead so the primary series
// carries the Zero Hunger brand color.
var palette = []string{
	"#2E7D32", "#66BB6A", "#FFA726", "#42A5F5", "#FF6B6B",
	"#AB47BC", "#26A69A", "#8D6E63", "#FFCA28", "#EC407A",
}

// indicatorColors keeps each nutrition indicator recognizable across charts.
var indicatorColors = map[string]string{
	sdg.IndicatorStunting:   "#FF6B6B",
	sdg.IndicatorWasting:    "#FFA726",
	sdg.IndicatorOverweight: "#42A5F5",
}

// levelColors maps security level names to severity colors.
var levelColors = map[string]string{
	"Minimal":   "#4CAF50",
	"Stressed":  "#FFC107",
	"Crisis":    "#FF9800",
	"Emergency": "#F44336",
}

func seriesColor(i int) string {
	return palette[i%len(palette)]
}

func paletteColors(n int) []string {
	colors := make([]string, n)
	for i := range colors {
		colors[i] = seriesColor(i)
	}
	return colors
}

// colorSeries assigns palette colors to series that do not already carry one.
func colorSeries(series []analytics.ChartSeries) []analytics.ChartSeries {
	for i := range series {
		if series[i].Color == "" {
			series[i].Color = seriesColor(i)
		}
	}
	return series
}

// yearTrendSeries converts a year-ordered series into a named chart series.
func yearTrendSeries(name string, points []analytics.YearValue, color string) analytics.ChartSeries {
	series := analytics.ChartSeries{Name: name, Color: color}
	for _, yv := range points {
		series.Data = append(series.Data, analytics.ChartPoint{
			Label: strconv.Itoa(yv.Year),
			Value: analytics.RoundTo(yv.Value, 2),
		})
	}
	return series
}

// groupPoints converts aggregated groups into labeled chart points.
func groupPoints(groups []analytics.Group) []analytics.ChartPoint {
	points := make([]analytics.ChartPoint, 0, len(groups))
	for _, g := range groups {
		points = append(points, analytics.ChartPoint{
			Label: g.Label,
			Value: analytics.RoundTo(g.Value, 2),
		})
	}
	return points
}

func yearFilter(year int) analytics.Filters {
	return analytics.Filters{Years: []int{year}}
}

func regionFilter(region string) analytics.Filters {
	return analytics.Filters{Dims: map[string][]string{sdg.DimRegion: {region}}}
}
