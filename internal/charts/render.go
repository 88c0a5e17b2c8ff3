package charts

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Terry84/sdg2-dashboard/internal/analytics"
)

const (
	chartWidth  = 900
	chartHeight = 450
	pieWidth    = 640
	pieHeight   = 480
)

// RenderPNG rasterizes a chart config. Radar configs are drawn client-side
// and cannot be rendered here.
func RenderPNG(config analytics.ChartConfig) ([]byte, error) {
	switch config.ChartType {
	case analytics.ChartLine, analytics.ChartArea, analytics.ChartScatter:
		return renderXY(config)
	case analytics.ChartBar:
		return renderBar(config)
	case analytics.ChartStackedBar:
		return renderStackedBar(config)
	case analytics.ChartPie, analytics.ChartDonut:
		return renderPie(config)
	default:
		return nil, fmt.Errorf("chart type %q cannot be rendered as PNG", config.ChartType)
	}
}

func renderXY(config analytics.ChartConfig) ([]byte, error) {
	var series []chart.Series
	minY, maxY := math.Inf(1), math.Inf(-1)

	for i, s := range config.Series {
		if len(s.Data) == 0 {
			continue
		}
		xs := make([]float64, 0, len(s.Data))
		ys := make([]float64, 0, len(s.Data))
		for j, p := range s.Data {
			xs = append(xs, pointX(p, j))
			ys = append(ys, p.Value)
			minY = math.Min(minY, p.Value)
			maxY = math.Max(maxY, p.Value)
		}
		// A lone point cannot span an axis; extend it into a flat segment.
		if len(xs) == 1 {
			xs = append(xs, xs[0]+1)
			ys = append(ys, ys[0])
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style:   xyStyle(config.ChartType, pickColor(config, i, s)),
		})
	}
	if len(series) == 0 {
		return renderPlaceholder(config)
	}

	lo, hi := niceAxisBounds(minY, maxY)
	graph := chart.Chart{
		Title:      config.Title,
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 28, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           config.XAxis,
			ValueFormatter: axisValue,
		},
		YAxis: chart.YAxis{
			Name:  config.YAxis,
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
			Ticks: niceTicks(lo, hi, 6),
		},
		Series: series,
	}
	if config.ShowLegend {
		graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("error rendering %s chart: %w", config.ChartType, err)
	}
	return buf.Bytes(), nil
}

func renderBar(config analytics.ChartConfig) ([]byte, error) {
	if len(config.Series) == 0 || len(config.Series[0].Data) == 0 {
		return renderPlaceholder(config)
	}
	s := config.Series[0]

	bars := make([]chart.Value, 0, len(s.Data))
	minY, maxY := 0.0, 0.0
	for i, p := range s.Data {
		color := sliceColor(config, i)
		if color.IsZero() {
			color = pickColor(config, 0, s)
		}
		bars = append(bars, chart.Value{
			Label: p.Label,
			Value: p.Value,
			Style: chart.Style{FillColor: color, StrokeWidth: 0},
		})
		minY = math.Min(minY, p.Value)
		maxY = math.Max(maxY, p.Value)
	}

	lo, hi := niceAxisBounds(minY, maxY)
	if minY >= 0 {
		lo = 0
	}
	graph := chart.BarChart{
		Title:        config.Title,
		Width:        chartWidth,
		Height:       chartHeight,
		BarWidth:     barWidth(len(bars)),
		Background:   chart.Style{Padding: chart.Box{Top: 28, Left: 16, Right: 16, Bottom: 16}},
		UseBaseValue: true,
		BaseValue:    0,
		YAxis: chart.YAxis{
			Name:  config.YAxis,
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
			Ticks: niceTicks(lo, hi, 6),
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("error rendering bar chart: %w", err)
	}
	return buf.Bytes(), nil
}

func renderStackedBar(config analytics.ChartConfig) ([]byte, error) {
	bars := stackBars(config)
	if len(bars) == 0 {
		return renderPlaceholder(config)
	}

	graph := chart.StackedBarChart{
		Title:      config.Title,
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 28, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.Style{},
		YAxis:      chart.Style{},
		Bars:       bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("error rendering stacked bar chart: %w", err)
	}
	return buf.Bytes(), nil
}

// stackBars regroups per-series points into one stacked bar per label. Every
// series is expected to carry the same labels in the same order.
func stackBars(config analytics.ChartConfig) []chart.StackedBar {
	if len(config.Series) == 0 {
		return nil
	}
	var bars []chart.StackedBar
	for i, p := range config.Series[0].Data {
		bar := chart.StackedBar{Name: p.Label}
		for j, s := range config.Series {
			if i >= len(s.Data) {
				continue
			}
			bar.Values = append(bar.Values, chart.Value{
				Label: s.Name,
				Value: s.Data[i].Value,
				Style: chart.Style{FillColor: pickColor(config, j, s), StrokeWidth: 0},
			})
		}
		bars = append(bars, bar)
	}
	return bars
}

func renderPie(config analytics.ChartConfig) ([]byte, error) {
	if len(config.Series) == 0 {
		return renderPlaceholder(config)
	}

	values := make([]chart.Value, 0, len(config.Series[0].Data))
	for i, p := range config.Series[0].Data {
		if p.Value <= 0 {
			continue
		}
		color := sliceColor(config, i)
		if color.IsZero() {
			color = chart.GetDefaultColor(i)
		}
		values = append(values, chart.Value{
			Label: p.Label,
			Value: p.Value,
			Style: chart.Style{FillColor: color, StrokeWidth: 1, StrokeColor: drawing.ColorWhite, FontColor: drawing.ColorBlack},
		})
	}
	if len(values) == 0 {
		return renderPlaceholder(config)
	}

	var buf bytes.Buffer
	var err error
	if config.ChartType == analytics.ChartDonut {
		graph := chart.DonutChart{
			Title:  config.Title,
			Width:  pieWidth,
			Height: pieHeight,
			Values: values,
		}
		err = graph.Render(chart.PNG, &buf)
	} else {
		graph := chart.PieChart{
			Title:  config.Title,
			Width:  pieWidth,
			Height: pieHeight,
			Values: values,
		}
		err = graph.Render(chart.PNG, &buf)
	}
	if err != nil {
		return nil, fmt.Errorf("error rendering %s chart: %w", config.ChartType, err)
	}
	return buf.Bytes(), nil
}

// renderPlaceholder draws an empty frame with the chart's title so missing
// data yields an image instead of a broken link.
func renderPlaceholder(config analytics.ChartConfig) ([]byte, error) {
	graph := chart.Chart{
		Title:  config.Title,
		Width:  chartWidth,
		Height: chartHeight,
		XAxis:  chart.XAxis{Style: chart.Hidden()},
		YAxis: chart.YAxis{
			Style: chart.Hidden(),
			Range: &chart.ContinuousRange{Min: -1, Max: 1},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: []float64{0, 1},
				YValues: []float64{0, 0},
				Style:   chart.Style{StrokeWidth: chart.Disabled, DotWidth: chart.Disabled},
			},
			chart.AnnotationSeries{
				Annotations: []chart.Value2{{XValue: 0.5, YValue: 0, Label: "No data available"}},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("error rendering placeholder chart: %w", err)
	}
	return buf.Bytes(), nil
}

// pointX picks a point's X position: an explicit X when set, the label when
// numeric (years), the point's index otherwise.
func pointX(p analytics.ChartPoint, index int) float64 {
	if p.X != 0 {
		return p.X
	}
	if v, err := strconv.ParseFloat(p.Label, 64); err == nil {
		return v
	}
	return float64(index)
}

func xyStyle(chartType string, color drawing.Color) chart.Style {
	switch chartType {
	case analytics.ChartArea:
		return chart.Style{
			StrokeWidth: 2,
			StrokeColor: color,
			FillColor:   color.WithAlpha(64),
		}
	case analytics.ChartScatter:
		return chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    6,
			DotColor:    color,
		}
	default:
		return chart.Style{
			StrokeWidth: 2.5,
			StrokeColor: color,
			DotWidth:    4,
			DotColor:    color,
		}
	}
}

// pickColor resolves a series color: its own, then the config palette, then
// the library default.
func pickColor(config analytics.ChartConfig, index int, s analytics.ChartSeries) drawing.Color {
	if c := parseHex(s.Color); !c.IsZero() {
		return c
	}
	if c := sliceColor(config, index); !c.IsZero() {
		return c
	}
	return chart.GetDefaultColor(index)
}

func sliceColor(config analytics.ChartConfig, index int) drawing.Color {
	if index < len(config.Colors) {
		return parseHex(config.Colors[index])
	}
	return drawing.Color{}
}

func parseHex(hex string) drawing.Color {
	hex = strings.TrimPrefix(hex, "#")
	if hex == "" {
		return drawing.Color{}
	}
	return drawing.ColorFromHex(hex)
}

func barWidth(n int) int {
	if n == 0 {
		return 60
	}
	w := (chartWidth - 150) / n
	if w > 120 {
		w = 120
	}
	if w < 24 {
		w = 24
	}
	return w
}
