package analytics

import (
	"math"
	"sort"
	"strconv"
)

// YearValue is one point of a year-ordered series.
type YearValue struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// SeriesByYear aggregates a named value per year and returns the points in
// ascending year order.
func (f *Frame) SeriesByYear(value string, agg Agg) []YearValue {
	byYear := f.GroupBy(DimYear)
	series := make([]YearValue, 0, len(byYear))
	for _, g := range byYear {
		year, err := strconv.Atoi(g.Key)
		if err != nil {
			continue
		}
		series = append(series, YearValue{Year: year, Value: g.Frame.Aggregate(value, agg)})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Year < series[j].Year })
	return series
}

// GroupedSeriesByYear produces one year-ordered series per dimension value.
func (f *Frame) GroupedSeriesByYear(dim, value string, agg Agg) []ChartSeries {
	groups := f.GroupBy(dim)
	out := make([]ChartSeries, 0, len(groups))
	for _, g := range groups {
		series := ChartSeries{Name: g.Label}
		for _, yv := range g.Frame.SeriesByYear(value, agg) {
			series.Data = append(series.Data, ChartPoint{
				Label: strconv.Itoa(yv.Year),
				Value: yv.Value,
			})
		}
		out = append(out, series)
	}
	return out
}

// Change describes how a series moved between its first and last points.
type Change struct {
	First     YearValue `json:"first"`
	Last      YearValue `json:"last"`
	Absolute  float64   `json:"absolute"`
	Percent   float64   `json:"percent"`
	Direction string    `json:"direction"`
}

// ChangeOverSeries summarizes the move from the first to the last point of a
// year-ordered series.
func ChangeOverSeries(series []YearValue) Change {
	if len(series) < 2 {
		var c Change
		if len(series) == 1 {
			c.First = series[0]
			c.Last = series[0]
		}
		c.Direction = "unchanged"
		return c
	}

	first := series[0]
	last := series[len(series)-1]
	c := Change{
		First:    first,
		Last:     last,
		Absolute: last.Value - first.Value,
	}
	if first.Value != 0 {
		c.Percent = (last.Value - first.Value) / math.Abs(first.Value) * 100
	}
	switch {
	case c.Absolute > 0:
		c.Direction = "increased"
	case c.Absolute < 0:
		c.Direction = "decreased"
	default:
		c.Direction = "unchanged"
	}
	return c
}

// CAGR returns the compound annual growth rate, in percent, between the
// first and last points of a year-ordered series. Returns 0 when the span
// is empty or the first value is not positive.
func CAGR(series []YearValue) float64 {
	if len(series) < 2 {
		return 0
	}
	first := series[0]
	last := series[len(series)-1]
	years := last.Year - first.Year
	if years <= 0 || first.Value <= 0 || last.Value <= 0 {
		return 0
	}
	return (math.Pow(last.Value/first.Value, 1/float64(years)) - 1) * 100
}
