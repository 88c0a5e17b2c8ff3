package dashboard

import (
	"fmt"

	"github.com/Terry84/sdg2-dashboard/internal/analytics"
	"github.com/Terry84/sdg2-dashboard/internal/models"
	"github.com/Terry84/sdg2-dashboard/internal/sdg"
)

// BuildNutrition assembles the Nutrition Status page, optionally narrowed to
// a region, an indicator, or both. The stunting bar always shows stunting;
// the other charts follow the indicator selection.
func BuildNutrition(manager *sdg.Manager, region, indicator string) models.NutritionData {
	frame := manager.NutritionFrame()

	regionScope := frame
	if region != "" {
		regionScope = frame.Filter(regionFilter(region))
	}
	scoped := regionScope
	if indicator != "" {
		scoped = regionScope.Filter(analytics.Filters{
			Dims: map[string][]string{sdg.DimIndicator: {indicator}},
		})
	}

	firstYear := scoped.EarliestYear()
	latestYear := scoped.LatestYear()

	trendSeries := scoped.GroupedSeriesByYear(sdg.DimIndicator, sdg.ValRate, analytics.AggMean)
	for i := range trendSeries {
		trendSeries[i].Color = indicatorColors[trendSeries[i].Name]
	}
	trendSeries = colorSeries(trendSeries)
	trendTitle := "Nutrition Indicator Trends"
	if region != "" {
		trendTitle += " - " + region
	}

	stuntingGroups := regionScope.Filter(analytics.Filters{
		Dims:  map[string][]string{sdg.DimIndicator: {sdg.IndicatorStunting}},
		Years: []int{latestYear},
	}).GroupAndAggregate(sdg.DimRegion, sdg.ValRate, analytics.AggMean, "value_desc", 0)

	indicatorGroups := scoped.Filter(yearFilter(latestYear)).
		GroupAndAggregate(sdg.DimIndicator, sdg.ValRate, analytics.AggMean, "", 0)

	matrix := scoped.Filter(yearFilter(latestYear)).
		Pivot(sdg.DimRegion, sdg.DimIndicator, sdg.ValRate, analytics.AggMean)
	min, max := matrix.MinMax()

	return models.NutritionData{
		Trend: analytics.ChartConfig{
			ChartType:  analytics.ChartLine,
			Title:      trendTitle,
			XAxis:      "Year",
			YAxis:      "Rate (%)",
			Series:     trendSeries,
			ShowLegend: true,
		},
		StuntingBar: analytics.ChartConfig{
			ChartType: analytics.ChartBar,
			Title:     fmt.Sprintf("Stunting Rate by Region (%d)", latestYear),
			XAxis:     "Region",
			YAxis:     "Stunting Rate (%)",
			Series: []analytics.ChartSeries{{
				Name:  sdg.IndicatorStunting,
				Data:  groupPoints(stuntingGroups),
				Color: indicatorColors[sdg.IndicatorStunting],
			}},
		},
		IndicatorBar: analytics.ChartConfig{
			ChartType: analytics.ChartBar,
			Title:     fmt.Sprintf("Average Rate by Indicator (%d)", latestYear),
			XAxis:     "Indicator",
			YAxis:     "Rate (%)",
			Series: []analytics.ChartSeries{{
				Name: "Average rate",
				Data: groupPoints(indicatorGroups),
			}},
			Colors: indicatorGroupColors(indicatorGroups),
		},
		Heatmap: models.HeatmapData{
			Title:  fmt.Sprintf("Nutrition Status by Region and Indicator (%d)", latestYear),
			Matrix: matrix,
			Min:    min,
			Max:    max,
			Unit:   "%",
		},
		Progress: nutritionProgress(scoped, firstYear, latestYear),
	}
}

func indicatorGroupColors(groups []analytics.Group) []string {
	colors := make([]string, 0, len(groups))
	for i, g := range groups {
		color, ok := indicatorColors[g.Label]
		if !ok {
			color = seriesColor(i)
		}
		colors = append(colors, color)
	}
	return colors
}

// nutritionProgress summarizes each indicator's movement between the first
// and latest observed years.
func nutritionProgress(frame *analytics.Frame, firstYear, latestYear int) analytics.TableData {
	table := analytics.TableData{
		Title: fmt.Sprintf("Progress Summary (%d-%d)", firstYear, latestYear),
		Columns: []analytics.Column{
			{Key: "indicator", Label: "Indicator", Type: "text", Align: "left"},
			{Key: "first", Label: fmt.Sprintf("%d (%%)", firstYear), Type: "number", Align: "right"},
			{Key: "latest", Label: fmt.Sprintf("%d (%%)", latestYear), Type: "number", Align: "right"},
			{Key: "change", Label: "Change (pp)", Type: "number", Align: "right"},
			{Key: "direction", Label: "Direction", Type: "text", Align: "left"},
			{Key: "target", Label: "Target", Type: "text", Align: "left"},
		},
	}
	for _, g := range frame.GroupBy(sdg.DimIndicator) {
		change := analytics.ChangeOverSeries(g.Frame.SeriesByYear(sdg.ValRate, analytics.AggMean))
		table.Rows = append(table.Rows, []string{
			g.Label,
			analytics.FormatNumber(change.First.Value, 1),
			analytics.FormatNumber(change.Last.Value, 1),
			fmt.Sprintf("%+.1f", change.Absolute),
			progressDirection(change),
			"Decrease",
		})
	}
	return table
}

// progressDirection labels a change. Every nutrition indicator targets a
// lower rate, so a decrease always reads as improvement.
func progressDirection(change analytics.Change) string {
	switch change.Direction {
	case "decreased":
		return "Improving"
	case "increased":
		return "Worsening"
	default:
		return "Unchanged"
	}
}
