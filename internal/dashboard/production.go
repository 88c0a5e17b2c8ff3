package dashboard

import (
	"fmt"
	"math"
	"strconv"

	"github.com/Terry84/sdg2-dashboard/internal/analytics"
	"github.com/Terry84/sdg2-dashboard/internal/models"
	"github.com/Terry84/sdg2-dashboard/internal/sdg"
)

// productivityGrowth is the assumed annual efficiency gain behind the
// productivity index series.
const productivityGrowth = 1.03

// BuildProduction assembles the Food Production page, optionally narrowed to
// one crop.
func BuildProduction(manager *sdg.Manager, crop string) models.ProductionData {
	frame := manager.ProductionFrame()
	scoped := frame
	if crop != "" {
		scoped = frame.Filter(analytics.Filters{Dims: map[string][]string{sdg.DimCrop: {crop}}})
	}

	firstYear := scoped.EarliestYear()
	latestYear := scoped.LatestYear()

	trend := colorSeries(scoped.GroupedSeriesByYear(sdg.DimCrop, sdg.ValTonnes, analytics.AggSum))

	shares := scoped.Filter(yearFilter(latestYear)).
		GroupAndAggregate(sdg.DimCrop, sdg.ValTonnes, analytics.AggSum, "value_desc", 0)
	sharePoints := groupPoints(shares)

	return models.ProductionData{
		Trend: analytics.ChartConfig{
			ChartType:  analytics.ChartLine,
			Title:      "Food Production Trends by Crop Type",
			XAxis:      "Year",
			YAxis:      "Production (M tonnes)",
			Series:     trend,
			ShowLegend: true,
		},
		SharePie: analytics.ChartConfig{
			ChartType:  analytics.ChartPie,
			Title:      fmt.Sprintf("Production Share by Crop Type (%d)", latestYear),
			Series:     []analytics.ChartSeries{{Name: "Production share", Data: sharePoints}},
			Colors:     paletteColors(len(sharePoints)),
			ShowLegend: true,
		},
		GrowthBar: analytics.ChartConfig{
			ChartType: analytics.ChartBar,
			Title:     fmt.Sprintf("Annual Growth Rate by Crop (%d-%d)", firstYear, latestYear),
			XAxis:     "Crop",
			YAxis:     "Growth Rate (% per year)",
			Series: []analytics.ChartSeries{{
				Name:  "Annual growth",
				Data:  cropGrowthPoints(scoped),
				Color: "#4CAF50",
			}},
		},
		Productivity: analytics.ChartConfig{
			ChartType: analytics.ChartBar,
			Title:     "Agricultural Productivity Index",
			XAxis:     "Year",
			YAxis:     fmt.Sprintf("Index (%d = 100)", firstYear),
			Series: []analytics.ChartSeries{{
				Name:  "Productivity index",
				Data:  productivityPoints(scoped.Years(), firstYear),
				Color: "#66BB6A",
			}},
		},
	}
}

// cropGrowthPoints computes the compound annual growth rate of each crop's
// production between its first and last observed years.
func cropGrowthPoints(frame *analytics.Frame) []analytics.ChartPoint {
	groups := frame.GroupBy(sdg.DimCrop)
	points := make([]analytics.ChartPoint, 0, len(groups))
	for _, g := range groups {
		rate := analytics.CAGR(g.Frame.SeriesByYear(sdg.ValTonnes, analytics.AggSum))
		points = append(points, analytics.ChartPoint{
			Label: g.Label,
			Value: analytics.RoundTo(rate, 2),
		})
	}
	return points
}

// productivityPoints models productivity as compounding growth from the
// first observed year.
func productivityPoints(years []int, firstYear int) []analytics.ChartPoint {
	points := make([]analytics.ChartPoint, 0, len(years))
	for _, year := range years {
		index := 100 * math.Pow(productivityGrowth, float64(year-firstYear))
		points = append(points, analytics.ChartPoint{
			Label: strconv.Itoa(year),
			Value: analytics.RoundTo(index, 1),
		})
	}
	return points
}
