package dashboard

import (
	"fmt"
	"strconv"

	"github.com/Terry84/sdg2-dashboard/internal/analytics"
	"github.com/Terry84/sdg2-dashboard/internal/models"
	"github.com/Terry84/sdg2-dashboard/internal/sdg"
)

// 2015 world averages the headline metrics measure progress against, in
// percent of population (undernourishment) and of children under five
// (stunting).
const (
	undernourishmentBaseline = 12.5
	stuntingBaseline         = 25.0
)

// sdgTargets lists the five SDG 2 targets with their estimated progress.
var sdgTargets = []models.TargetProgress{
	{Target: "End hunger and ensure access to safe, nutritious food", Percent: 65},
	{Target: "End all forms of malnutrition", Percent: 58},
	{Target: "Double agricultural productivity of small-scale farmers", Percent: 72},
	{Target: "Ensure sustainable food production systems", Percent: 45},
	{Target: "Maintain genetic diversity of crops and livestock", Percent: 67},
}

// BuildOverview assembles the headline metric cards, the global
// undernourishment trend, SDG 2 target progress, and the latest-year
// regional share pie.
func BuildOverview(manager *sdg.Manager) models.OverviewData {
	under := manager.UndernourishmentFrame()
	latestYear := under.LatestYear()

	trend := under.SeriesByYear(sdg.ValRate, analytics.AggMean)
	shares := under.Filter(yearFilter(latestYear)).
		GroupAndAggregate(sdg.DimRegion, sdg.ValRate, analytics.AggMean, "value_desc", 0)
	sharePoints := groupPoints(shares)

	return models.OverviewData{
		Metrics: buildOverviewMetrics(manager),
		Trend: analytics.ChartConfig{
			ChartType: analytics.ChartLine,
			Title:     "Global Average Undernourishment Rate",
			XAxis:     "Year",
			YAxis:     "Undernourishment Rate (%)",
			Series:    []analytics.ChartSeries{yearTrendSeries("Global average", trend, palette[0])},
		},
		TargetProgress: sdgTargets,
		RegionalShare: analytics.ChartConfig{
			ChartType:  analytics.ChartPie,
			Title:      fmt.Sprintf("Undernourishment by Region (%d)", latestYear),
			Series:     []analytics.ChartSeries{{Name: "Share of undernourishment", Data: sharePoints}},
			Colors:     paletteColors(len(sharePoints)),
			ShowLegend: true,
		},
	}
}

func buildOverviewMetrics(manager *sdg.Manager) []models.MetricCard {
	under := manager.UndernourishmentFrame()
	production := manager.ProductionFrame()
	nutrition := manager.NutritionFrame()

	underRate := under.Filter(yearFilter(under.LatestYear())).Mean(sdg.ValRate)
	underDelta := underRate - undernourishmentBaseline

	totalProduction := production.Filter(yearFilter(production.LatestYear())).Sum(sdg.ValTonnes)
	productionChange := analytics.ChangeOverSeries(production.SeriesByYear(sdg.ValTonnes, analytics.AggSum))

	crisisCount := countCrisisCountries(manager.SecurityFrame())

	stuntingRate := nutrition.Filter(analytics.Filters{
		Dims:  map[string][]string{sdg.DimIndicator: {sdg.IndicatorStunting}},
		Years: []int{nutrition.LatestYear()},
	}).Mean(sdg.ValRate)
	stuntingDelta := stuntingRate - stuntingBaseline

	return []models.MetricCard{
		{
			Label:     "Global Undernourishment Rate",
			Value:     analytics.FormatPercent(underRate),
			Delta:     fmt.Sprintf("%+.1f%% vs 2015 baseline", underDelta),
			DeltaGood: underDelta < 0,
		},
		{
			Label:     "Total Food Production",
			Value:     analytics.FormatMillions(totalProduction) + " tonnes",
			Delta:     productionTrendLabel(productionChange.Direction),
			DeltaGood: productionChange.Direction == "increased",
		},
		{
			Label:     "Countries in Crisis",
			Value:     strconv.Itoa(crisisCount),
			Delta:     crisisLabel(crisisCount),
			DeltaGood: crisisCount == 0,
		},
		{
			Label:     "Global Stunting Rate",
			Value:     analytics.FormatPercent(stuntingRate),
			Delta:     fmt.Sprintf("%+.1f%% vs 2015 baseline", stuntingDelta),
			DeltaGood: stuntingDelta < 0,
		},
	}
}

// countCrisisCountries counts latest-year assessments at crisis level or
// above.
func countCrisisCountries(security *analytics.Frame) int {
	latest := security.Filter(yearFilter(security.LatestYear()))
	count := 0
	for i := 0; i < latest.Len(); i++ {
		if latest.Value(i, sdg.ValLevel) >= sdg.LevelCrisis {
			count++
		}
	}
	return count
}

func productionTrendLabel(direction string) string {
	switch direction {
	case "increased":
		return "Growing"
	case "decreased":
		return "Declining"
	default:
		return "Flat"
	}
}

func crisisLabel(count int) string {
	if count == 0 {
		return "All below crisis level"
	}
	return "Needs attention"
}
