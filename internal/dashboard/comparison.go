package dashboard

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/Terry84/sdg2-dashboard/internal/analytics"
	"github.com/Terry84/sdg2-dashboard/internal/models"
	"github.com/Terry84/sdg2-dashboard/internal/sdg"
)

// radarAxes lists the comparison axes in display order. Every axis is a
// 0-100 score where higher means closer to the Zero Hunger targets.
var radarAxes = []string{"Undernourishment", "Stunting", "Wasting", "Food Security"}

// Linear penalty per percentage point that maps each rate onto the radar's
// score scale. The multipliers spread typical rate ranges so regional
// differences stay visible.
const (
	undernourishmentPenalty = 3
	stuntingPenalty         = 2
	wastingPenalty          = 5
)

// defaultComparisonRegions seed the page before the user picks regions.
var defaultComparisonRegions = []string{"Sub-Saharan Africa", "Asia", "Europe"}

// BuildRegionalComparison assembles the Regional Comparison page. A zero
// year selects the latest; an empty region list falls back to the defaults
// present in the data.
func BuildRegionalComparison(manager *sdg.Manager, year int, regions []string) models.RegionalComparisonData {
	under := manager.UndernourishmentFrame()
	nutrition := manager.NutritionFrame()
	security := manager.SecurityFrame()

	if year == 0 {
		year = under.LatestYear()
	}
	if len(regions) == 0 {
		regions = defaultRegions(manager.Regions())
	}

	yearSecurity := security.Filter(yearFilter(year))
	globalLevel := yearSecurity.Mean(sdg.ValLevel)

	scatterPoints := make([]analytics.ChartPoint, 0, len(regions))
	radarSeries := make([]analytics.ChartSeries, 0, len(regions))
	for i, region := range regions {
		u := rateFor(under, region, year, "", sdg.ValRate)
		s := rateFor(nutrition, region, year, sdg.IndicatorStunting, sdg.ValRate)
		w := rateFor(nutrition, region, year, sdg.IndicatorWasting, sdg.ValRate)
		level := regionSecurityLevel(yearSecurity, region, globalLevel)

		scatterPoints = append(scatterPoints, analytics.ChartPoint{
			Label: region,
			X:     analytics.RoundTo(u, 2),
			Value: analytics.RoundTo(s, 2),
		})

		radarSeries = append(radarSeries, analytics.ChartSeries{
			Name:  region,
			Color: seriesColor(i),
			Data: []analytics.ChartPoint{
				{Label: radarAxes[0], Value: rateScore(u, undernourishmentPenalty)},
				{Label: radarAxes[1], Value: rateScore(s, stuntingPenalty)},
				{Label: radarAxes[2], Value: rateScore(w, wastingPenalty)},
				{Label: radarAxes[3], Value: securityScore(level)},
			},
		})
	}

	return models.RegionalComparisonData{
		Year:    year,
		Regions: regions,
		Scatter: analytics.ChartConfig{
			ChartType: analytics.ChartScatter,
			Title:     fmt.Sprintf("Undernourishment vs Stunting (%d)", year),
			XAxis:     "Undernourishment Rate (%)",
			YAxis:     "Stunting Rate (%)",
			Series: []analytics.ChartSeries{{
				Name:  "Regions",
				Data:  scatterPoints,
				Color: palette[0],
			}},
		},
		Radar: analytics.ChartConfig{
			ChartType:  analytics.ChartRadar,
			Title:      "Regional Performance Comparison (Higher is Better)",
			YAxis:      "Score (0-100)",
			Series:     radarSeries,
			ShowLegend: true,
		},
		Ranking: comparisonRanking(under, nutrition, year),
	}
}

// rateFor returns the mean of a value for one region and year, optionally
// restricted to one nutrition indicator.
func rateFor(frame *analytics.Frame, region string, year int, indicator, value string) float64 {
	dims := map[string][]string{sdg.DimRegion: {region}}
	if indicator != "" {
		dims[sdg.DimIndicator] = []string{indicator}
	}
	return frame.Filter(analytics.Filters{Dims: dims, Years: []int{year}}).Mean(value)
}

// rateScore maps a rate onto the 0-100 scale by deducting penalty points
// per percentage point.
func rateScore(rate float64, penalty float64) float64 {
	return analytics.RoundTo(analytics.Clamp(100-penalty*rate, 0, 100), 1)
}

// securityScore maps the 1-4 level scale onto 0-100 where Minimal scores
// 100 and Emergency 0. A zero level means no assessments and scores a
// neutral 50.
func securityScore(level float64) float64 {
	if level == 0 {
		return 50
	}
	span := float64(sdg.LevelEmergency - sdg.LevelMinimal)
	return analytics.RoundTo(analytics.Clamp((sdg.LevelEmergency-level)/span*100, 0, 100), 1)
}

// regionSecurityLevel is the region's mean assessment level for the year,
// falling back to the global mean for regions with no assessed countries.
func regionSecurityLevel(yearSecurity *analytics.Frame, region string, globalLevel float64) float64 {
	scoped := yearSecurity.Filter(regionFilter(region))
	if scoped.Len() > 0 {
		return scoped.Mean(sdg.ValLevel)
	}
	return globalLevel
}

// defaultRegions picks the canonical comparison set, falling back to the
// first three known regions when none of the defaults are present.
func defaultRegions(available []string) []string {
	have := make(map[string]bool, len(available))
	for _, region := range available {
		have[region] = true
	}
	regions := make([]string, 0, len(defaultComparisonRegions))
	for _, region := range defaultComparisonRegions {
		if have[region] {
			regions = append(regions, region)
		}
	}
	if len(regions) > 0 {
		return regions
	}
	if len(available) > 3 {
		available = available[:3]
	}
	return available
}

// comparisonRanking ranks every region with data for the year by
// undernourishment and stunting rates. The overall score is the mean of the
// two ranks, best (lowest) first.
func comparisonRanking(under, nutrition *analytics.Frame, year int) analytics.TableData {
	underRates := make(map[string]float64)
	for _, g := range under.Filter(yearFilter(year)).GroupBy(sdg.DimRegion) {
		underRates[g.Label] = g.Frame.Mean(sdg.ValRate)
	}

	stuntingRates := make(map[string]float64)
	stuntingScope := nutrition.Filter(analytics.Filters{
		Dims:  map[string][]string{sdg.DimIndicator: {sdg.IndicatorStunting}},
		Years: []int{year},
	})
	for _, g := range stuntingScope.GroupBy(sdg.DimRegion) {
		stuntingRates[g.Label] = g.Frame.Mean(sdg.ValRate)
	}

	underRanks := analytics.RankAscending(underRates)
	stuntingRanks := analytics.RankAscending(stuntingRates)

	type rankedRegion struct {
		region  string
		rate    float64
		uRank   int
		sRank   int
		overall float64
	}
	ranked := make([]rankedRegion, 0, len(underRanks))
	for region, uRank := range underRanks {
		sRank, ok := stuntingRanks[region]
		if !ok {
			continue
		}
		ranked = append(ranked, rankedRegion{
			region:  region,
			rate:    underRates[region],
			uRank:   uRank,
			sRank:   sRank,
			overall: float64(uRank+sRank) / 2,
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].overall != ranked[j].overall {
			return ranked[i].overall < ranked[j].overall
		}
		return ranked[i].region < ranked[j].region
	})

	table := analytics.TableData{
		Title: fmt.Sprintf("Regional Ranking (%d)", year),
		Columns: []analytics.Column{
			{Key: "region", Label: "Region", Type: "text", Align: "left"},
			{Key: "rate", Label: "Undernourishment Rate (%)", Type: "number", Align: "right"},
			{Key: "undernourishmentRank", Label: "Undernourishment Rank", Type: "number", Align: "right"},
			{Key: "stuntingRank", Label: "Stunting Rank", Type: "number", Align: "right"},
			{Key: "overall", Label: "Overall Score", Type: "number", Align: "right"},
		},
	}
	for _, r := range ranked {
		table.Rows = append(table.Rows, []string{
			r.region,
			analytics.FormatNumber(r.rate, 1),
			strconv.Itoa(r.uRank),
			strconv.Itoa(r.sRank),
			analytics.FormatNumber(r.overall, 1),
		})
	}
	return table
}
