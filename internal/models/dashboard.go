package models

import "github.com/Terry84/sdg2-dashboard/internal/analytics"

// MetricCard is one headline number with an optional change line.
type MetricCard struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Delta string `json:"delta,omitempty"`
	// DeltaGood reports whether the change moves toward the SDG target, so
	// the UI can color it independently of its sign.
	DeltaGood bool `json:"deltaGood"`
}

// TargetProgress is one SDG 2 target with its estimated progress percentage.
type TargetProgress struct {
	Target  string  `json:"target"`
	Percent float64 `json:"percent"`
}

// YearSpan is an inclusive year range.
type YearSpan struct {
	First int `json:"first"`
	Last  int `json:"last"`
}

// HeatmapData is a pivot matrix plus the value bounds the UI needs to build
// a color scale.
type HeatmapData struct {
	Title  string           `json:"title"`
	Matrix analytics.Matrix `json:"matrix"`
	Min    float64          `json:"min"`
	Max    float64          `json:"max"`
	Unit   string           `json:"unit,omitempty"`
}

// FiltersData lists every value the dashboard's filter controls can take.
type FiltersData struct {
	Regions    []string `json:"regions"`
	Countries  []string `json:"countries"`
	Crops      []string `json:"crops"`
	Indicators []string `json:"indicators"`
	Years      YearSpan `json:"years"`
	Levels     []string `json:"levels"`
}

// OverviewData backs the Overview page.
type OverviewData struct {
	Metrics        []MetricCard          `json:"metrics"`
	Trend          analytics.ChartConfig `json:"trend"`
	TargetProgress []TargetProgress      `json:"targetProgress"`
	RegionalShare  analytics.ChartConfig `json:"regionalShare"`
}

// UndernourishmentData backs the Hunger & Undernourishment page.
type UndernourishmentData struct {
	Trend     analytics.ChartConfig `json:"trend"`
	LatestBar analytics.ChartConfig `json:"latestBar"`
	Heatmap   HeatmapData           `json:"heatmap"`
	Details   analytics.TableData   `json:"details"`
}

// ProductionData backs the Food Production page.
type ProductionData struct {
	Trend        analytics.ChartConfig `json:"trend"`
	SharePie     analytics.ChartConfig `json:"sharePie"`
	GrowthBar    analytics.ChartConfig `json:"growthBar"`
	Productivity analytics.ChartConfig `json:"productivity"`
}

// FoodSecurityData backs the Food Security page.
type FoodSecurityData struct {
	Scatter      analytics.ChartConfig `json:"scatter"`
	LevelPie     analytics.ChartConfig `json:"levelPie"`
	CountryTrend analytics.ChartConfig `json:"countryTrend"`
	AffectedArea analytics.ChartConfig `json:"affectedArea"`
	CrisisTable  analytics.TableData   `json:"crisisTable"`
}

// NutritionData backs the Nutrition Status page.
type NutritionData struct {
	Trend        analytics.ChartConfig `json:"trend"`
	StuntingBar  analytics.ChartConfig `json:"stuntingBar"`
	IndicatorBar analytics.ChartConfig `json:"indicatorBar"`
	Heatmap      HeatmapData           `json:"heatmap"`
	Progress     analytics.TableData   `json:"progress"`
}

// RegionalComparisonData backs the Regional Comparison page.
type RegionalComparisonData struct {
	Year    int                   `json:"year"`
	Regions []string              `json:"regions"`
	Scatter analytics.ChartConfig `json:"scatter"`
	Radar   analytics.ChartConfig `json:"radar"`
	Ranking analytics.TableData   `json:"ranking"`
}
