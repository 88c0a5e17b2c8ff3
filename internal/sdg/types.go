// Package sdg owns the Zero Hunger indicator dataset: the four observation
// families, sample data generation, CSV loading, and the manager that serves
// the data to the API layer.
package sdg

import "math"

// UndernourishmentRate is the share of a region's population that is
// undernourished in a given year, in percent.
type UndernourishmentRate struct {
	Region string  `json:"region"`
	Year   int     `json:"year"`
	Rate   float64 `json:"rate"`
}

// CropProduction is a crop's production volume for a year, in million tonnes.
type CropProduction struct {
	Crop   string  `json:"crop"`
	Year   int     `json:"year"`
	Tonnes float64 `json:"tonnes"`
}

// SecurityAssessment is a country's food security assessment for a year.
// Level uses the 1-4 IPC-style scale (1=Minimal, 2=Stressed, 3=Crisis,
// 4=Emergency); PopulationAffected is in millions.
type SecurityAssessment struct {
	Country            string  `json:"country"`
	Region             string  `json:"region"`
	Year               int     `json:"year"`
	Level              float64 `json:"level"`
	PopulationAffected float64 `json:"populationAffected"`
}

// NutritionRate is a child nutrition indicator rate for a region and year,
// in percent of children under five.
type NutritionRate struct {
	Region    string  `json:"region"`
	Indicator string  `json:"indicator"`
	Year      int     `json:"year"`
	Rate      float64 `json:"rate"`
}

// Dataset bundles the four indicator families served by the dashboard.
type Dataset struct {
	Undernourishment []UndernourishmentRate
	Production       []CropProduction
	Security         []SecurityAssessment
	Nutrition        []NutritionRate
}

// IsEmpty reports whether no family has any observations.
func (d *Dataset) IsEmpty() bool {
	return len(d.Undernourishment) == 0 &&
		len(d.Production) == 0 &&
		len(d.Security) == 0 &&
		len(d.Nutrition) == 0
}

// Nutrition indicator names.
const (
	IndicatorStunting   = "Stunting"
	IndicatorWasting    = "Wasting"
	IndicatorOverweight = "Overweight"
)

// Security level boundaries.
const (
	LevelMinimal   = 1
	LevelStressed  = 2
	LevelCrisis    = 3
	LevelEmergency = 4
)

var levelNames = map[int]string{
	LevelMinimal:   "Minimal",
	LevelStressed:  "Stressed",
	LevelCrisis:    "Crisis",
	LevelEmergency: "Emergency",
}

// SecurityLevelName maps a fractional level to the name of its nearest
// integer level on the 1-4 scale.
func SecurityLevelName(level float64) string {
	rounded := int(math.Round(level))
	if rounded < LevelMinimal {
		rounded = LevelMinimal
	}
	if rounded > LevelEmergency {
		rounded = LevelEmergency
	}
	return levelNames[rounded]
}

// SecurityLevelNames returns the level names indexed 1-4.
func SecurityLevelNames() []string {
	return []string{
		levelNames[LevelMinimal],
		levelNames[LevelStressed],
		levelNames[LevelCrisis],
		levelNames[LevelEmergency],
	}
}
