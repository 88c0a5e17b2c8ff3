package sdg

import (
	"math"
	"math/rand"

	"github.com/Terry84/sdg2-dashboard/internal/analytics"
)

// Canonical dimension values used by the sample generator. Loaded datasets
// carry their own values; these exist so an empty data source still yields a
// fully populated dashboard.
var (
	sampleRegions = []string{
		"Sub-Saharan Africa", "Asia", "Latin America",
		"North America", "Europe", "Oceania",
	}

	sampleCrops = []string{"Cereals", "Fruits", "Vegetables", "Meat", "Dairy", "Fish"}

	sampleCountries = []struct {
		Name   string
		Region string
	}{
		{"Kenya", "Sub-Saharan Africa"},
		{"India", "Asia"},
		{"Brazil", "Latin America"},
		{"Nigeria", "Sub-Saharan Africa"},
		{"Bangladesh", "Asia"},
		{"Ethiopia", "Sub-Saharan Africa"},
		{"Tanzania", "Sub-Saharan Africa"},
		{"Pakistan", "Asia"},
		{"Afghanistan", "Asia"},
		{"Madagascar", "Sub-Saharan Africa"},
	}

	undernourishmentBase = map[string]float64{
		"Sub-Saharan Africa": 25,
		"Asia":               12,
		"Latin America":      8,
		"North America":      3,
		"Europe":             2,
		"Oceania":            4,
	}

	nutritionBase = map[string]map[string]float64{
		IndicatorStunting: {
			"Sub-Saharan Africa": 35, "Asia": 25, "Latin America": 15,
			"North America": 5, "Europe": 3, "Oceania": 8,
		},
		IndicatorWasting: {
			"Sub-Saharan Africa": 8, "Asia": 12, "Latin America": 4,
			"North America": 2, "Europe": 1, "Oceania": 3,
		},
		IndicatorOverweight: {
			"Sub-Saharan Africa": 5, "Asia": 8, "Latin America": 12,
			"North America": 15, "Europe": 13, "Oceania": 18,
		},
	}

	sampleIndicators = []string{IndicatorStunting, IndicatorWasting, IndicatorOverweight}
)

const (
	sampleFirstYear = 2015
	sampleLastYear  = 2023
)

// GenerateSample builds a synthetic dataset covering 2015-2023. The same
// seed always produces the same dataset.
func GenerateSample(seed int64) *Dataset {
	rng := rand.New(rand.NewSource(seed))
	ds := &Dataset{}

	for _, region := range sampleRegions {
		for year := sampleFirstYear; year <= sampleLastYear; year++ {
			trend := -0.5 * float64(year-sampleFirstYear)
			noise := uniform(rng, -1, 1)
			rate := undernourishmentBase[region] + trend + noise
			if rate < 0 {
				rate = 0
			}
			ds.Undernourishment = append(ds.Undernourishment, UndernourishmentRate{
				Region: region,
				Year:   year,
				Rate:   rate,
			})
		}
	}

	for _, crop := range sampleCrops {
		base := uniform(rng, 100, 500)
		for year := sampleFirstYear; year <= sampleLastYear; year++ {
			growth := math.Pow(1.02, float64(year-sampleFirstYear))
			noise := uniform(rng, 0.95, 1.05)
			ds.Production = append(ds.Production, CropProduction{
				Crop:   crop,
				Year:   year,
				Tonnes: base * growth * noise,
			})
		}
	}

	for _, country := range sampleCountries {
		for year := sampleFirstYear; year <= sampleLastYear; year++ {
			base := uniform(rng, 1.5, 3.5)
			trend := -0.05 * float64(year-sampleFirstYear)
			level := analytics.Clamp(base+trend+uniform(rng, -0.2, 0.2), LevelMinimal, LevelEmergency)
			ds.Security = append(ds.Security, SecurityAssessment{
				Country:            country.Name,
				Region:             country.Region,
				Year:               year,
				Level:              level,
				PopulationAffected: uniform(rng, 5, 40),
			})
		}
	}

	for _, region := range sampleRegions {
		for _, indicator := range sampleIndicators {
			trendPerYear := -0.3
			if indicator == IndicatorOverweight {
				trendPerYear = 0.2
			}
			for year := sampleFirstYear; year <= sampleLastYear; year++ {
				trend := trendPerYear * float64(year-sampleFirstYear)
				noise := uniform(rng, -0.5, 0.5)
				rate := nutritionBase[indicator][region] + trend + noise
				if rate < 0 {
					rate = 0
				}
				ds.Nutrition = append(ds.Nutrition, NutritionRate{
					Region:    region,
					Indicator: indicator,
					Year:      year,
					Rate:      rate,
				})
			}
		}
	}

	return ds
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
