package sdg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSampleDeterministic(t *testing.T) {
	first := GenerateSample(42)
	second := GenerateSample(42)

	assert.Equal(t, first, second, "The same seed must produce the same dataset")

	other := GenerateSample(7)
	assert.NotEqual(t, first, other, "Different seeds should produce different datasets")
}

func TestGenerateSampleShape(t *testing.T) {
	ds := GenerateSample(42)

	years := sampleLastYear - sampleFirstYear + 1

	assert.Len(t, ds.Undernourishment, len(sampleRegions)*years, "One undernourishment row per region and year")
	assert.Len(t, ds.Production, len(sampleCrops)*years, "One production row per crop and year")
	assert.Len(t, ds.Security, len(sampleCountries)*years, "One assessment per country and year")
	assert.Len(t, ds.Nutrition, len(sampleRegions)*len(sampleIndicators)*years, "One nutrition row per region, indicator, and year")

	first := ds.Undernourishment[0]
	assert.Equal(t, "Sub-Saharan Africa", first.Region, "Regions should appear in canonical order")
	assert.Equal(t, sampleFirstYear, first.Year, "Years should start at the first sample year")
}

func TestGenerateSampleBounds(t *testing.T) {
	ds := GenerateSample(42)

	for _, r := range ds.Undernourishment {
		assert.GreaterOrEqual(t, r.Rate, 0.0, "Undernourishment rates never go negative")
	}
	for _, p := range ds.Production {
		assert.Greater(t, p.Tonnes, 0.0, "Production volumes are positive")
	}
	for _, s := range ds.Security {
		assert.GreaterOrEqual(t, s.Level, float64(LevelMinimal), "Levels stay on the 1-4 scale")
		assert.LessOrEqual(t, s.Level, float64(LevelEmergency), "Levels stay on the 1-4 scale")
		assert.GreaterOrEqual(t, s.PopulationAffected, 5.0, "Affected population stays in range")
		assert.Less(t, s.PopulationAffected, 40.0, "Affected population stays in range")
		assert.NotEmpty(t, s.Region, "Every sample country maps to a region")
	}
	for _, n := range ds.Nutrition {
		assert.GreaterOrEqual(t, n.Rate, 0.0, "Nutrition rates never go negative")
	}
}

func TestGenerateSampleTrends(t *testing.T) {
	ds := GenerateSample(42)

	rate := func(region string, year int) float64 {
		for _, r := range ds.Undernourishment {
			if r.Region == region && r.Year == year {
				return r.Rate
			}
		}
		t.Fatalf("no undernourishment row for %s/%d", region, year)
		return 0
	}

	// The downward trend outweighs the noise over the full span.
	assert.Less(t, rate("Sub-Saharan Africa", sampleLastYear), rate("Sub-Saharan Africa", sampleFirstYear),
		"Undernourishment should decline over the sample period")

	nutrition := func(region, indicator string, year int) float64 {
		for _, n := range ds.Nutrition {
			if n.Region == region && n.Indicator == indicator && n.Year == year {
				return n.Rate
			}
		}
		t.Fatalf("no nutrition row for %s/%s/%d", region, indicator, year)
		return 0
	}

	assert.Less(t,
		nutrition("Sub-Saharan Africa", IndicatorStunting, sampleLastYear),
		nutrition("Sub-Saharan Africa", IndicatorStunting, sampleFirstYear),
		"Stunting should decline over the sample period")
	assert.Greater(t,
		nutrition("Oceania", IndicatorOverweight, sampleLastYear),
		nutrition("Oceania", IndicatorOverweight, sampleFirstYear),
		"Overweight should rise over the sample period")
}

func TestGenerateSampleYearCoverage(t *testing.T) {
	ds := GenerateSample(42)

	frame := ds.UndernourishmentFrame()
	years := frame.Years()
	require.Len(t, years, sampleLastYear-sampleFirstYear+1, "Every sample year should be covered")
	assert.Equal(t, sampleFirstYear, years[0], "Coverage starts at the first sample year")
	assert.Equal(t, sampleLastYear, years[len(years)-1], "Coverage ends at the last sample year")
}
