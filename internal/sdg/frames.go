package sdg

import "github.com/Terry84/sdg2-dashboard/internal/analytics"

// Dimension and value names used when indicator families are viewed as
// analytics frames.
const (
	DimRegion    = "region"
	DimCountry   = "country"
	DimCrop      = "crop"
	DimIndicator = "indicator"

	ValRate       = "rate"
	ValTonnes     = "tonnes"
	ValLevel      = "level"
	ValPopulation = "population"
)

// UndernourishmentFrame converts the undernourishment family into an
// analytics frame.
func (d *Dataset) UndernourishmentFrame() *analytics.Frame {
	obs := make([]analytics.Observation, len(d.Undernourishment))
	for i, r := range d.Undernourishment {
		obs[i] = analytics.Observation{
			Year:   r.Year,
			Dims:   map[string]string{DimRegion: r.Region},
			Values: map[string]float64{ValRate: r.Rate},
		}
	}
	return analytics.NewFrame(obs)
}

// ProductionFrame converts the food production family into an analytics frame.
func (d *Dataset) ProductionFrame() *analytics.Frame {
	obs := make([]analytics.Observation, len(d.Production))
	for i, p := range d.Production {
		obs[i] = analytics.Observation{
			Year:   p.Year,
			Dims:   map[string]string{DimCrop: p.Crop},
			Values: map[string]float64{ValTonnes: p.Tonnes},
		}
	}
	return analytics.NewFrame(obs)
}

// SecurityFrame converts the food security family into an analytics frame.
// Each observation carries both the level and the affected population.
func (d *Dataset) SecurityFrame() *analytics.Frame {
	obs := make([]analytics.Observation, len(d.Security))
	for i, s := range d.Security {
		obs[i] = analytics.Observation{
			Year: s.Year,
			Dims: map[string]string{
				DimCountry: s.Country,
				DimRegion:  s.Region,
			},
			Values: map[string]float64{
				ValLevel:      s.Level,
				ValPopulation: s.PopulationAffected,
			},
		}
	}
	return analytics.NewFrame(obs)
}

// NutritionFrame converts the nutrition family into an analytics frame.
func (d *Dataset) NutritionFrame() *analytics.Frame {
	obs := make([]analytics.Observation, len(d.Nutrition))
	for i, n := range d.Nutrition {
		obs[i] = analytics.Observation{
			Year: n.Year,
			Dims: map[string]string{
				DimRegion:    n.Region,
				DimIndicator: n.Indicator,
			},
			Values: map[string]float64{ValRate: n.Rate},
		}
	}
	return analytics.NewFrame(obs)
}
