package dashboard

import (
	"github.com/Terry84/sdg2-dashboard/internal/models"
	"github.com/Terry84/sdg2-dashboard/internal/sdg"
)

// BuildFilters lists every value the dashboard's filter controls can take.
func BuildFilters(manager *sdg.Manager) models.FiltersData {
	return models.FiltersData{
		Regions:    manager.Regions(),
		Countries:  manager.Countries(),
		Crops:      manager.Crops(),
		Indicators: manager.NutritionIndicators(),
		Years: models.YearSpan{
			First: manager.EarliestYear(),
			Last:  manager.LatestYear(),
		},
		Levels: sdg.SecurityLevelNames(),
	}
}
