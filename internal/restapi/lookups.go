package restapi

import (
	"github.com/Terry84/sdg2-dashboard/internal/models"
)

func containsValue(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func (api *RestAPI) knownRegion(region string) bool {
	return containsValue(api.Manager.Regions(), region)
}

func (api *RestAPI) knownCountry(country string) bool {
	return containsValue(api.Manager.Countries(), country)
}

func (api *RestAPI) knownCrop(crop string) bool {
	return containsValue(api.Manager.Crops(), crop)
}

func (api *RestAPI) knownIndicator(indicator string) bool {
	return containsValue(api.Manager.NutritionIndicators(), indicator)
}

// dimensionReferences lists every dimension value so clients can resolve
// filters without extra requests.
func (api *RestAPI) dimensionReferences() models.ReferencesModel {
	return models.ReferencesModel{
		Regions:    api.Manager.Regions(),
		Countries:  api.Manager.Countries(),
		Crops:      api.Manager.Crops(),
		Indicators: api.Manager.NutritionIndicators(),
	}
}
