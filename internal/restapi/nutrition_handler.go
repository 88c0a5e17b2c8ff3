package restapi

import (
	"net/http"

	"github.com/Terry84/sdg2-dashboard/internal/dashboard"
	"github.com/Terry84/sdg2-dashboard/internal/models"
	"github.com/Terry84/sdg2-dashboard/internal/utils"
)

func (api *RestAPI) nutritionHandler(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()

	region := queryParams.Get("region")
	if region != "" {
		if err := utils.ValidateName(region); err != nil {
			api.validationErrorResponse(w, r, map[string][]string{
				"region": {`Invalid field value for field "region".`},
			})
			return
		}
		if !api.knownRegion(region) {
			api.sendNotFound(w, r)
			return
		}
	}

	indicator := queryParams.Get("indicator")
	if indicator != "" && !api.knownIndicator(indicator) {
		api.sendNotFound(w, r)
		return
	}

	data := dashboard.BuildNutrition(api.Manager, region, indicator)
	response := models.NewEntryResponse(data, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
