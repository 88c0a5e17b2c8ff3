package restapi

import (
	"net/http"

	"github.com/Terry84/sdg2-dashboard/internal/dashboard"
	"github.com/Terry84/sdg2-dashboard/internal/models"
	"github.com/Terry84/sdg2-dashboard/internal/utils"
)

func (api *RestAPI) regionalComparisonHandler(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()

	year, fieldErrors := utils.ParseYearParam(queryParams, "year", nil)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	if err := utils.ValidateQuery(queryParams.Get("regions")); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"regions": {`Invalid field value for field "regions".`},
		})
		return
	}

	regions := utils.ParseListParam(queryParams, "regions")
	for _, region := range regions {
		if err := utils.ValidateName(region); err != nil {
			api.validationErrorResponse(w, r, map[string][]string{
				"regions": {`Invalid field value for field "regions".`},
			})
			return
		}
		if !api.knownRegion(region) {
			api.sendNotFound(w, r)
			return
		}
	}

	data := dashboard.BuildRegionalComparison(api.Manager, year, regions)
	response := models.NewEntryResponse(data, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
