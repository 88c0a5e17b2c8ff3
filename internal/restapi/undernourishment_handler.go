package restapi

import (
	"net/http"

	"github.com/Terry84/sdg2-dashboard/internal/dashboard"
	"github.com/Terry84/sdg2-dashboard/internal/models"
	"github.com/Terry84/sdg2-dashboard/internal/utils"
)

func (api *RestAPI) undernourishmentHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	queryParams := r.URL.Query()

	fromYear, fieldErrors := utils.ParseYearParam(queryParams, "from", nil)
	toYear, fieldErrors := utils.ParseYearParam(queryParams, "to", fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

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

	data, err := dashboard.BuildUndernourishment(ctx, api.Manager, region, fromYear, toYear)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	response := models.NewEntryResponse(data, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
