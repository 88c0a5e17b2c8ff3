package restapi

import (
	"net/http"

	"github.com/Terry84/sdg2-dashboard/internal/dashboard"
	"github.com/Terry84/sdg2-dashboard/internal/models"
	"github.com/Terry84/sdg2-dashboard/internal/utils"
)

func (api *RestAPI) foodSecurityHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	country := r.URL.Query().Get("country")
	if country != "" {
		if err := utils.ValidateName(country); err != nil {
			api.validationErrorResponse(w, r, map[string][]string{
				"country": {`Invalid field value for field "country".`},
			})
			return
		}
		if !api.knownCountry(country) {
			api.sendNotFound(w, r)
			return
		}
	}

	data, err := dashboard.BuildFoodSecurity(ctx, api.Manager, country)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	response := models.NewEntryResponse(data, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
