package restapi

import (
	"net/http"

	"github.com/Terry84/sdg2-dashboard/internal/dashboard"
	"github.com/Terry84/sdg2-dashboard/internal/models"
	"github.com/Terry84/sdg2-dashboard/internal/utils"
)

func (api *RestAPI) productionHandler(w http.ResponseWriter, r *http.Request) {
	crop := r.URL.Query().Get("crop")
	if crop != "" {
		if err := utils.ValidateName(crop); err != nil {
			api.validationErrorResponse(w, r, map[string][]string{
				"crop": {`Invalid field value for field "crop".`},
			})
			return
		}
		if !api.knownCrop(crop) {
			api.sendNotFound(w, r)
			return
		}
	}

	data := dashboard.BuildProduction(api.Manager, crop)
	response := models.NewEntryResponse(data, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
