package restapi

import (
	"net/http"

	"github.com/Terry84/sdg2-dashboard/internal/dashboard"
	"github.com/Terry84/sdg2-dashboard/internal/models"
)

func (api *RestAPI) overviewHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if ctx.Err() != nil {
		api.serverErrorResponse(w, r, ctx.Err())
		return
	}

	overview := dashboard.BuildOverview(api.Manager)
	response := models.NewEntryResponse(overview, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
