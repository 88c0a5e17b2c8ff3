package restapi

import (
	"net/http"
	"time"

	"github.com/Terry84/sdg2-dashboard/internal/models"
)

func (api *RestAPI) currentTimeHandler(w http.ResponseWriter, r *http.Request) {
	currentTime := models.NewCurrentTimeData(time.Now())
	response := models.NewOKResponse(currentTime)
	api.sendResponse(w, r, response)
}
