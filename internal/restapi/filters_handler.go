package restapi

import (
	"net/http"

	"github.com/Terry84/sdg2-dashboard/internal/models"
	"github.com/Terry84/sdg2-dashboard/internal/sdg"
)

// filtersHandler lists every value the dashboard's filter controls can take,
// straight from the row store's distinct-dimension queries.
func (api *RestAPI) filtersHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	queries := api.Manager.Store.Queries

	regions, err := queries.ListRegions(ctx)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	countries, err := queries.ListCountries(ctx)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	crops, err := queries.ListCrops(ctx)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	indicators, err := queries.ListIndicators(ctx)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	years, err := queries.GetYearRange(ctx)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	filters := models.FiltersData{
		Regions:    regions,
		Countries:  countries,
		Crops:      crops,
		Indicators: indicators,
		Years: models.YearSpan{
			First: int(years.First),
			Last:  int(years.Last),
		},
		Levels: sdg.SecurityLevelNames(),
	}

	response := models.NewEntryResponse(filters, models.NewEmptyReferences())
	api.sendResponse(w, r, response)
}
