package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// SetRoutes mounts the API and chart routes on the given mux. Chart images
// are exempt from the API key so the web UI can embed them directly; rate
// limiting covers both surfaces.
func (api *RestAPI) SetRoutes(mux *http.ServeMux) {
	router := httprouter.New()

	router.Handler(http.MethodGet, "/api/dashboard/overview.json", validateAPIKey(api, api.overviewHandler))
	router.Handler(http.MethodGet, "/api/dashboard/undernourishment.json", validateAPIKey(api, api.undernourishmentHandler))
	router.Handler(http.MethodGet, "/api/dashboard/production.json", validateAPIKey(api, api.productionHandler))
	router.Handler(http.MethodGet, "/api/dashboard/food-security.json", validateAPIKey(api, api.foodSecurityHandler))
	router.Handler(http.MethodGet, "/api/dashboard/nutrition.json", validateAPIKey(api, api.nutritionHandler))
	router.Handler(http.MethodGet, "/api/dashboard/regional-comparison.json", validateAPIKey(api, api.regionalComparisonHandler))
	router.Handler(http.MethodGet, "/api/dashboard/filters.json", validateAPIKey(api, api.filtersHandler))
	router.Handler(http.MethodGet, "/api/indicators/:family", validateAPIKey(api, api.indicatorsHandler))
	router.Handler(http.MethodGet, "/api/current-time.json", validateAPIKey(api, api.currentTimeHandler))
	router.Handler(http.MethodGet, "/charts/:page/:name", http.HandlerFunc(api.chartHandler))

	handler := http.Handler(router)
	if api.rateLimiter != nil {
		handler = api.rateLimiter(router)
	}

	mux.Handle("/api/", handler)
	mux.Handle("/charts/", handler)
}
