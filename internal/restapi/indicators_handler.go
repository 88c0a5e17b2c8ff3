package restapi

import (
	"net/http"
	"net/url"

	"github.com/Terry84/sdg2-dashboard/internal/models"
	"github.com/Terry84/sdg2-dashboard/internal/utils"
	"github.com/Terry84/sdg2-dashboard/sdgdb"
)

// indicatorsHandler lists raw indicator rows for one family straight from
// the row store, with optional dimension filters, a year range, and a limit.
func (api *RestAPI) indicatorsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	queryParams := r.URL.Query()

	family := utils.ExtractIDFromParams(r, "family")

	fromYear, fieldErrors := utils.ParseYearParam(queryParams, "from", nil)
	toYear, fieldErrors := utils.ParseYearParam(queryParams, "to", fieldErrors)
	limit, fieldErrors := utils.ParseLimitParam(queryParams, "limit", fieldErrors)
	fieldErrors = validateDimensionParams(queryParams, fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	queries := api.Manager.Store.Queries

	var list interface{}
	var err error
	switch family {
	case "undernourishment":
		list, err = queries.ListUndernourishment(ctx, sdgdb.ListUndernourishmentParams{
			Region:   queryParams.Get("region"),
			FromYear: int64(fromYear),
			ToYear:   int64(toYear),
			Limit:    int64(limit),
		})
	case "production":
		list, err = queries.ListProduction(ctx, sdgdb.ListProductionParams{
			Crop:     queryParams.Get("crop"),
			FromYear: int64(fromYear),
			ToYear:   int64(toYear),
			Limit:    int64(limit),
		})
	case "food-security":
		list, err = queries.ListSecurity(ctx, sdgdb.ListSecurityParams{
			Country:  queryParams.Get("country"),
			Region:   queryParams.Get("region"),
			FromYear: int64(fromYear),
			ToYear:   int64(toYear),
			Limit:    int64(limit),
		})
	case "nutrition":
		list, err = queries.ListNutrition(ctx, sdgdb.ListNutritionParams{
			Region:    queryParams.Get("region"),
			Indicator: queryParams.Get("indicator"),
			FromYear:  int64(fromYear),
			ToYear:    int64(toYear),
			Limit:     int64(limit),
		})
	default:
		api.sendNotFound(w, r)
		return
	}

	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	response := models.NewListResponse(list, api.dimensionReferences())
	api.sendResponse(w, r, response)
}

// validateDimensionParams screens the free-text dimension filters before
// they reach the store.
func validateDimensionParams(queryParams url.Values, fieldErrors map[string][]string) map[string][]string {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}
	for _, key := range []string{"region", "country", "crop", "indicator"} {
		value := queryParams.Get(key)
		if value == "" {
			continue
		}
		if err := utils.ValidateQuery(value); err != nil {
			fieldErrors[key] = append(fieldErrors[key], `Invalid field value for field "`+key+`".`)
			continue
		}
		if err := utils.ValidateName(value); err != nil {
			fieldErrors[key] = append(fieldErrors[key], `Invalid field value for field "`+key+`".`)
		}
	}
	return fieldErrors
}
