package restapi

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/Terry84/sdg2-dashboard/internal/analytics"
	"github.com/Terry84/sdg2-dashboard/internal/dashboard"
	"github.com/Terry84/sdg2-dashboard/internal/utils"
)

// chartHandler serves one dashboard chart as PNG. The page's query
// parameters apply exactly as they do on the page's JSON endpoint, and the
// rendered bytes are cached by full request URI. Radar charts draw
// client-side and are not served here.
func (api *RestAPI) chartHandler(w http.ResponseWriter, r *http.Request) {
	page := utils.ExtractIDFromParams(r, "page")
	name := utils.ExtractIDFromParams(r, "name")

	config, found, err := api.chartForPage(r, page, name)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	if !found || config.ChartType == analytics.ChartRadar {
		api.sendNotFound(w, r)
		return
	}

	png, err := api.charts.Render(r.URL.RequestURI(), config)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Header().Set("Cache-Control", "public, max-age=300")
	if _, err := w.Write(png); err != nil {
		api.Logger.Error("failed to write chart image", "error", err)
	}
}

// chartForPage resolves a page/name pair to the chart config the page's
// builder produces for the request's query parameters.
func (api *RestAPI) chartForPage(r *http.Request, page, name string) (analytics.ChartConfig, bool, error) {
	ctx := r.Context()
	queryParams := r.URL.Query()

	switch page {
	case "overview":
		data := dashboard.BuildOverview(api.Manager)
		switch name {
		case "trend":
			return data.Trend, true, nil
		case "regional-share":
			return data.RegionalShare, true, nil
		}

	case "undernourishment":
		fromYear, toYear, ok := chartYearBounds(queryParams)
		if !ok {
			return analytics.ChartConfig{}, false, nil
		}
		data, err := dashboard.BuildUndernourishment(ctx, api.Manager, queryParams.Get("region"), fromYear, toYear)
		if err != nil {
			return analytics.ChartConfig{}, false, err
		}
		switch name {
		case "trend":
			return data.Trend, true, nil
		case "latest-bar":
			return data.LatestBar, true, nil
		}

	case "production":
		data := dashboard.BuildProduction(api.Manager, queryParams.Get("crop"))
		switch name {
		case "trend":
			return data.Trend, true, nil
		case "share-pie":
			return data.SharePie, true, nil
		case "growth-bar":
			return data.GrowthBar, true, nil
		case "productivity":
			return data.Productivity, true, nil
		}

	case "food-security":
		data, err := dashboard.BuildFoodSecurity(ctx, api.Manager, queryParams.Get("country"))
		if err != nil {
			return analytics.ChartConfig{}, false, err
		}
		switch name {
		case "scatter":
			return data.Scatter, true, nil
		case "level-pie":
			return data.LevelPie, true, nil
		case "country-trend":
			return data.CountryTrend, true, nil
		case "affected-area":
			return data.AffectedArea, true, nil
		}

	case "nutrition":
		data := dashboard.BuildNutrition(api.Manager, queryParams.Get("region"), queryParams.Get("indicator"))
		switch name {
		case "trend":
			return data.Trend, true, nil
		case "stunting-bar":
			return data.StuntingBar, true, nil
		case "indicator-bar":
			return data.IndicatorBar, true, nil
		}

	case "regional-comparison":
		year, fieldErrors := utils.ParseYearParam(queryParams, "year", nil)
		if len(fieldErrors) > 0 {
			return analytics.ChartConfig{}, false, nil
		}
		regions := utils.ParseListParam(queryParams, "regions")
		data := dashboard.BuildRegionalComparison(api.Manager, year, regions)
		if name == "scatter" {
			return data.Scatter, true, nil
		}
	}

	return analytics.ChartConfig{}, false, nil
}

func chartYearBounds(queryParams url.Values) (int, int, bool) {
	fromYear, fieldErrors := utils.ParseYearParam(queryParams, "from", nil)
	toYear, fieldErrors := utils.ParseYearParam(queryParams, "to", fieldErrors)
	if len(fieldErrors) > 0 {
		return 0, 0, false
	}
	return fromYear, toYear, true
}
