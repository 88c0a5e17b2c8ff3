package webui

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Terry84/sdg2-dashboard/internal/dashboard"
	"github.com/Terry84/sdg2-dashboard/internal/models"
)

// pageData carries everything the layout template needs; Data holds the
// page-specific payload from the dashboard builders.
type pageData struct {
	Title   string
	Nav     []navItem
	Filters models.FiltersData
	// ChartQS is the query-string suffix appended to chart image URLs so the
	// PNGs reflect the page's active filters.
	ChartQS string
	Query   url.Values
	Data    interface{}
}

func (webUI *WebUI) newPageData(r *http.Request, path, title string, data interface{}) pageData {
	chartQS := ""
	if encoded := r.URL.Query().Encode(); encoded != "" {
		chartQS = "?" + encoded
	}

	return pageData{
		Title:   title,
		Nav:     navItems(path),
		Filters: dashboard.BuildFilters(webUI.Manager),
		ChartQS: chartQS,
		Query:   r.URL.Query(),
		Data:    data,
	}
}

func (webUI *WebUI) overviewHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := dashboard.BuildOverview(webUI.Manager)
	webUI.render(w, "overview.html", webUI.newPageData(r, "/", "Overview", data))
}

func (webUI *WebUI) undernourishmentHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	from, _ := strconv.Atoi(query.Get("from"))
	to, _ := strconv.Atoi(query.Get("to"))

	data, err := dashboard.BuildUndernourishment(r.Context(), webUI.Manager, query.Get("region"), from, to)
	if err != nil {
		webUI.renderError(w, err)
		return
	}
	webUI.render(w, "undernourishment.html",
		webUI.newPageData(r, "/undernourishment", "Hunger & Undernourishment", data))
}

func (webUI *WebUI) productionHandler(w http.ResponseWriter, r *http.Request) {
	data := dashboard.BuildProduction(webUI.Manager, r.URL.Query().Get("crop"))
	webUI.render(w, "production.html", webUI.newPageData(r, "/production", "Food Production", data))
}

func (webUI *WebUI) foodSecurityHandler(w http.ResponseWriter, r *http.Request) {
	data, err := dashboard.BuildFoodSecurity(r.Context(), webUI.Manager, r.URL.Query().Get("country"))
	if err != nil {
		webUI.renderError(w, err)
		return
	}
	webUI.render(w, "food_security.html", webUI.newPageData(r, "/food-security", "Food Security", data))
}

func (webUI *WebUI) nutritionHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	data := dashboard.BuildNutrition(webUI.Manager, query.Get("region"), query.Get("indicator"))
	webUI.render(w, "nutrition.html", webUI.newPageData(r, "/nutrition", "Nutrition Status", data))
}

func (webUI *WebUI) regionalComparisonHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	year, _ := strconv.Atoi(query.Get("year"))

	var regions []string
	if raw := query.Get("regions"); raw != "" {
		for _, region := range strings.Split(raw, ",") {
			if region = strings.TrimSpace(region); region != "" {
				regions = append(regions, region)
			}
		}
	}

	data := dashboard.BuildRegionalComparison(webUI.Manager, year, regions)
	webUI.render(w, "comparison.html",
		webUI.newPageData(r, "/regional-comparison", "Regional Comparison", data))
}

func (webUI *WebUI) renderError(w http.ResponseWriter, err error) {
	webUI.Logger.Error("failed to build dashboard page", "error", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
