package restapi

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNutritionHandlerEndToEnd(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/dashboard/nutrition.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	entry := entryFromResponse(t, model)

	trend := entry["trend"].(map[string]interface{})
	assert.ElementsMatch(t, []string{"Stunting", "Wasting", "Overweight"}, seriesNames(t, trend))

	progress := entry["progress"].(map[string]interface{})
	rows, ok := progress["rows"].([]interface{})
	require.True(t, ok)
	assert.Len(t, rows, 3, "Progress table has one row per indicator")
}

func TestNutritionHandlerIndicatorFilter(t *testing.T) {
	api := createTestApi(t)

	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/dashboard/nutrition.json?key=TEST&indicator=Stunting")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryFromResponse(t, model)
	trend := entry["trend"].(map[string]interface{})
	assert.Equal(t, []string{"Stunting"}, seriesNames(t, trend),
		"An indicator filter restricts the trend to that indicator")
}

func TestNutritionHandlerRegionFilter(t *testing.T) {
	api := createTestApi(t)

	endpoint := "/api/dashboard/nutrition.json?key=TEST&region=" + url.QueryEscape("Latin America")
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryFromResponse(t, model)
	trend := entry["trend"].(map[string]interface{})
	assert.Contains(t, trend["title"], "Latin America")

	stuntingBar := entry["stuntingBar"].(map[string]interface{})
	series := stuntingBar["series"].([]interface{})
	points := series[0].(map[string]interface{})["data"].([]interface{})
	require.Len(t, points, 1, "A region filter leaves one bar")
	assert.Equal(t, "Latin America", points[0].(map[string]interface{})["label"])
}

func TestNutritionHandlerUnknownValues(t *testing.T) {
	api := createTestApi(t)

	resp, _ := serveApiAndRetrieveEndpoint(t, api, "/api/dashboard/nutrition.json?key=TEST&region=Atlantis")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = serveApiAndRetrieveEndpoint(t, api, "/api/dashboard/nutrition.json?key=TEST&indicator=Height")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
