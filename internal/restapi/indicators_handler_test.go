package restapi

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndicatorsHandlerListsFamilies(t *testing.T) {
	api := createTestApi(t)

	cases := []struct {
		family string
		rows   int
	}{
		{"undernourishment", 54},
		{"production", 54},
		{"food-security", 90},
		{"nutrition", 162},
	}

	for _, tc := range cases {
		t.Run(tc.family, func(t *testing.T) {
			resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/indicators/"+tc.family+".json?key=TEST")
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Len(t, listFromResponse(t, model), tc.rows)
		})
	}
}

func TestIndicatorsHandlerRegionFilterAndLimit(t *testing.T) {
	api := createTestApi(t)

	endpoint := "/api/indicators/undernourishment.json?key=TEST&limit=5&region=" + url.QueryEscape("Asia")
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	list := listFromResponse(t, model)
	require.Len(t, list, 5, "The limit caps the row count")
	for _, row := range list {
		assert.Equal(t, "Asia", row.(map[string]interface{})["region"])
	}

	data := model.Data.(map[string]interface{})
	references := data["references"].(map[string]interface{})
	assert.Len(t, references["regions"], 6, "References list every region")
}

func TestIndicatorsHandlerYearRange(t *testing.T) {
	api := createTestApi(t)

	resp, model := serveApiAndRetrieveEndpoint(t, api,
		"/api/indicators/production.json?key=TEST&from=2020&to=2021&crop=Cereals")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	list := listFromResponse(t, model)
	require.Len(t, list, 2)
	for _, row := range list {
		year := row.(map[string]interface{})["year"].(float64)
		assert.GreaterOrEqual(t, year, 2020.0)
		assert.LessOrEqual(t, year, 2021.0)
	}
}

func TestIndicatorsHandlerUnknownFamily(t *testing.T) {
	api := createTestApi(t)

	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/indicators/rainfall.json?key=TEST")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "resource not found", model.Text)
}

func TestIndicatorsHandlerInvalidParams(t *testing.T) {
	api := createTestApi(t)

	resp, body := serveApiRaw(t, api, "/api/indicators/nutrition.json?key=TEST&limit=-2")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "fieldErrors")

	resp, body = serveApiRaw(t, api, "/api/indicators/nutrition.json?key=TEST&region="+url.QueryEscape("<script>"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), `"region"`)

	// "--" passes the name character set but trips the injection screen.
	resp, body = serveApiRaw(t, api, "/api/indicators/nutrition.json?key=TEST&region="+url.QueryEscape("Asia --"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), `"region"`)
}
