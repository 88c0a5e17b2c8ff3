package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Terry84/sdg2-dashboard/internal/app"
	"github.com/Terry84/sdg2-dashboard/internal/appconf"
	"github.com/Terry84/sdg2-dashboard/internal/config"
	"github.com/Terry84/sdg2-dashboard/internal/logging"
	"github.com/Terry84/sdg2-dashboard/internal/models"
	"github.com/Terry84/sdg2-dashboard/internal/sdg"
)

// createTestApi creates a RestAPI instance backed by deterministic sample
// data and an in-memory store.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()

	sdgConfig := sdg.Config{
		SampleSeed: 42,
		DBPath:     ":memory:",
		Env:        appconf.Test,
	}
	manager, err := sdg.InitManager(sdgConfig)
	require.NoError(t, err)
	t.Cleanup(manager.Shutdown)

	application := &app.Application{
		Config: config.Config{
			Env:     "test",
			APIKeys: []string{"TEST"},
		},
		SdgConfig: sdgConfig,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Manager:   manager,
	}

	api, err := NewRestAPI(application)
	require.NoError(t, err)
	t.Cleanup(api.Close)

	return api
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the
// specified endpoint, and returns the response and decoded envelope.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()

	resp, body := serveApiRaw(t, api, endpoint)

	var response models.ResponseModel
	err := json.Unmarshal(body, &response)
	require.NoError(t, err)

	return resp, response
}

// serveApiRaw fetches an endpoint without assuming the body is an envelope.
func serveApiRaw(t *testing.T, api *RestAPI, endpoint string) (*http.Response, []byte) {
	t.Helper()

	mux := http.NewServeMux()
	api.SetRoutes(mux)
	server := httptest.NewServer(mux)
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, body
}

// entryFromResponse digs the entry object out of a decoded envelope.
func entryFromResponse(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "Response data should be an object")
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok, "Response data should carry an entry")
	return entry
}

// listFromResponse digs the list out of a decoded envelope.
func listFromResponse(t *testing.T, model models.ResponseModel) []interface{} {
	t.Helper()

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "Response data should be an object")
	list, ok := data["list"].([]interface{})
	require.True(t, ok, "Response data should carry a list")
	return list
}

// seriesNames lists the name of every series in a chart config object.
func seriesNames(t *testing.T, chartConfig interface{}) []string {
	t.Helper()

	cc, ok := chartConfig.(map[string]interface{})
	require.True(t, ok, "chart config should be an object")
	series, ok := cc["series"].([]interface{})
	require.True(t, ok, "chart config should carry series")

	names := make([]string, 0, len(series))
	for _, s := range series {
		names = append(names, s.(map[string]interface{})["name"].(string))
	}
	return names
}
