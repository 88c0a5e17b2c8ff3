package restapi

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Terry84/sdg2-dashboard/internal/logging"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func fetchChart(t *testing.T, server *httptest.Server, path string) (*http.Response, []byte) {
	t.Helper()

	resp, err := http.Get(server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestChartHandlerServesPNG(t *testing.T) {
	api := createTestApi(t)
	mux := http.NewServeMux()
	api.SetRoutes(mux)
	server := httptest.NewServer(mux)
	defer server.Close()

	paths := []string{
		"/charts/overview/trend.png",
		"/charts/overview/regional-share.png",
		"/charts/undernourishment/latest-bar.png",
		"/charts/production/share-pie.png",
		"/charts/food-security/affected-area.png",
		"/charts/nutrition/stunting-bar.png",
		"/charts/regional-comparison/scatter.png",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			resp, body := fetchChart(t, server, path)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
			require.Greater(t, len(body), len(pngMagic))
			assert.Equal(t, pngMagic, body[:len(pngMagic)], "Body should start with the PNG signature")
		})
	}
}

func TestChartHandlerCachesRenderedBytes(t *testing.T) {
	api := createTestApi(t)
	mux := http.NewServeMux()
	api.SetRoutes(mux)
	server := httptest.NewServer(mux)
	defer server.Close()

	_, first := fetchChart(t, server, "/charts/overview/trend.png")
	api.charts.Wait()
	_, second := fetchChart(t, server, "/charts/overview/trend.png")

	assert.Equal(t, first, second, "Repeated requests serve identical cached bytes")
}

func TestChartHandlerHonorsPageParams(t *testing.T) {
	api := createTestApi(t)
	mux := http.NewServeMux()
	api.SetRoutes(mux)
	server := httptest.NewServer(mux)
	defer server.Close()

	path := "/charts/undernourishment/trend.png?region=" + url.QueryEscape("Asia")
	resp, body := fetchChart(t, server, path)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, pngMagic, body[:len(pngMagic)])
}

func TestChartHandlerUnknownChart(t *testing.T) {
	api := createTestApi(t)

	resp, _ := serveApiAndRetrieveEndpoint(t, api, "/charts/overview/unknown.png")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = serveApiAndRetrieveEndpoint(t, api, "/charts/weather/trend.png")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestChartHandlerRadarIsNotRasterized(t *testing.T) {
	api := createTestApi(t)

	// Radar charts draw client-side as SVG; the PNG surface rejects them.
	resp, _ := serveApiAndRetrieveEndpoint(t, api, "/charts/regional-comparison/radar.png")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestChartHandlerNeedsNoAPIKey(t *testing.T) {
	api := createTestApi(t)
	mux := http.NewServeMux()
	api.SetRoutes(mux)
	server := httptest.NewServer(mux)
	defer server.Close()

	resp, err := http.Get(server.URL + "/charts/overview/trend.png")
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body, api.Logger, "http_response_body")

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"Chart images are embedded by the web UI and skip API key validation")
}
