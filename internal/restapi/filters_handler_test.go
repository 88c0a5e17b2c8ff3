package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiltersHandlerEndToEnd(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/dashboard/filters.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, model.Version)

	entry := entryFromResponse(t, model)

	regions, ok := entry["regions"].([]interface{})
	require.True(t, ok)
	assert.Len(t, regions, 6)
	assert.Equal(t, "Asia", regions[0], "Store-backed listings come back sorted")

	assert.Len(t, entry["countries"], 10)
	assert.Len(t, entry["crops"], 6)

	indicators, ok := entry["indicators"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"Overweight", "Stunting", "Wasting"}, indicators)

	years, ok := entry["years"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 2015.0, years["first"])
	assert.Equal(t, 2023.0, years["last"])

	levels, ok := entry["levels"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"Minimal", "Stressed", "Crisis", "Emergency"}, levels)
}
