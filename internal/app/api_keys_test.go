package app

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Terry84/sdg2-dashboard/internal/config"
)

func TestBlankKeyIsInvalid(t *testing.T) {
	app := &Application{
		Config: config.Config{
			APIKeys: []string{"key"},
		},
	}
	assert.True(t, app.IsInvalidAPIKey(""))
}

func TestConfiguredKeysAreValid(t *testing.T) {
	app := &Application{
		Config: config.Config{
			APIKeys: []string{"test", "other"},
		},
	}
	assert.False(t, app.IsInvalidAPIKey("test"))
	assert.False(t, app.IsInvalidAPIKey("other"))
	assert.True(t, app.IsInvalidAPIKey("TEST"), "Keys are case sensitive")
	assert.True(t, app.IsInvalidAPIKey("unknown"))
}

func TestRequestHasInvalidAPIKey(t *testing.T) {
	app := &Application{
		Config: config.Config{
			APIKeys: []string{"test"},
		},
	}

	r := httptest.NewRequest("GET", "/api/dashboard/overview.json?key=test", nil)
	assert.False(t, app.RequestHasInvalidAPIKey(r))

	r = httptest.NewRequest("GET", "/api/dashboard/overview.json", nil)
	assert.True(t, app.RequestHasInvalidAPIKey(r))
}
