// Package restapi serves the dashboard's JSON API and the rendered chart
// images: one endpoint per dashboard page, raw indicator row listings, and
// the middleware stack around them.
package restapi

import (
	"net/http"
	"time"

	"github.com/Terry84/sdg2-dashboard/internal/app"
	"github.com/Terry84/sdg2-dashboard/internal/charts"
)

type RestAPI struct {
	*app.Application
	rateLimiter func(http.Handler) http.Handler
	charts      *charts.Renderer
}

// NewRestAPI creates a RestAPI with an initialized rate limiter and chart
// renderer.
func NewRestAPI(application *app.Application) (*RestAPI, error) {
	renderer, err := charts.NewRenderer()
	if err != nil {
		return nil, err
	}

	api := &RestAPI{
		Application: application,
		charts:      renderer,
	}
	if application.Config.RateLimit > 0 {
		api.rateLimiter = NewRateLimitMiddleware(application.Config.RateLimit, time.Second)
	}
	return api, nil
}

// Close releases the chart renderer's cache.
func (api *RestAPI) Close() {
	if api.charts != nil {
		api.charts.Close()
	}
}
