package app

import (
	"log/slog"

	"github.com/Terry84/sdg2-dashboard/internal/config"
	"github.com/Terry84/sdg2-dashboard/internal/sdg"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: the resolved configuration, the structured logger, and the
// indicator dataset manager.
type Application struct {
	Config    config.Config
	SdgConfig sdg.Config
	Logger    *slog.Logger
	Manager   *sdg.Manager
}
