package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Terry84/sdg2-dashboard/internal/app"
	"github.com/Terry84/sdg2-dashboard/internal/appconf"
	"github.com/Terry84/sdg2-dashboard/internal/config"
	"github.com/Terry84/sdg2-dashboard/internal/logging"
	"github.com/Terry84/sdg2-dashboard/internal/restapi"
	"github.com/Terry84/sdg2-dashboard/internal/sdg"
	"github.com/Terry84/sdg2-dashboard/internal/webui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to a TOML config file")
	port := flag.Int("port", 0, "API server port (overrides config)")
	env := flag.String("env", "", "Environment (development|test|production)")
	dataSource := flag.String("data-source", "", "CSV directory, zip bundle, or http(s) URL (overrides config)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *env != "" {
		cfg.Env = *env
	}
	if *dataSource != "" {
		cfg.DataSource = *dataSource
	}

	environment := appconf.EnvFromString(cfg.Env)

	var logger *slog.Logger
	if environment == appconf.Production {
		logger = logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
	}

	sdgConfig := sdg.Config{
		Source:     cfg.DataSource,
		SampleSeed: cfg.SampleSeed,
		DBPath:     cfg.DBPath,
		Env:        environment,
		Verbose:    cfg.Verbose,
	}

	manager, err := sdg.InitManager(sdgConfig)
	if err != nil {
		return fmt.Errorf("error initializing data manager: %w", err)
	}
	defer manager.Shutdown()

	manager.PrintStatistics()

	application := &app.Application{
		Config:    cfg,
		SdgConfig: sdgConfig,
		Logger:    logger,
		Manager:   manager,
	}

	api, err := restapi.NewRestAPI(application)
	if err != nil {
		return fmt.Errorf("error initializing API: %w", err)
	}
	defer api.Close()

	mux := http.NewServeMux()
	api.SetRoutes(mux)

	if cfg.WebUI {
		ui, err := webui.NewWebUI(application)
		if err != nil {
			return fmt.Errorf("error initializing web UI: %w", err)
		}
		ui.SetWebUIRoutes(mux)
	}

	handler := restapi.NewRequestLoggingMiddleware(logger)(
		api.WithSecurityHeaders(
			restapi.CompressionMiddleware(mux)))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	shutdownErr := make(chan error)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		shutdownErr <- srv.Shutdown(ctx)
	}()

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env, "webui", cfg.WebUI)

	err = srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err := <-shutdownErr; err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}
