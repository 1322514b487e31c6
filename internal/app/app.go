package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/eisenhauerIO/impactgo/internal/config"
	"github.com/eisenhauerIO/impactgo/internal/ctxlog"
	"github.com/eisenhauerIO/impactgo/internal/engine"
	"github.com/eisenhauerIO/impactgo/internal/hcl"
	"github.com/eisenhauerIO/impactgo/internal/measure"
	"github.com/eisenhauerIO/impactgo/internal/simulator"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	loader config.Loader
	engine *engine.Engine
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger, loader, and engine.
func NewApp(outW, logW io.Writer, appConfig *Config) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		loader: hcl.NewLoader(),
		engine: engine.New(),
	}
}

// Run executes the main application logic: load and validate the config,
// produce the input frame, evaluate impact (or run a convergence study),
// and render a summary.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	cfg, err := a.loader.Load(ctx, appConfig.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.logger.Debug("Configuration loaded.", "path", appConfig.ConfigPath)

	if len(appConfig.Sizes) > 0 {
		points, err := a.engine.Convergence(ctx, cfg, appConfig.Sizes)
		if err != nil {
			return fmt.Errorf("convergence study failed: %w", err)
		}
		a.renderConvergence(points)
		return nil
	}

	frame, err := a.buildFrame(cfg)
	if err != nil {
		return err
	}

	result, err := a.engine.EvaluateImpact(ctx, cfg, frame)
	if err != nil {
		return fmt.Errorf("impact evaluation failed: %w", err)
	}
	a.renderResult(result)
	return nil
}

// buildFrame produces the input frame for the configured data source.
func (a *App) buildFrame(cfg *config.Model) (measure.Frame, error) {
	switch cfg.Data.Source.Type {
	case "simulator":
		return simulator.New(cfg.Data.Source).Products(), nil
	default:
		return nil, fmt.Errorf("unknown data source type %q", cfg.Data.Source.Type)
	}
}
