// Package engine wires configuration, registries, data, and models into the
// impact evaluation pipeline.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eisenhauerIO/impactgo/internal/config"
	"github.com/eisenhauerIO/impactgo/internal/ctxlog"
	"github.com/eisenhauerIO/impactgo/internal/measure"
	"github.com/eisenhauerIO/impactgo/internal/response"
)

// Engine evaluates impact for a configuration against an input frame.
type Engine struct {
	models    *measure.Registry
	responses *response.Registry
}

// New builds an engine with the built-in model and response registries.
func New() *Engine {
	return &Engine{
		models:    measure.NewRegistry(),
		responses: response.NewRegistry(),
	}
}

// Responses exposes the response registry so callers can register custom
// shapes before evaluating.
func (e *Engine) Responses() *response.Registry {
	return e.responses
}

// EvaluateImpact resolves the configured model, connects it, fits it over
// the frame, and stamps the result with a run ID and execution time.
func (e *Engine) EvaluateImpact(ctx context.Context, cfg *config.Model, data measure.Frame) (*measure.Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Evaluating impact.", "model", cfg.Measurement.Model, "rows", len(data))

	model, err := e.models.Resolve(cfg.Measurement.Model)
	if err != nil {
		return nil, err
	}

	if err := model.Connect(measure.ModelConfig{
		Params:    cfg.Measurement.Params,
		Response:  cfg.Measurement.Response,
		Responses: e.responses,
	}); err != nil {
		return nil, fmt.Errorf("failed to connect model %q: %w", cfg.Measurement.Model, err)
	}

	result, err := model.Fit(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("model %q fit failed: %w", cfg.Measurement.Model, err)
	}

	result.RunID = uuid.NewString()
	result.ExecutedAt = time.Now().UTC()

	logger.Info("Impact evaluation finished.",
		"run_id", result.RunID, "model", result.ModelType, "effect", result.EstimatedEffect)

	return result, nil
}
