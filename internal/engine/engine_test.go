package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eisenhauerIO/impactgo/internal/config"
	"github.com/eisenhauerIO/impactgo/internal/measure"
	"github.com/eisenhauerIO/impactgo/internal/response"
	"github.com/eisenhauerIO/impactgo/internal/simulator"
)

func baseConfig() *config.Model {
	cfg := config.Defaults()
	cfg.Data.Source.StartDate = "2024-01-01"
	cfg.Data.Source.EndDate = "2024-01-31"
	cfg.Measurement.Response.Params = response.Params{"coefficient": 0.5}
	return cfg
}

func TestEvaluateImpact_Approximation(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	frame := simulator.New(cfg.Data.Source).Products()

	result, err := New().EvaluateImpact(context.Background(), cfg, frame)
	require.NoError(t, err)

	require.Equal(t, "metrics_approximation", result.ModelType)
	require.NotEmpty(t, result.RunID)
	require.False(t, result.ExecutedAt.IsZero())
	require.Equal(t, cfg.Data.Source.NumProducts, result.N)
	// Simulated metric lift is the configured true effect plus small noise.
	require.InDelta(t, cfg.Data.Source.TrueEffect, result.MeanDelta, 0.05)
}

func TestEvaluateImpact_Experiment(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	cfg.Measurement.Model = "experiment"
	cfg.Data.Source.NumProducts = 2000
	frame := simulator.New(cfg.Data.Source).Products()

	result, err := New().EvaluateImpact(context.Background(), cfg, frame)
	require.NoError(t, err)

	require.Equal(t, "experiment", result.ModelType)
	require.InDelta(t, cfg.Data.Source.TrueEffect, result.EstimatedEffect, 0.05)
}

func TestEvaluateImpact_UnknownModel(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	cfg.Measurement.Model = "synthetic_control"

	_, err := New().EvaluateImpact(context.Background(), cfg, measure.Frame{{"a": 1}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown model")
}

func TestEvaluateImpact_UnknownResponseFailsAtConnect(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	cfg.Measurement.Response.Function = "piecewise"

	_, err := New().EvaluateImpact(context.Background(), cfg, measure.Frame{{"a": 1}})
	require.ErrorIs(t, err, response.ErrUnknownName)
}

func TestEvaluateImpact_CustomResponseRegistration(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	cfg.Measurement.Response.Function = "flat"
	frame := simulator.New(cfg.Data.Source).Products()

	eng := New()
	flat := func(delta, baseline float64, _ response.Params) (float64, error) {
		return 1.0, nil
	}
	require.NoError(t, eng.Responses().Register("flat", flat))

	result, err := eng.EvaluateImpact(context.Background(), cfg, frame)
	require.NoError(t, err)
	require.InDelta(t, float64(result.N), result.TotalImpact, 1e-9)
}

func TestConvergence_EstimatesTightenWithSampleSize(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()
	cfg.Measurement.Model = "experiment"

	points, err := New().Convergence(context.Background(), cfg, []int{50, 500, 5000})
	require.NoError(t, err)
	require.Len(t, points, 3)

	for _, p := range points {
		require.Equal(t, cfg.Data.Source.TrueEffect, p.Truth)
	}

	// The largest sample must land close to the truth.
	last := points[len(points)-1]
	require.InDelta(t, last.Truth, last.Estimate, 0.02)
}

func TestConvergence_InputValidation(t *testing.T) {
	t.Parallel()

	cfg := baseConfig()

	_, err := New().Convergence(context.Background(), cfg, nil)
	require.Error(t, err)

	_, err = New().Convergence(context.Background(), cfg, []int{100, -5})
	require.Error(t, err)
}
