package engine

import (
	"context"
	"fmt"

	"github.com/eisenhauerIO/impactgo/internal/config"
	"github.com/eisenhauerIO/impactgo/internal/ctxlog"
	"github.com/eisenhauerIO/impactgo/internal/simulator"
)

// Point is one observation of a convergence study: the effect estimated
// from SampleSize simulated products next to the effect the simulator baked
// into them. Plotting collaborators consume the series as-is.
type Point struct {
	SampleSize int
	Estimate   float64
	Truth      float64
}

// Convergence evaluates the configured model at each sample size against
// freshly simulated data. As sizes grow the estimates should close in on
// the configured true effect; the series makes that visible.
func (e *Engine) Convergence(ctx context.Context, cfg *config.Model, sizes []int) ([]Point, error) {
	if len(sizes) == 0 {
		return nil, fmt.Errorf("convergence needs at least one sample size")
	}
	logger := ctxlog.FromContext(ctx)

	sim := simulator.New(cfg.Data.Source)
	points := make([]Point, 0, len(sizes))

	for _, size := range sizes {
		if size <= 0 {
			return nil, fmt.Errorf("sample sizes must be positive, got %d", size)
		}

		frame := sim.WithSampleSize(size).Products()
		result, err := e.EvaluateImpact(ctx, cfg, frame)
		if err != nil {
			return nil, fmt.Errorf("convergence run at size %d failed: %w", size, err)
		}

		points = append(points, Point{
			SampleSize: size,
			Estimate:   result.EstimatedEffect,
			Truth:      sim.TrueEffect(),
		})
		logger.Debug("Convergence point computed.",
			"size", size, "estimate", result.EstimatedEffect, "truth", sim.TrueEffect())
	}

	return points, nil
}
