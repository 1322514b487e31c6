package app

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/eisenhauerIO/impactgo/internal/engine"
	"github.com/eisenhauerIO/impactgo/internal/measure"
)

// renderResult writes a human-readable summary of a single evaluation.
func (a *App) renderResult(result *measure.Result) {
	fmt.Fprintf(a.outW, "\nImpact evaluation %s\n", result.RunID)
	fmt.Fprintf(a.outW, "  model:            %s\n", result.ModelType)
	fmt.Fprintf(a.outW, "  units:            %s\n", humanize.Comma(int64(result.N)))
	fmt.Fprintf(a.outW, "  estimated effect: %.4f\n", result.EstimatedEffect)
	if result.ResponseName != "" {
		fmt.Fprintf(a.outW, "  response:         %s\n", result.ResponseName)
		fmt.Fprintf(a.outW, "  total impact:     %s\n", humanize.CommafWithDigits(result.TotalImpact, 2))
		fmt.Fprintf(a.outW, "  mean impact:      %s\n", humanize.CommafWithDigits(result.MeanImpact, 2))
		fmt.Fprintf(a.outW, "  mean delta:       %.4f\n", result.MeanDelta)
	}
}

// renderConvergence writes the estimate-versus-truth series of a
// convergence study.
func (a *App) renderConvergence(points []engine.Point) {
	fmt.Fprintf(a.outW, "\nConvergence study\n")
	fmt.Fprintf(a.outW, "  %12s  %12s  %12s\n", "sample size", "estimate", "truth")
	for _, p := range points {
		fmt.Fprintf(a.outW, "  %12s  %12.4f  %12.4f\n", humanize.Comma(int64(p.SampleSize)), p.Estimate, p.Truth)
	}
}
