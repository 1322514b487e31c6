// Package simulator generates synthetic catalogs in memory for demo runs
// and convergence studies. Generation is fully deterministic for a given
// seed: product-level variation comes from a seeded opensimplex noise field
// rather than independent draws, which gives smooth, catalog-like structure
// across neighbouring products.
package simulator

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/eisenhauerIO/impactgo/internal/config"
	"github.com/eisenhauerIO/impactgo/internal/measure"
)

// Simulator produces product frames for a configured source.
type Simulator struct {
	seed        int64
	numProducts int
	trueEffect  float64
}

// New builds a simulator from the data source configuration.
func New(src config.Source) *Simulator {
	return &Simulator{
		seed:        src.Seed,
		numProducts: src.NumProducts,
		trueEffect:  src.TrueEffect,
	}
}

// WithSampleSize returns a copy generating a different number of products,
// keeping seed and effect unchanged. Used by convergence studies.
func (s *Simulator) WithSampleSize(n int) *Simulator {
	clone := *s
	clone.numProducts = n
	return &clone
}

// TrueEffect returns the effect baked into the generated data. Both the
// metric lift and the outcome lift use this value, so any model's estimate
// can be compared against it directly.
func (s *Simulator) TrueEffect() float64 {
	return s.trueEffect
}

// Products generates the catalog frame. Every product receives the metric
// lift (the catalog-wide enrichment the approximation model measures);
// the treatment indicator alternates and drives the outcome lift the
// experiment model estimates.
func (s *Simulator) Products() measure.Frame {
	qualityNoise := opensimplex.NewNormalized(s.seed)
	salesNoise := opensimplex.NewNormalized(s.seed + 1)
	rng := rand.New(rand.NewSource(s.seed))

	frame := make(measure.Frame, 0, s.numProducts)
	for i := 0; i < s.numProducts; i++ {
		x := float64(i) * 0.1

		qualityBefore := 0.2 + 0.6*qualityNoise.Eval2(x, 0)
		baselineSales := 100 + 900*salesNoise.Eval2(x, 1)

		// Enrichment lifts every product's metric by the true effect plus
		// observation noise.
		qualityAfter := qualityBefore + s.trueEffect + rng.NormFloat64()*0.02

		treatment := float64(i % 2)
		outcome := 10 + s.trueEffect*treatment + rng.NormFloat64()*0.05

		frame = append(frame, measure.Row{
			"quality_before": qualityBefore,
			"quality_after":  qualityAfter,
			"baseline_sales": baselineSales,
			"treatment":      treatment,
			"outcome":        outcome,
		})
	}
	return frame
}
