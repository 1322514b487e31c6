package config

import "github.com/eisenhauerIO/impactgo/internal/response"

// Defaults returns the baseline configuration a user config is merged over.
// Users specify only what differs from these values.
func Defaults() *Model {
	return &Model{
		Data: Data{
			Source: Source{
				Type:        "simulator",
				Seed:        42,
				NumProducts: 100,
				TrueEffect:  0.3,
			},
		},
		Measurement: Measurement{
			Model: "metrics_approximation",
			Params: Params{
				MetricBeforeColumn: "quality_before",
				MetricAfterColumn:  "quality_after",
				BaselineColumn:     "baseline_sales",
				OutcomeColumn:      "outcome",
				TreatmentColumn:    "treatment",
			},
			Response: Response{
				Function: "linear",
				Params:   response.Params{},
			},
		},
	}
}
