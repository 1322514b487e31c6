package measure

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/eisenhauerIO/impactgo/internal/ctxlog"
)

// ExperimentModel estimates a treatment effect by regressing the outcome on
// the treatment indicator. The regression itself is delegated to gonum's
// ordinary least squares; with a binary regressor the fitted slope is the
// difference in mean outcome between treated and untreated units.
type ExperimentModel struct {
	outcomeCol   string
	treatmentCol string
	connected    bool
}

// Connect records the outcome and treatment column names.
func (m *ExperimentModel) Connect(cfg ModelConfig) error {
	if cfg.Params.OutcomeColumn == "" {
		return fmt.Errorf("experiment requires params.outcome_column")
	}
	if cfg.Params.TreatmentColumn == "" {
		return fmt.Errorf("experiment requires params.treatment_column")
	}
	m.outcomeCol = cfg.Params.OutcomeColumn
	m.treatmentCol = cfg.Params.TreatmentColumn
	m.connected = true
	return nil
}

// Fit runs OLS of outcome on treatment and reports the slope as the
// estimated effect.
func (m *ExperimentModel) Fit(ctx context.Context, data Frame) (*Result, error) {
	if !m.connected {
		return nil, fmt.Errorf("model not connected")
	}
	if len(data) < 2 {
		return nil, fmt.Errorf("experiment needs at least two rows, got %d", len(data))
	}

	treatment, err := data.Column(m.treatmentCol)
	if err != nil {
		return nil, err
	}
	outcome, err := data.Column(m.outcomeCol)
	if err != nil {
		return nil, err
	}

	var treated int
	for _, v := range treatment {
		if v != 0 {
			treated++
		}
	}
	if treated == 0 || treated == len(treatment) {
		return nil, fmt.Errorf("treatment column %q needs both treated and untreated units", m.treatmentCol)
	}

	alpha, beta := stat.LinearRegression(treatment, outcome, nil, false)

	result := &Result{
		ModelType:       "experiment",
		EstimatedEffect: beta,
		N:               len(data),
	}

	ctxlog.FromContext(ctx).Info("Experiment fit complete.",
		"units", len(data), "treated", treated, "intercept", alpha, "effect", beta)

	return result, nil
}
