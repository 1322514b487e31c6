package measure

import (
	"context"
	"fmt"

	"github.com/eisenhauerIO/impactgo/internal/ctxlog"
	"github.com/eisenhauerIO/impactgo/internal/response"
)

// ApproximationModel approximates intervention impact without fitting a
// statistical model: for each unit it computes the metric delta between the
// before and after columns and feeds it, together with the baseline
// outcome, through the configured response function.
type ApproximationModel struct {
	beforeCol    string
	afterCol     string
	baselineCol  string
	responseName string
	fn           response.Func
	params       response.Params
	connected    bool
}

// Connect resolves the configured response function and records the column
// names. Resolution failures surface here, before any data is touched.
func (m *ApproximationModel) Connect(cfg ModelConfig) error {
	if cfg.Responses == nil {
		return fmt.Errorf("metrics_approximation requires a response registry")
	}

	fn, err := cfg.Responses.Resolve(cfg.Response.Function)
	if err != nil {
		return fmt.Errorf("metrics_approximation: %w", err)
	}

	m.beforeCol = cfg.Params.MetricBeforeColumn
	m.afterCol = cfg.Params.MetricAfterColumn
	m.baselineCol = cfg.Params.BaselineColumn
	m.responseName = cfg.Response.Function
	m.fn = fn
	m.params = cfg.Response.Params
	m.connected = true
	return nil
}

// Fit applies the response function to every unit and aggregates the
// results. EstimatedEffect is the mean metric delta, the model's estimate
// of the intervention's average effect on the metric itself.
func (m *ApproximationModel) Fit(ctx context.Context, data Frame) (*Result, error) {
	if !m.connected {
		return nil, fmt.Errorf("model not connected")
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("input frame is empty")
	}
	if err := data.RequireColumns(m.beforeCol, m.afterCol, m.baselineCol); err != nil {
		return nil, err
	}

	perUnit := make([]UnitImpact, 0, len(data))
	var totalImpact, totalDelta float64

	for i, row := range data {
		delta := row[m.afterCol] - row[m.beforeCol]
		baseline := row[m.baselineCol]

		impact, err := m.fn(delta, baseline, m.params)
		if err != nil {
			return nil, fmt.Errorf("response %q failed on row %d: %w", m.responseName, i, err)
		}

		perUnit = append(perUnit, UnitImpact{
			Index:           i,
			DeltaMetric:     delta,
			BaselineOutcome: baseline,
			Impact:          impact,
		})
		totalImpact += impact
		totalDelta += delta
	}

	n := len(data)
	result := &Result{
		ModelType:       "metrics_approximation",
		EstimatedEffect: totalDelta / float64(n),
		TotalImpact:     totalImpact,
		MeanImpact:      totalImpact / float64(n),
		MeanDelta:       totalDelta / float64(n),
		N:               n,
		ResponseName:    m.responseName,
		PerUnit:         perUnit,
	}

	ctxlog.FromContext(ctx).Info("Metrics approximation complete.",
		"units", n, "response", m.responseName, "total_impact", result.TotalImpact)

	return result, nil
}
