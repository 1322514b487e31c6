package response

import "math"

// Func is the uniform signature every response function implements. It maps
// a metric change (metricAfter - metricBefore) and the baseline outcome
// observed before the intervention to an approximated impact on that
// outcome. deltaMetric may be negative, zero, or positive; no range is
// enforced on either input and no clamping or rounding is applied to the
// result.
type Func func(deltaMetric, baselineOutcome float64, params Params) (float64, error)

// Linear scales impact linearly with the metric change:
//
//	impact = coefficient * deltaMetric * baselineOutcome
//
// The coefficient parameter defaults to 1.0 and expresses the fractional
// change of the baseline outcome per unit of metric change: a coefficient
// of 0.5 means a 1-unit metric increase yields half the baseline outcome
// as impact.
func Linear(deltaMetric, baselineOutcome float64, params Params) (float64, error) {
	coefficient := params.Float("coefficient", 1.0)
	return coefficient * deltaMetric * baselineOutcome, nil
}

// LogLinear dampens large metric changes logarithmically:
//
//	impact = coefficient * sign(deltaMetric) * log1p(|deltaMetric|) * baselineOutcome
//
// Near zero it behaves like Linear; as |deltaMetric| grows the marginal
// impact of each additional unit shrinks. The coefficient parameter
// defaults to 1.0.
func LogLinear(deltaMetric, baselineOutcome float64, params Params) (float64, error) {
	coefficient := params.Float("coefficient", 1.0)
	scaled := math.Copysign(math.Log1p(math.Abs(deltaMetric)), deltaMetric)
	return coefficient * scaled * baselineOutcome, nil
}

// Saturating approaches a ceiling as the metric change grows:
//
//	impact = sign(deltaMetric) * ceiling * baselineOutcome * (1 - exp(-rate*|deltaMetric|))
//
// The ceiling parameter is required and bounds the impact as a fraction of
// the baseline outcome; rate (default 1.0) controls how quickly the bound
// is approached. The shape is antisymmetric around zero.
func Saturating(deltaMetric, baselineOutcome float64, params Params) (float64, error) {
	ceiling, err := params.Require("ceiling")
	if err != nil {
		return 0, err
	}
	rate := params.Float("rate", 1.0)
	magnitude := 1 - math.Exp(-rate*math.Abs(deltaMetric))
	return math.Copysign(magnitude, deltaMetric) * ceiling * baselineOutcome, nil
}
