package hcl

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/eisenhauerIO/impactgo/internal/config"
	"github.com/eisenhauerIO/impactgo/internal/response"
	"github.com/eisenhauerIO/impactgo/internal/schema"
)

// translate converts the decoded HCL schema into the format-agnostic config
// model, merging user values over the documented defaults. Only fields set
// in the file override the defaults.
func translate(root *schema.Root) (*config.Model, error) {
	model := config.Defaults()

	if root.Data != nil && root.Data.Source != nil {
		translateSource(root.Data.Source, &model.Data.Source)
	}
	if root.Measurement != nil {
		if err := translateMeasurement(root.Measurement, &model.Measurement); err != nil {
			return nil, err
		}
	}

	return model, nil
}

func translateSource(s *schema.SourceBlock, out *config.Source) {
	out.Type = s.Type
	if s.StartDate != nil {
		out.StartDate = *s.StartDate
	}
	if s.EndDate != nil {
		out.EndDate = *s.EndDate
	}
	if s.Seed != nil {
		out.Seed = *s.Seed
	}
	if s.NumProducts != nil {
		out.NumProducts = *s.NumProducts
	}
	if s.TrueEffect != nil {
		out.TrueEffect = *s.TrueEffect
	}
}

func translateMeasurement(m *schema.MeasurementBlock, out *config.Measurement) error {
	if m.Model != nil {
		out.Model = *m.Model
	}
	if m.Params != nil {
		translateParams(m.Params, &out.Params)
	}
	if m.Response != nil {
		out.Response.Function = m.Response.Function
		params, err := translateResponseParams(m.Response)
		if err != nil {
			return err
		}
		out.Response.Params = params
	}
	return nil
}

func translateParams(p *schema.ParamsBlock, out *config.Params) {
	if p.MetricBeforeColumn != nil {
		out.MetricBeforeColumn = *p.MetricBeforeColumn
	}
	if p.MetricAfterColumn != nil {
		out.MetricAfterColumn = *p.MetricAfterColumn
	}
	if p.BaselineColumn != nil {
		out.BaselineColumn = *p.BaselineColumn
	}
	if p.OutcomeColumn != nil {
		out.OutcomeColumn = *p.OutcomeColumn
	}
	if p.TreatmentColumn != nil {
		out.TreatmentColumn = *p.TreatmentColumn
	}
}

// translateResponseParams evaluates the raw params expression and converts
// it into the open numeric bag. The object's keys are not checked against
// any fixed schema: unknown parameter names pass through untouched and are
// ignored by response functions that do not use them.
func translateResponseParams(r *schema.ResponseBlock) (response.Params, error) {
	params := response.Params{}
	if r.Params == nil {
		return params, nil
	}

	val, diags := r.Params.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate response params: %s", diags.Error())
	}
	if val.IsNull() {
		return params, nil
	}

	converted, err := convert.Convert(val, cty.Map(cty.Number))
	if err != nil {
		return nil, fmt.Errorf("response params must be an object of numbers: %w", err)
	}

	for it := converted.ElementIterator(); it.Next(); {
		k, v := it.Element()
		f, _ := v.AsBigFloat().Float64()
		params[k.AsString()] = f
	}
	return params, nil
}
