// Package schema defines the HCL block structures of a measurement
// configuration file. These structs mirror the file format exactly; the
// format-agnostic model lives in the config package and is produced by the
// hcl package's translation step.
package schema

import "github.com/hashicorp/hcl/v2"

// Root is the top-level structure of a measurement config file.
type Root struct {
	Data        *DataBlock        `hcl:"data,block"`
	Measurement *MeasurementBlock `hcl:"measurement,block"`
	Remain      hcl.Body          `hcl:",remain"`
}

// DataBlock describes where measurement input comes from.
type DataBlock struct {
	Source *SourceBlock `hcl:"source,block"`
}

// SourceBlock is a `source "<type>" { ... }` block. All attributes are
// optional in the file; unset values fall back to the documented defaults
// during translation.
type SourceBlock struct {
	Type        string   `hcl:"type,label"`
	StartDate   *string  `hcl:"start_date,optional"`
	EndDate     *string  `hcl:"end_date,optional"`
	Seed        *int64   `hcl:"seed,optional"`
	NumProducts *int     `hcl:"num_products,optional"`
	TrueEffect  *float64 `hcl:"true_effect,optional"`
}

// MeasurementBlock selects the model and its parameters.
type MeasurementBlock struct {
	Model    *string        `hcl:"model,optional"`
	Params   *ParamsBlock   `hcl:"params,block"`
	Response *ResponseBlock `hcl:"response,block"`
}

// ParamsBlock holds model parameters. Column attributes name the fields of
// the input frame a model reads from.
type ParamsBlock struct {
	MetricBeforeColumn *string `hcl:"metric_before_column,optional"`
	MetricAfterColumn  *string `hcl:"metric_after_column,optional"`
	BaselineColumn     *string `hcl:"baseline_column,optional"`
	OutcomeColumn      *string `hcl:"outcome_column,optional"`
	TreatmentColumn    *string `hcl:"treatment_column,optional"`
}

// ResponseBlock selects the response function and its parameter bag. Params
// is kept as a raw expression so the open, forward-compatible bag can be
// evaluated and converted during translation rather than pinned to a fixed
// set of keys here.
type ResponseBlock struct {
	Function string         `hcl:"function"`
	Params   hcl.Expression `hcl:"params,optional"`
}
