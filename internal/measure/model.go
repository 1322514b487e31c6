package measure

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/eisenhauerIO/impactgo/internal/config"
	"github.com/eisenhauerIO/impactgo/internal/response"
)

// ModelConfig is everything a model receives at connect time: the column
// parameters, the response selection, and the registry to resolve it
// against.
type ModelConfig struct {
	Params    config.Params
	Response  config.Response
	Responses *response.Registry
}

// Model is the contract every measurement strategy implements. Connect
// validates configuration and prepares the model; Fit runs it over a frame.
// Models are connected once and may then fit any number of frames.
type Model interface {
	Connect(cfg ModelConfig) error
	Fit(ctx context.Context, data Frame) (*Result, error)
}

// UnitImpact is the per-unit breakdown produced by the approximation model.
type UnitImpact struct {
	Index           int
	DeltaMetric     float64
	BaselineOutcome float64
	Impact          float64
}

// Result is the standardized output of a fit. EstimatedEffect is the
// model's headline estimate of the intervention effect, the quantity
// convergence studies compare against a configured true effect; the impact
// aggregates are only populated by models that approximate outcomes.
type Result struct {
	ModelType       string
	RunID           string
	ExecutedAt      time.Time
	EstimatedEffect float64
	TotalImpact     float64
	MeanImpact      float64
	MeanDelta       float64
	N               int
	ResponseName    string
	PerUnit         []UnitImpact
}

// Registry maps model names to constructors, mirroring the response
// registry's name-based dispatch.
type Registry struct {
	models map[string]func() Model
}

// NewRegistry returns a registry holding the built-in models.
func NewRegistry() *Registry {
	return &Registry{models: map[string]func() Model{
		"metrics_approximation": func() Model { return &ApproximationModel{} },
		"experiment":            func() Model { return &ExperimentModel{} },
	}}
}

// Resolve returns a fresh, unconnected instance of the named model.
func (r *Registry) Resolve(name string) (Model, error) {
	ctor, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("unknown model %q, available: [%s]", name, strings.Join(r.Names(), " "))
	}
	return ctor(), nil
}

// Names returns the registered model names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
