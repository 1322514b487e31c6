package measure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eisenhauerIO/impactgo/internal/config"
)

func experimentConfig() ModelConfig {
	return ModelConfig{
		Params: config.Params{
			OutcomeColumn:   "outcome",
			TreatmentColumn: "treatment",
		},
	}
}

func TestExperimentModel_ExactEffect(t *testing.T) {
	t.Parallel()

	model := &ExperimentModel{}
	require.NoError(t, model.Connect(experimentConfig()))

	// outcome = 10 + 5*treatment with no noise: the slope must be exactly 5.
	frame := Frame{
		{"treatment": 0, "outcome": 10},
		{"treatment": 1, "outcome": 15},
		{"treatment": 0, "outcome": 10},
		{"treatment": 1, "outcome": 15},
	}

	result, err := model.Fit(context.Background(), frame)
	require.NoError(t, err)
	require.Equal(t, "experiment", result.ModelType)
	require.Equal(t, 4, result.N)
	require.InDelta(t, 5.0, result.EstimatedEffect, 1e-9)
}

func TestExperimentModel_DifferenceInMeans(t *testing.T) {
	t.Parallel()

	model := &ExperimentModel{}
	require.NoError(t, model.Connect(experimentConfig()))

	// With a binary regressor the OLS slope equals the difference in group
	// means: treated mean 22, control mean 11.
	frame := Frame{
		{"treatment": 0, "outcome": 10},
		{"treatment": 0, "outcome": 12},
		{"treatment": 1, "outcome": 20},
		{"treatment": 1, "outcome": 24},
	}

	result, err := model.Fit(context.Background(), frame)
	require.NoError(t, err)
	require.InDelta(t, 11.0, result.EstimatedEffect, 1e-9)
}

func TestExperimentModel_ConnectValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params config.Params
	}{
		{"missing outcome column", config.Params{TreatmentColumn: "treatment"}},
		{"missing treatment column", config.Params{OutcomeColumn: "outcome"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			model := &ExperimentModel{}
			require.Error(t, model.Connect(ModelConfig{Params: tt.params}))
		})
	}
}

func TestExperimentModel_DegenerateTreatment(t *testing.T) {
	t.Parallel()

	model := &ExperimentModel{}
	require.NoError(t, model.Connect(experimentConfig()))

	frame := Frame{
		{"treatment": 1, "outcome": 10},
		{"treatment": 1, "outcome": 12},
	}

	_, err := model.Fit(context.Background(), frame)
	require.Error(t, err)
	require.Contains(t, err.Error(), "treated and untreated")
}

func TestRegistry_ResolveModels(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()

	require.Equal(t, []string{"experiment", "metrics_approximation"}, reg.Names())

	for _, name := range reg.Names() {
		model, err := reg.Resolve(name)
		require.NoError(t, err)
		require.NotNil(t, model)
	}

	_, err := reg.Resolve("synthetic_control")
	require.Error(t, err)
	require.Contains(t, err.Error(), "available")
}
