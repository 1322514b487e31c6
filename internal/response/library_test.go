package response

import (
	"errors"
	"math"
	"testing"
)

func TestLinear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		delta    float64
		baseline float64
		params   Params
		want     float64
	}{
		{"documented example", 0.4, 100, Params{"coefficient": 0.5}, 20.0},
		{"default coefficient is one", 1.0, 100, nil, 100.0},
		{"negative delta flips sign", -0.2, 50, Params{"coefficient": 2.0}, -20.0},
		{"zero delta absorbs", 0, 100, Params{"coefficient": 0.5}, 0},
		{"zero coefficient absorbs", 3.5, 100, Params{"coefficient": 0}, 0},
		{"zero baseline absorbs", 0.5, 0, Params{"coefficient": 0.5}, 0},
		{"unknown keys are ignored", 0.4, 100, Params{"coefficient": 0.5, "celing": 9}, 20.0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Linear(tt.delta, tt.baseline, tt.params)
			if err != nil {
				t.Fatalf("Linear() returned unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Linear(%v, %v, %v) = %v, want %v", tt.delta, tt.baseline, tt.params, got, tt.want)
			}
		})
	}
}

func TestLinear_Deterministic(t *testing.T) {
	t.Parallel()

	params := Params{"coefficient": 0.7310585}
	first, _ := Linear(0.123456789, 987.654321, params)
	second, _ := Linear(0.123456789, 987.654321, params)

	if first != second {
		t.Errorf("identical inputs produced different outputs: %v vs %v", first, second)
	}
}

func TestLogLinear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		delta    float64
		baseline float64
		params   Params
		want     float64
	}{
		{"zero delta absorbs", 0, 500, nil, 0},
		{"unit delta", 1.0, 100, Params{"coefficient": 1.0}, math.Log1p(1) * 100},
		{"antisymmetric", -1.0, 100, Params{"coefficient": 1.0}, -math.Log1p(1) * 100},
		{"coefficient scales", 2.0, 50, Params{"coefficient": 0.5}, 0.5 * math.Log1p(2) * 50},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := LogLinear(tt.delta, tt.baseline, tt.params)
			if err != nil {
				t.Fatalf("LogLinear() returned unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("LogLinear(%v, %v, %v) = %v, want %v", tt.delta, tt.baseline, tt.params, got, tt.want)
			}
		})
	}
}

func TestLogLinear_SublinearForLargeDeltas(t *testing.T) {
	t.Parallel()

	small, _ := LogLinear(1, 100, nil)
	large, _ := LogLinear(10, 100, nil)

	// Ten times the metric change must yield far less than ten times the impact.
	if large >= 10*small {
		t.Errorf("expected diminishing returns, got impact %v at delta 1 and %v at delta 10", small, large)
	}
}

func TestSaturating(t *testing.T) {
	t.Parallel()

	t.Run("missing ceiling fails with InvalidParameter", func(t *testing.T) {
		t.Parallel()
		_, err := Saturating(0.5, 100, Params{"rate": 2.0})
		if !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("expected ErrInvalidParameter, got %v", err)
		}
		var ipe *InvalidParameterError
		if !errors.As(err, &ipe) || ipe.Key != "ceiling" {
			t.Errorf("error should identify the missing key 'ceiling', got %v", err)
		}
	})

	t.Run("approaches ceiling monotonically", func(t *testing.T) {
		t.Parallel()
		params := Params{"ceiling": 0.3, "rate": 1.0}
		bound := 0.3 * 100

		small, err := Saturating(1, 100, params)
		if err != nil {
			t.Fatalf("Saturating() returned unexpected error: %v", err)
		}
		large, err := Saturating(50, 100, params)
		if err != nil {
			t.Fatalf("Saturating() returned unexpected error: %v", err)
		}

		if !(small < large) {
			t.Errorf("impact should grow with delta: got %v then %v", small, large)
		}
		if large > bound || bound-large > 1e-6 {
			t.Errorf("impact %v should sit at or just below the ceiling %v", large, bound)
		}
	})

	t.Run("antisymmetric around zero", func(t *testing.T) {
		t.Parallel()
		params := Params{"ceiling": 0.3, "rate": 2.0}
		up, _ := Saturating(0.8, 100, params)
		down, _ := Saturating(-0.8, 100, params)
		if up != -down {
			t.Errorf("expected Saturating(-d) == -Saturating(d), got %v and %v", up, down)
		}
	})

	t.Run("zero delta absorbs", func(t *testing.T) {
		t.Parallel()
		got, err := Saturating(0, 100, Params{"ceiling": 0.3})
		if err != nil {
			t.Fatalf("Saturating() returned unexpected error: %v", err)
		}
		if got != 0 {
			t.Errorf("Saturating(0, ...) = %v, want 0", got)
		}
	})
}
