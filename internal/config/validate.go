package config

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Validate runs the structure and parameter stages on a merged model. Each
// stage collects every violation it finds before failing, so a user fixing
// a config sees the full list at once rather than one error per attempt.
func Validate(path string, m *Model) error {
	if errs := validateStructure(m); len(errs) > 0 {
		return NewConfigError(path, "structure", errs)
	}
	if errs := validateParameters(m); len(errs) > 0 {
		return NewConfigError(path, "parameter", errs)
	}
	return nil
}

// validateStructure checks that the required sections and fields are
// present after the defaults merge.
func validateStructure(m *Model) []error {
	var errs []error

	if m.Data.Source.Type == "" {
		errs = append(errs, fmt.Errorf("missing required field: data.source type"))
	}
	if m.Data.Source.Type == "simulator" {
		if m.Data.Source.StartDate == "" {
			errs = append(errs, fmt.Errorf("missing required field: data.source.start_date"))
		}
		if m.Data.Source.EndDate == "" {
			errs = append(errs, fmt.Errorf("missing required field: data.source.end_date"))
		}
	}
	if m.Measurement.Model == "" {
		errs = append(errs, fmt.Errorf("missing required field: measurement.model"))
	}
	if m.Measurement.Response.Function == "" {
		errs = append(errs, fmt.Errorf("missing required field: measurement.response.function"))
	}

	return errs
}

// validateParameters checks value-level constraints: date formats, date
// ordering, and simulator sizing. Response function names are deliberately
// not checked here; resolution happens against the registry at connect
// time so custom registrations remain usable.
func validateParameters(m *Model) []error {
	var errs []error
	src := m.Data.Source

	var start, end time.Time
	var err error

	if src.StartDate != "" {
		start, err = time.Parse(dateLayout, src.StartDate)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid date format for data.source.start_date: %q, expected YYYY-MM-DD", src.StartDate))
		}
	}
	if src.EndDate != "" {
		end, err = time.Parse(dateLayout, src.EndDate)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid date format for data.source.end_date: %q, expected YYYY-MM-DD", src.EndDate))
		}
	}
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		errs = append(errs, fmt.Errorf("data.source.start_date (%s) must be before or equal to end_date (%s)", src.StartDate, src.EndDate))
	}

	if src.NumProducts <= 0 {
		errs = append(errs, fmt.Errorf("data.source.num_products must be positive, got %d", src.NumProducts))
	}

	return errs
}
