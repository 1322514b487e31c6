package config

import "github.com/eisenhauerIO/impactgo/internal/response"

// Model is the unified representation of a measurement configuration after
// defaults have been merged in.
type Model struct {
	Data        Data
	Measurement Measurement
}

// Data describes the input side of a measurement run.
type Data struct {
	Source Source
}

// Source describes where the input frame comes from. The only built-in type
// is "simulator", which generates a synthetic catalog in memory.
type Source struct {
	Type        string
	StartDate   string
	EndDate     string
	Seed        int64
	NumProducts int
	TrueEffect  float64
}

// Measurement selects a model and carries its parameters.
type Measurement struct {
	Model    string
	Params   Params
	Response Response
}

// Params names the frame columns a model reads from.
type Params struct {
	MetricBeforeColumn string
	MetricAfterColumn  string
	BaselineColumn     string
	OutcomeColumn      string
	TreatmentColumn    string
}

// Response selects a response function by name together with its parameter
// bag. The name is resolved against the response registry at model connect
// time, not at config load time, so custom registrations keep working.
type Response struct {
	Function string
	Params   response.Params
}
