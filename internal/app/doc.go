// Package app wires the application together: it owns the logger, the
// configuration loader, and the engine, and drives a single evaluation or
// convergence study from a parsed CLI configuration.
package app
