// Package response implements the impact approximation layer: a set of
// named, pure response functions that translate a metric change and a
// baseline outcome into an approximated impact on that outcome.
//
// Every response function shares the same signature and is stateless,
// deterministic, and free of side effects, so callers may cache results or
// invoke functions concurrently without coordination. Functions are held in
// a Registry keyed by name, which lets measurement pipelines pick a response
// shape from configuration and lets new shapes be added without touching
// existing callers.
package response
