// Package measure holds the model layer: the Model interface every
// measurement strategy implements, the standardized Result container, and
// the built-in models. metrics_approximation applies a configured response
// function to per-unit metric changes; experiment estimates a treatment
// effect by delegating ordinary least squares to gonum.
package measure
