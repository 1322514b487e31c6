// Package config defines the format-agnostic measurement configuration
// model, the Loader interface for producing it from a file, and the staged
// validation pipeline every loaded configuration passes through.
//
// The model is the single source of truth for the engine and the model
// layer. Concrete loaders for specific formats, such as HCL, live in
// separate packages.
package config
