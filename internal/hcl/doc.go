// Package hcl implements the config.Loader interface for HCL measurement
// configuration files. Loading is staged: the file is checked and parsed,
// decoded into the schema structs, translated into the format-agnostic
// config model with defaults merged in, and finally validated.
package hcl
