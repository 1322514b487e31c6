package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/eisenhauerIO/impactgo/internal/config"
	"github.com/eisenhauerIO/impactgo/internal/ctxlog"
	"github.com/eisenhauerIO/impactgo/internal/schema"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct{}

// NewLoader creates an HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads, decodes, merges, and validates a single HCL config file.
// Every failure comes back as a ConfigError so callers can match on
// config.ErrConfigValidation regardless of which stage rejected the file.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading measurement config.", "path", path)

	info, err := os.Stat(path)
	if err != nil {
		return nil, config.WrapConfigError(path, "file", err)
	}
	if info.IsDir() {
		return nil, config.WrapConfigError(path, "file", fmt.Errorf("path is a directory, expected a config file"))
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, config.WrapConfigError(path, "format", diags)
	}

	var root schema.Root
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, config.WrapConfigError(path, "format", diags)
	}
	logger.Debug("Config file decoded.", "path", path)

	model, err := translate(&root)
	if err != nil {
		return nil, config.WrapConfigError(path, "format", err)
	}

	if err := config.Validate(path, model); err != nil {
		return nil, err
	}
	logger.Debug("Config validated.", "model", model.Measurement.Model, "response", model.Measurement.Response.Function)

	return model, nil
}
