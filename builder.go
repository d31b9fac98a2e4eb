package simparams

import (
	"errors"
	"fmt"
	"os"
)

// ValidatorFunc validates a fully loaded Model and returns an error if a
// domain constraint is violated.
type ValidatorFunc func(m *Model) error

// Builder provides a fluent interface for assembling a validated Model.
type Builder struct {
	model      *Model
	opts       LoadOptions
	file       string
	args       []string
	validators []ValidatorFunc
}

// NewBuilder creates a builder with the model defaults in place and the
// process arguments as the CLI source.
func NewBuilder() *Builder {
	return &Builder{
		model: NewModel(),
		opts:  DefaultLoadOptions(),
		args:  os.Args[1:],
	}
}

// WithDefaults declares additional (name, default) pairs before any override
// source is applied, for collaborators that carry their own parameters.
func (b *Builder) WithDefaults(defaults []Override) *Builder {
	b.model.MergeOverrides(defaults)
	return b
}

// WithFile sets the configuration file path.
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithArgs sets the command-line arguments.
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithEnvPrefix sets the environment variable prefix.
func (b *Builder) WithEnvPrefix(prefix string) *Builder {
	b.opts.EnvPrefix = prefix
	return b
}

// WithEnvTransform sets a custom environment variable transformer.
func (b *Builder) WithEnvTransform(fn EnvTransformFunc) *Builder {
	b.opts.EnvTransform = fn
	return b
}

// WithSources sets the precedence order for override sources.
func (b *Builder) WithSources(sources ...Source) *Builder {
	b.opts.Sources = sources
	return b
}

// WithStrictOverrides rejects file and CLI overrides whose names were never
// declared as defaults.
func (b *Builder) WithStrictOverrides(strict bool) *Builder {
	b.opts.Strict = strict
	return b
}

// WithValidator adds a validation function that runs after Model.Check.
// Multiple validators are executed in the order they are added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build loads every source into the model and runs the validation gate.
// Model.Check always runs first, then any added validators. A missing
// configuration file surfaces as ErrConfigNotFound alongside the built model
// and is not fatal.
func (b *Builder) Build() (*Model, error) {
	loadErr := b.model.LoadWithOptions(b.file, b.args, b.opts)
	if loadErr != nil && !errors.Is(loadErr, ErrConfigNotFound) {
		return nil, loadErr
	}

	if err := b.model.Check(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	for _, validator := range b.validators {
		if err := validator(b.model); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	// ErrConfigNotFound or nil
	return b.model, loadErr
}

// MustBuild is like Build but panics on error. ErrConfigNotFound is ignored;
// the model proceeds with defaults, env vars, and CLI overrides.
func (b *Builder) MustBuild() *Model {
	model, err := b.Build()
	if err != nil && !errors.Is(err, ErrConfigNotFound) {
		panic(fmt.Sprintf("simparams build failed: %v", err))
	}
	return model
}

// QuickModel creates a validated Model with a single call, loading the given
// file and the process arguments with standard precedence.
func QuickModel(envPrefix, configFile string) (*Model, error) {
	return NewBuilder().
		WithEnvPrefix(envPrefix).
		WithFile(configFile).
		Build()
}
