// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific bindery.toml when set.
	ConfigFilePath string
	// ConfigDirPath overrides the directory searched for bindery.toml.
	ConfigDirPath string
}

// Provider loads configuration from explicit options. Commands depend on
// this interface so tests can substitute fixed configurations.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, error)
}

// NewProvider returns the file-backed provider: TOML parsing, CUE schema
// validation, BINDERY_ environment overrides, and section defaults.
func NewProvider() Provider {
	return &fileProvider{}
}

type fileProvider struct{}

func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
