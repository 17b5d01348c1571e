// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// Provider loads the run configuration from explicit options.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*RunConfig, error)
}

type fileProvider struct{}

// NewProvider creates the default configuration provider.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load reads configuration from the requested sources.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*RunConfig, error) {
	return Load(ctx, opts)
}
