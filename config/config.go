// Package config ties the runtime inputs to the provider assembler: it
// reads the host environment, detects the target environment and builds the
// provider configuration in one call.
package config

import (
	"fmt"

	cfgenv "github.com/cygnus-wealth/chain-access-framework/config/env"
	"github.com/cygnus-wealth/chain-access-framework/config/providers"
)

// Config is the top level configuration: the raw runtime inputs and the
// provider configuration assembled from them.
type Config struct {
	Env       *cfgenv.Config
	Providers *providers.Config
}

// Load reads the host environment and assembles the provider configuration
// for the detected environment. overridesPath may be empty when the user has
// no endpoint manifest.
func Load(overridesPath string) (*Config, error) {
	envCfg, err := cfgenv.LoadEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	opts := []providers.BuildOption{
		providers.WithAPIKeys(envCfg.APIKeys()),
	}

	if overridesPath != "" {
		overrides, err := providers.LoadUserOverrides(overridesPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load user overrides: %w", err)
		}

		opts = append(opts, providers.WithUserOverrides(overrides))
	}

	return &Config{
		Env:       envCfg,
		Providers: providers.Build(envCfg.DetectEnvironment(), opts...),
	}, nil
}
