package providers

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// OverrideMode controls how user endpoints combine with the catalog
// endpoints of a chain.
type OverrideMode string

const (
	// OverrideModePrepend places user URLs ahead of the catalog endpoints.
	OverrideModePrepend OverrideMode = "prepend"
	// OverrideModeOverride replaces the catalog endpoints entirely, for
	// chains that have override entries.
	OverrideModeOverride OverrideMode = "override"
)

// UserEndpoint is a single user supplied endpoint. Chain matches either the
// chain key ("ethereum") or the decimal EVM chain ID ("1").
type UserEndpoint struct {
	Chain string `yaml:"chain"`
	URL   string `yaml:"url"`
	Label string `yaml:"label,omitempty"`
}

// UserOverrides is a user supplied endpoint manifest. The assembler attaches
// it to the Config verbatim; consumers apply it when extracting the URL list
// for a chain.
type UserOverrides struct {
	Mode      OverrideMode   `yaml:"mode"`
	Endpoints []UserEndpoint `yaml:"endpoints"`
}

// Validate checks the manifest shape.
func (o UserOverrides) Validate() error {
	switch o.Mode {
	case OverrideModePrepend, OverrideModeOverride:
	default:
		return fmt.Errorf("unknown override mode %q", o.Mode)
	}

	for i, e := range o.Endpoints {
		if e.Chain == "" {
			return fmt.Errorf("endpoint %d: chain is required", i)
		}
		if e.URL == "" {
			return fmt.Errorf("endpoint %d: url is required", i)
		}
	}

	return nil
}

// urlsFor returns the user URLs targeting the chain, in manifest order.
func (o UserOverrides) urlsFor(chain ChainConfig) []string {
	var urls []string

	id := strconv.FormatUint(chain.ChainID, 10)
	for _, e := range o.Endpoints {
		if e.Chain == chain.Key || (chain.ChainID != 0 && e.Chain == id) {
			urls = append(urls, e.URL)
		}
	}

	return urls
}

// Apply combines the chain's catalog endpoint URLs with the user URLs
// according to the override mode. Chains without matching user entries are
// returned unchanged, including in override mode. A nil receiver applies
// nothing.
func (o *UserOverrides) Apply(chain ChainConfig) []string {
	base := chain.EndpointURLs()
	if o == nil {
		return base
	}

	user := o.urlsFor(chain)
	if len(user) == 0 {
		return base
	}

	if o.Mode == OverrideModeOverride {
		return user
	}

	return append(user, base...)
}

// LoadUserOverrides reads and validates an endpoint manifest from a YAML
// file.
func LoadUserOverrides(filePath string) (UserOverrides, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return UserOverrides{}, fmt.Errorf("failed to read overrides file: %w", err)
	}

	var o UserOverrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return UserOverrides{}, fmt.Errorf("failed to unmarshal overrides YAML: %w", err)
	}

	if err := o.Validate(); err != nil {
		return UserOverrides{}, fmt.Errorf("failed to validate overrides: %w", err)
	}

	return o, nil
}
