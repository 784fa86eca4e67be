// Package providers assembles the RPC endpoint configuration the dashboard
// reads chains through. Configs are built from static catalogs plus whatever
// API keys happen to be present: with no keys at all the build still yields
// a usable, keyless endpoint set for every supported chain.
package providers

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	chainsel "github.com/smartcontractkit/chain-selectors"
)

// Environment selects which chain set the assembler emits.
type Environment string

const (
	EnvironmentProduction Environment = "production"
	EnvironmentTestnet    Environment = "testnet"
	EnvironmentLocal      Environment = "local"
)

// Config is the fully resolved provider configuration for one environment.
type Config struct {
	// Environment is the value the config was built for, recorded verbatim.
	Environment Environment
	// Chains maps the chain key to its resolved config.
	Chains map[string]ChainConfig

	CircuitBreaker CircuitBreakerConfig
	Retry          RetryConfig
	HealthCheck    HealthCheckConfig
	Privacy        PrivacyConfig

	// UserOverrides carries user supplied endpoint overrides exactly as they
	// were given. Applying them is the consumer's job; see
	// UserOverrides.Apply.
	UserOverrides *UserOverrides
}

// ChainByKey retrieves a chain config by its chain key.
func (c *Config) ChainByKey(key string) (ChainConfig, error) {
	cc, ok := c.Chains[key]
	if !ok {
		return ChainConfig{}, fmt.Errorf("chain with key %q not found in configuration", key)
	}

	return cc, nil
}

// ChainByID retrieves an EVM chain config by its numeric chain ID.
func (c *Config) ChainByID(chainID uint64) (ChainConfig, error) {
	for _, cc := range c.Chains {
		if cc.Family == chainsel.FamilyEVM && cc.ChainID == chainID {
			return cc, nil
		}
	}

	return ChainConfig{}, fmt.Errorf("chain with id %d not found in configuration", chainID)
}

// EVMChains returns the EVM chain configs sorted by chain key.
func (c *Config) EVMChains() []ChainConfig {
	out := make([]ChainConfig, 0, len(c.Chains))
	for _, cc := range c.Chains {
		if cc.Family == chainsel.FamilyEVM {
			out = append(out, cc)
		}
	}

	slices.SortFunc(out, func(a, b ChainConfig) int {
		return strings.Compare(a.Key, b.Key)
	})

	return out
}

// SolanaChain returns the Solana chain config for the environment, if there
// is one.
func (c *Config) SolanaChain() (ChainConfig, bool) {
	for _, cc := range c.Chains {
		if cc.Family == chainsel.FamilySolana {
			return cc, true
		}
	}

	return ChainConfig{}, false
}

// ChainKeys returns every chain key in the config, sorted.
func (c *Config) ChainKeys() []string {
	keys := slices.Collect(maps.Keys(c.Chains))
	slices.Sort(keys)

	return keys
}

// Validate checks every chain config in the collection.
func (c *Config) Validate() error {
	for _, key := range c.ChainKeys() {
		if err := c.Chains[key].Validate(); err != nil {
			return fmt.Errorf("chain %s: %w", key, err)
		}
	}

	return nil
}
