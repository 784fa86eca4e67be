// Package config loads the framework's runtime inputs from the host
// environment and optional config files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/cygnus-wealth/chain-access-framework/config/providers"
)

// Config holds the runtime inputs the provider assembler consumes: the
// target environment and any provider API keys.
type Config struct {
	Environment string     `mapstructure:"environment" yaml:"environment"`
	Keys        KeysConfig `mapstructure:"keys" yaml:"keys"`
}

// KeysConfig holds the provider API keys.
//
// WARNING: This data type contains sensitive fields and should not be logged
// or committed to file based configuration.
type KeysConfig struct {
	Alchemy   string `mapstructure:"alchemy" yaml:"alchemy"`     // Secret: Alchemy app API key
	DRPC      string `mapstructure:"drpc" yaml:"drpc"`           // Secret: dRPC dkey
	Helius    string `mapstructure:"helius" yaml:"helius"`       // Secret: Helius API key
	Infura    string `mapstructure:"infura" yaml:"infura"`       // Secret: Infura project ID
	QuickNode string `mapstructure:"quicknode" yaml:"quicknode"` // Secret: QuickNode endpoint token
}

// APIKeys converts the loaded keys into the assembler's key set. Values are
// passed through as is; the assembler treats whitespace-only keys as absent.
func (c *Config) APIKeys() providers.APIKeys {
	return providers.APIKeys{
		Alchemy:   c.Keys.Alchemy,
		DRPC:      c.Keys.DRPC,
		Helius:    c.Keys.Helius,
		Infura:    c.Keys.Infura,
		QuickNode: c.Keys.QuickNode,
	}
}

// DetectEnvironment resolves the target environment. An explicit environment
// value wins, CI runs default to testnet, and everything else is production.
func (c *Config) DetectEnvironment() providers.Environment {
	env := providers.Environment(strings.ToLower(strings.TrimSpace(c.Environment)))
	switch env {
	case providers.EnvironmentProduction, providers.EnvironmentTestnet, providers.EnvironmentLocal:
		return env
	}

	if isCI() {
		return providers.EnvironmentTestnet
	}

	return providers.EnvironmentProduction
}

// Load reads configuration from the file at filePath when it exists, with
// environment variables taking precedence over file values.
func Load(filePath string) (*Config, error) {
	v := viper.New()

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
		v.SetConfigFile(filePath)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadEnv reads configuration from environment variables only.
func LoadEnv() (*Config, error) {
	v := viper.New()

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadFile reads configuration from a file, ignoring environment variables.
func LoadFile(filePath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(filePath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// envBindings maps configuration keys to the environment variables that can
// set them. The first name is the preferred CYGNUS_ prefixed form; the
// remaining names are bare legacy variables kept for setups that predate the
// prefix. Viper checks the variables in order and uses the first one set.
var envBindings = map[string][]string{
	"environment":    {"CYGNUS_ENVIRONMENT", "CYGNUS_ENV"},
	"keys.alchemy":   {"CYGNUS_ALCHEMY_API_KEY", "ALCHEMY_API_KEY"},
	"keys.drpc":      {"CYGNUS_DRPC_API_KEY", "DRPC_API_KEY"},
	"keys.helius":    {"CYGNUS_HELIUS_API_KEY", "HELIUS_API_KEY"},
	"keys.infura":    {"CYGNUS_INFURA_API_KEY", "INFURA_API_KEY"},
	"keys.quicknode": {"CYGNUS_QUICKNODE_API_KEY", "QUICKNODE_API_KEY"},
}

// bindEnvs binds the environment variables to their configuration keys.
func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		args := slices.Insert(envs, 0, key)
		if err := v.BindEnv(args...); err != nil {
			return fmt.Errorf("failed to bind env vars %v: %w", envs, err)
		}
	}

	return nil
}

// isCI reports whether we are running under a CI system.
func isCI() bool {
	return os.Getenv("CI") == "true"
}
