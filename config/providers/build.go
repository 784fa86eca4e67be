package providers

// BuildOption modifies the assembler inputs.
type BuildOption func(*buildConfig)

type buildConfig struct {
	keys      APIKeys
	overrides *UserOverrides
}

// WithAPIKeys supplies provider API keys to the build. Keys are trimmed, and
// a whitespace-only key is treated as absent.
func WithAPIKeys(keys APIKeys) BuildOption {
	return func(cfg *buildConfig) {
		cfg.keys = keys
	}
}

// WithUserOverrides attaches user supplied endpoint overrides. The build
// carries them on the resulting Config untouched rather than merging them
// into the chain endpoint lists, so consumers decide when to apply them.
func WithUserOverrides(overrides UserOverrides) BuildOption {
	return func(cfg *buildConfig) {
		cfg.overrides = &overrides
	}
}

// Build assembles the provider configuration for an environment.
//
// Build is pure: it performs no I/O, the same inputs always produce the same
// Config, and it never fails. With no options it emits a fully usable
// keyless configuration, which is the zero-config guarantee the dashboard
// relies on. Unknown environments receive the production chain set.
func Build(env Environment, opts ...BuildOption) *Config {
	bc := &buildConfig{}
	for _, opt := range opts {
		opt(bc)
	}

	keys := bc.keys.normalize()

	chains := make(map[string]ChainConfig)
	for _, def := range evmChainDefinitions(env) {
		cc := buildEVMChainConfig(def, keys)
		chains[cc.Key] = cc
	}

	solKey := solanaChainKey(env)
	chains[solKey] = buildSolanaChainConfig(solKey, keys)

	return &Config{
		Environment:    env,
		Chains:         chains,
		CircuitBreaker: defaultCircuitBreaker(),
		Retry:          defaultRetry(),
		HealthCheck:    defaultHealthCheck(),
		Privacy:        defaultPrivacy(),
		UserOverrides:  bc.overrides,
	}
}
