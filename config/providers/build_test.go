package providers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Build_ZeroConfig(t *testing.T) {
	t.Parallel()

	// No keys, no overrides: every supported chain must still come back with
	// a usable endpoint list.
	cfg := Build(EnvironmentProduction)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, EnvironmentProduction, cfg.Environment)
	assert.Equal(t,
		[]string{"arbitrum", "base", "ethereum", "optimism", "polygon", "solana-mainnet"},
		cfg.ChainKeys(),
	)
	assert.Nil(t, cfg.UserOverrides)

	keyed := map[string]struct{}{
		ProviderDRPC:      {},
		ProviderAlchemy:   {},
		ProviderInfura:    {},
		ProviderQuickNode: {},
		ProviderHelius:    {},
	}

	for key, cc := range cfg.Chains {
		assert.NotEmpty(t, cc.Endpoints, "chain %s has no endpoints", key)

		for _, e := range cc.Endpoints {
			_, isKeyed := keyed[e.Provider]
			assert.False(t, isKeyed, "chain %s carries keyed endpoint %s without a key", key, e.Provider)
		}
	}
}

func Test_Build_Environments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		giveEnv Environment
		want    []string
	}{
		{
			name:    "production",
			giveEnv: EnvironmentProduction,
			want:    []string{"arbitrum", "base", "ethereum", "optimism", "polygon", "solana-mainnet"},
		},
		{
			name:    "testnet",
			giveEnv: EnvironmentTestnet,
			want:    []string{"arbitrum-sepolia", "base-sepolia", "optimism-sepolia", "polygon-amoy", "sepolia", "solana-devnet"},
		},
		{
			name:    "local",
			giveEnv: EnvironmentLocal,
			want:    []string{"anvil", "solana-devnet"},
		},
		{
			name:    "unknown environment falls back to production",
			giveEnv: Environment("staging"),
			want:    []string{"arbitrum", "base", "ethereum", "optimism", "polygon", "solana-mainnet"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Build(tt.giveEnv)
			require.NoError(t, cfg.Validate())

			assert.Equal(t, tt.want, cfg.ChainKeys())
			assert.Equal(t, tt.giveEnv, cfg.Environment)
		})
	}
}

func Test_Build_Deterministic(t *testing.T) {
	t.Parallel()

	overrides := UserOverrides{
		Mode:      OverrideModePrepend,
		Endpoints: []UserEndpoint{{Chain: "ethereum", URL: "https://my-node.example.com"}},
	}

	first := Build(EnvironmentProduction, WithAPIKeys(testAPIKeys()), WithUserOverrides(overrides))
	second := Build(EnvironmentProduction, WithAPIKeys(testAPIKeys()), WithUserOverrides(overrides))

	require.Equal(t, first, second)
}

func Test_Build_WhitespaceKeysAreAbsent(t *testing.T) {
	t.Parallel()

	withBlankKeys := Build(EnvironmentProduction, WithAPIKeys(APIKeys{
		Alchemy:   "   ",
		DRPC:      "\t\n",
		Helius:    " ",
		Infura:    "",
		QuickNode: "  ",
	}))

	require.Equal(t, Build(EnvironmentProduction), withBlankKeys)
}

func Test_Build_TrimsKeys(t *testing.T) {
	t.Parallel()

	cfg := Build(EnvironmentProduction, WithAPIKeys(APIKeys{DRPC: "  drpc-key \n"}))

	eth, err := cfg.ChainByKey("ethereum")
	require.NoError(t, err)

	assert.Contains(t, eth.EndpointURLs(), "https://lb.drpc.org/ogrpc?network=ethereum&dkey=drpc-key")
}

func Test_Build_KeyedEndpointShape(t *testing.T) {
	t.Parallel()

	cfg := Build(EnvironmentProduction, WithAPIKeys(APIKeys{DRPC: "drpc-key"}))

	for _, cc := range cfg.EVMChains() {
		byProvider := providersOf(cc.Endpoints)
		require.Equal(t, []Role{RoleSecondary}, byProvider[ProviderDRPC], "chain %s", cc.Key)
	}
}

func Test_Build_NoUnresolvedURLs(t *testing.T) {
	t.Parallel()

	keySets := []APIKeys{{}, testAPIKeys()}
	envs := []Environment{EnvironmentProduction, EnvironmentTestnet, EnvironmentLocal}

	for _, env := range envs {
		for _, keys := range keySets {
			cfg := Build(env, WithAPIKeys(keys))

			for chainKey, cc := range cfg.Chains {
				for _, e := range cc.Endpoints {
					assert.NotContains(t, e.URL, "undefined", "chain %s provider %s", chainKey, e.Provider)
					assert.NotContains(t, e.URL, "%!", "chain %s provider %s", chainKey, e.Provider)
				}
			}
		}
	}
}

func Test_Build_UserOverridesCarriedVerbatim(t *testing.T) {
	t.Parallel()

	overrides := UserOverrides{
		Mode: OverrideModeOverride,
		Endpoints: []UserEndpoint{
			{Chain: "ethereum", URL: "https://my-node.example.com", Label: "home node"},
		},
	}

	cfg := Build(EnvironmentProduction, WithUserOverrides(overrides))

	require.NotNil(t, cfg.UserOverrides)
	assert.Equal(t, overrides, *cfg.UserOverrides)

	// The catalog endpoints themselves must be untouched by overrides.
	plain := Build(EnvironmentProduction)
	assert.Equal(t, plain.Chains, cfg.Chains)
}

func Test_Build_FixedOperationalDefaults(t *testing.T) {
	t.Parallel()

	for _, env := range []Environment{EnvironmentProduction, EnvironmentTestnet, EnvironmentLocal} {
		cfg := Build(env, WithAPIKeys(testAPIKeys()))

		assert.Equal(t, defaultCircuitBreaker(), cfg.CircuitBreaker)
		assert.Equal(t, defaultRetry(), cfg.Retry)
		assert.Equal(t, defaultHealthCheck(), cfg.HealthCheck)
		assert.Equal(t, defaultPrivacy(), cfg.Privacy)

		for _, cc := range cfg.Chains {
			assert.Equal(t, defaultTotalOperationTimeout, cc.TotalOperationTimeout)
			assert.Equal(t, defaultCacheStaleAcceptance, cc.CacheStaleAcceptance)
		}
	}
}

func Test_Config_ChainByKey(t *testing.T) {
	t.Parallel()

	cfg := Build(EnvironmentProduction)

	eth, err := cfg.ChainByKey("ethereum")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), eth.ChainID)

	_, err = cfg.ChainByKey("dogecoin")
	require.EqualError(t, err, `chain with key "dogecoin" not found in configuration`)
}

func Test_Config_ChainByID(t *testing.T) {
	t.Parallel()

	cfg := Build(EnvironmentProduction)

	base, err := cfg.ChainByID(8453)
	require.NoError(t, err)
	assert.Equal(t, "base", base.Key)

	_, err = cfg.ChainByID(999999)
	require.EqualError(t, err, "chain with id 999999 not found in configuration")
}

func Test_Config_EVMChains(t *testing.T) {
	t.Parallel()

	cfg := Build(EnvironmentProduction)

	evmChains := cfg.EVMChains()
	require.Len(t, evmChains, 5)

	keys := make([]string, 0, len(evmChains))
	for _, cc := range evmChains {
		keys = append(keys, cc.Key)
	}
	assert.Equal(t, []string{"arbitrum", "base", "ethereum", "optimism", "polygon"}, keys)
}

func Test_Config_SolanaChain(t *testing.T) {
	t.Parallel()

	prod := Build(EnvironmentProduction)
	sol, ok := prod.SolanaChain()
	require.True(t, ok)
	assert.Equal(t, "solana-mainnet", sol.Key)

	testnet := Build(EnvironmentTestnet)
	sol, ok = testnet.SolanaChain()
	require.True(t, ok)
	assert.Equal(t, "solana-devnet", sol.Key)
}

func Test_Config_EndpointsAreComplete(t *testing.T) {
	t.Parallel()

	cfg := Build(EnvironmentProduction, WithAPIKeys(testAPIKeys()))

	for chainKey, cc := range cfg.Chains {
		for _, e := range cc.Endpoints {
			assert.True(t, strings.HasPrefix(e.URL, "https://") || strings.HasPrefix(e.URL, "http://"),
				"chain %s provider %s url %q is not absolute", chainKey, e.Provider, e.URL)
			assert.Positive(t, e.RateLimitRPS)
			assert.Positive(t, e.Timeout)
		}
	}
}
