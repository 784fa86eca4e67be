package provider

import (
	"testing"

	chainsel "github.com/smartcontractkit/chain-selectors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cygnus-wealth/chain-access-framework/chain/sui"
)

func Test_RPCChainProviderConfig_validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  RPCChainProviderConfig
		wantErr string
	}{
		{
			name: "valid config",
			config: RPCChainProviderConfig{
				ChainName: "Sui",
				RPCURL:    "http://localhost:9000",
			},
		},
		{
			name: "missing chain name",
			config: RPCChainProviderConfig{
				RPCURL: "http://localhost:9000",
			},
			wantErr: "chain name is required",
		},
		{
			name: "missing rpc url",
			config: RPCChainProviderConfig{
				ChainName: "Sui",
			},
			wantErr: "rpc url is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.config.validate()
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func Test_RPCChainProvider_Initialize(t *testing.T) {
	t.Parallel()

	existingChain := &sui.Chain{}

	tests := []struct {
		name              string
		giveKey           string
		giveConfig        RPCChainProviderConfig
		giveExistingChain *sui.Chain
		wantErr           string
	}{
		{
			name:    "valid initialization",
			giveKey: "sui-mainnet",
			giveConfig: RPCChainProviderConfig{
				ChainName: "Sui",
				RPCURL:    "https://fullnode.mainnet.sui.io:443",
			},
		},
		{
			name:              "returns an already initialized chain",
			giveKey:           "sui-mainnet",
			giveExistingChain: existingChain,
		},
		{
			name:       "fails config validation",
			giveKey:    "sui-mainnet",
			giveConfig: RPCChainProviderConfig{},
			wantErr:    "failed to validate provider config: chain name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := NewRPCChainProvider(tt.giveKey, tt.giveConfig)

			if tt.giveExistingChain != nil {
				p.chain = tt.giveExistingChain
			}

			got, err := p.Initialize(t.Context())
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, p.chain)

				gotChain, ok := got.(sui.Chain)
				require.True(t, ok, "expected got to be of type sui.Chain")

				if tt.giveExistingChain != nil {
					return
				}

				assert.Equal(t, tt.giveKey, gotChain.ChainKey())
				assert.Equal(t, tt.giveConfig.ChainName, gotChain.Name())
				assert.Equal(t, chainsel.FamilySui, gotChain.Family())
				assert.NotNil(t, gotChain.Client)
				assert.Equal(t, tt.giveConfig.RPCURL, gotChain.URL)
			}
		})
	}
}

func Test_RPCChainProvider_Name(t *testing.T) {
	t.Parallel()

	p := &RPCChainProvider{}
	assert.Equal(t, "Sui RPC Chain Provider", p.Name())
}

func Test_RPCChainProvider_ChainKey(t *testing.T) {
	t.Parallel()

	p := &RPCChainProvider{key: "sui-mainnet"}
	assert.Equal(t, "sui-mainnet", p.ChainKey())
}

func Test_RPCChainProvider_BlockChain(t *testing.T) {
	t.Parallel()

	chain := &sui.Chain{}

	p := &RPCChainProvider{
		chain: chain,
	}

	assert.Equal(t, *chain, p.BlockChain())
}
