package provider

import (
	"context"
	"errors"
	"fmt"

	sui_sdk "github.com/block-vision/sui-go-sdk/sui"
	chainsel "github.com/smartcontractkit/chain-selectors"

	"github.com/cygnus-wealth/chain-access-framework/chain"
	"github.com/cygnus-wealth/chain-access-framework/chain/sui"
)

// RPCChainProviderConfig holds the configuration to initialize the RPCChainProvider.
type RPCChainProviderConfig struct {
	// Required: A human readable name for the chain, used in logs.
	ChainName string
	// Required: The RPC URL to connect to the Sui node.
	RPCURL string
}

// validate checks if the RPCChainProviderConfig is valid.
func (c RPCChainProviderConfig) validate() error {
	if c.ChainName == "" {
		return errors.New("chain name is required")
	}
	if c.RPCURL == "" {
		return errors.New("rpc url is required")
	}

	return nil
}

var _ chain.Provider = (*RPCChainProvider)(nil)

// RPCChainProvider is a chain provider that provides a chain that connects to a Sui node via RPC.
type RPCChainProvider struct {
	// Sui chain key, used to identify the chain.
	key string

	// RPCChainProviderConfig holds the configuration for the RPCChainProvider.
	config RPCChainProviderConfig

	// chain is the Sui chain instance that this provider manages. The Initialize method
	// sets up the chain.
	chain *sui.Chain
}

// NewRPCChainProvider creates a new RPCChainProvider with the given chain key and configuration.
func NewRPCChainProvider(key string, config RPCChainProviderConfig) *RPCChainProvider {
	return &RPCChainProvider{
		key:    key,
		config: config,
	}
}

// Initialize initializes the RPCChainProvider, validating the configuration and setting up the
// Sui chain client. No connection is established until the first query.
func (p *RPCChainProvider) Initialize(_ context.Context) (chain.BlockChain, error) {
	if p.chain != nil {
		return *p.chain, nil // Already initialized
	}

	// Validate the provider configuration
	if err := p.config.validate(); err != nil {
		return nil, fmt.Errorf("failed to validate provider config: %w", err)
	}

	client := sui_sdk.NewSuiClient(p.config.RPCURL)

	p.chain = &sui.Chain{
		ChainMetadata: sui.ChainMetadata{
			Key:         p.key,
			ChainName:   p.config.ChainName,
			ChainFamily: chainsel.FamilySui,
		},
		Client: client,
		URL:    p.config.RPCURL,
	}

	return *p.chain, nil
}

// Name returns the name of the RPCChainProvider.
func (*RPCChainProvider) Name() string {
	return "Sui RPC Chain Provider"
}

// ChainKey returns the chain key of the Sui chain managed by this provider.
func (p *RPCChainProvider) ChainKey() string {
	return p.key
}

// BlockChain returns the Sui chain instance managed by this provider. You must call Initialize
// before using this method to ensure the chain is properly set up.
func (p *RPCChainProvider) BlockChain() chain.BlockChain {
	return *p.chain
}
