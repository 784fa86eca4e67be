package provider

import (
	"context"
	"errors"
	"fmt"

	chainsel "github.com/smartcontractkit/chain-selectors"

	"github.com/cygnus-wealth/chain-access-framework/chain"
	"github.com/cygnus-wealth/chain-access-framework/chain/evm"
	"github.com/cygnus-wealth/chain-access-framework/chain/evm/provider/rpcclient"
	"github.com/cygnus-wealth/chain-access-framework/pkg/logger"
)

// RPCChainProviderConfig holds the configuration to initialize the RPCChainProvider.
type RPCChainProviderConfig struct {
	// Required: The numeric chain ID of the EVM chain, e.g. 1 for Ethereum mainnet.
	ChainID uint64
	// Required: A human readable name for the chain, used in logs.
	ChainName string
	// Required: At least one RPC must be provided to connect to the EVM node. RPCs are tried in
	// order, so put the preferred endpoints first.
	RPCs []rpcclient.RPC
	// Optional: ClientOpts are additional options to configure the MultiClient used by the
	// RPCChainProvider. These options are applied to the MultiClient instance created by the
	// RPCChainProvider. You can use this to adjust retry behavior or timeouts for the RPC
	// connections.
	ClientOpts []func(client *rpcclient.MultiClient)
	// Optional: Logger is the logger to use for the RPCChainProvider. If not provided, a default
	// logger will be used.
	Logger logger.Logger
}

// validate checks if the RPCChainProviderConfig is valid.
func (c RPCChainProviderConfig) validate() error {
	if c.ChainID == 0 {
		return errors.New("chain id is required")
	}
	if c.ChainName == "" {
		return errors.New("chain name is required")
	}
	if len(c.RPCs) == 0 {
		return errors.New("at least one RPC is required")
	}

	return nil
}

// RPCChainProvider is a chain provider that provides a chain that connects to an EVM node via RPC.
type RPCChainProvider struct {
	key    string
	config RPCChainProviderConfig

	chain *evm.Chain
}

// NewRPCChainProvider creates a new RPCChainProvider with the given chain key and configuration.
func NewRPCChainProvider(
	key string, config RPCChainProviderConfig,
) *RPCChainProvider {
	return &RPCChainProvider{
		key:    key,
		config: config,
	}
}

// Initialize initializes the RPCChainProvider, setting up the EVM chain with the provided
// configuration. It returns the initialized chain.BlockChain or an error if initialization fails.
func (p *RPCChainProvider) Initialize(ctx context.Context) (chain.BlockChain, error) {
	if p.chain != nil {
		return *p.chain, nil // Already initialized
	}

	// Set up the logger if not provided
	if p.config.Logger == nil {
		lggr, err := logger.New()
		if err != nil {
			return nil, fmt.Errorf("failed to create default logger: %w", err)
		}
		p.config.Logger = lggr
	}

	// Validate the provider configuration
	if err := p.config.validate(); err != nil {
		return nil, fmt.Errorf("failed to validate provider config: %w", err)
	}

	// Setup the client.
	client, err := rpcclient.NewMultiClient(ctx, p.config.Logger, rpcclient.RPCConfig{
		ChainName: p.config.ChainName,
		RPCs:      p.config.RPCs,
	}, p.config.ClientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-client: %w", err)
	}

	urls := make([]string, 0, len(p.config.RPCs))
	for _, rpc := range p.config.RPCs {
		urls = append(urls, rpc.HTTPURL)
	}

	p.chain = &evm.Chain{
		ChainMetadata: evm.ChainMetadata{
			Key:         p.key,
			ID:          p.config.ChainID,
			ChainName:   p.config.ChainName,
			ChainFamily: chainsel.FamilyEVM,
		},
		Client:  client,
		RPCURLs: urls,
	}

	return *p.chain, nil
}

// Name returns the name of the RPCChainProvider.
func (*RPCChainProvider) Name() string {
	return "EVM RPC Chain Provider"
}

// ChainKey returns the chain key of the EVM chain managed by this provider.
func (p *RPCChainProvider) ChainKey() string {
	return p.key
}

// BlockChain returns the EVM chain instance managed by this provider. You must call Initialize
// before using this method to ensure the chain is properly set up.
func (p *RPCChainProvider) BlockChain() chain.BlockChain {
	return *p.chain
}

var _ chain.Provider = (*RPCChainProvider)(nil)
