package provider

import (
	"context"
	"errors"
	"fmt"

	solrpc "github.com/gagliardetto/solana-go/rpc"
	chainsel "github.com/smartcontractkit/chain-selectors"

	"github.com/cygnus-wealth/chain-access-framework/chain"
	"github.com/cygnus-wealth/chain-access-framework/chain/solana"
)

// RPCChainProviderConfig holds the configuration to initialize the RPCChainProvider.
type RPCChainProviderConfig struct {
	// Required: A human readable name for the chain, used in logs.
	ChainName string
	// Required: The HTTP RPC URL to connect to the Solana node.
	HTTPURL string
	// Optional: Additional HTTP RPC URLs used as backups when the primary fails, in fallback
	// order.
	BackupURLs []string
}

// validate checks if the RPCChainProviderConfig is valid.
func (c RPCChainProviderConfig) validate() error {
	if c.ChainName == "" {
		return errors.New("chain name is required")
	}
	if c.HTTPURL == "" {
		return errors.New("http url is required")
	}

	return nil
}

var _ chain.Provider = (*RPCChainProvider)(nil)

// RPCChainProvider is a chain provider that provides a chain that connects to a Solana node via
// RPC.
type RPCChainProvider struct {
	// Solana chain key, used to identify the chain.
	key string

	// RPCChainProviderConfig holds the configuration for the RPCChainProvider.
	config RPCChainProviderConfig

	// chain is the Solana chain instance that this provider manages. The Initialize method
	// sets up the chain.
	chain *solana.Chain
}

// NewRPCChainProvider creates a new RPCChainProvider with the given chain key and configuration.
func NewRPCChainProvider(key string, config RPCChainProviderConfig) *RPCChainProvider {
	return &RPCChainProvider{
		key:    key,
		config: config,
	}
}

// Initialize initializes the RPCChainProvider, setting up the Solana clients with the provided
// HTTP RPC URLs. No connection is established until the first query. It returns the initialized
// Solana chain instance.
func (p *RPCChainProvider) Initialize(_ context.Context) (chain.BlockChain, error) {
	if p.chain != nil {
		return *p.chain, nil // Already initialized
	}

	// Validate the provider configuration
	if err := p.config.validate(); err != nil {
		return nil, fmt.Errorf("failed to validate provider config: %w", err)
	}

	// Initialize the Solana clients with the provided HTTP RPC URLs
	client := solrpc.New(p.config.HTTPURL)

	backups := make([]*solrpc.Client, 0, len(p.config.BackupURLs))
	for _, url := range p.config.BackupURLs {
		backups = append(backups, solrpc.New(url))
	}

	urls := make([]string, 0, len(p.config.BackupURLs)+1)
	urls = append(urls, p.config.HTTPURL)
	urls = append(urls, p.config.BackupURLs...)

	p.chain = &solana.Chain{
		ChainMetadata: solana.ChainMetadata{
			Key:         p.key,
			ChainName:   p.config.ChainName,
			ChainFamily: chainsel.FamilySolana,
		},
		Client:  client,
		Backups: backups,
		URL:     p.config.HTTPURL,
		URLs:    urls,
	}

	return *p.chain, nil
}

// Name returns the name of the RPCChainProvider.
func (*RPCChainProvider) Name() string {
	return "Solana RPC Chain Provider"
}

// ChainKey returns the chain key of the Solana chain managed by this provider.
func (p *RPCChainProvider) ChainKey() string {
	return p.key
}

// BlockChain returns the Solana chain instance managed by this provider. You must call Initialize
// before using this method to ensure the chain is properly set up.
func (p *RPCChainProvider) BlockChain() chain.BlockChain {
	return *p.chain
}
