package chain

import "context"

// Provider is an interface for blockchain providers that can initialize a
// blockchain instance.
type Provider interface {
	// Initialize sets up the chain client and returns the initialized
	// BlockChain. Calling Initialize again returns the already initialized
	// instance.
	Initialize(ctx context.Context) (BlockChain, error)
	// Name returns the name of the provider.
	Name() string
	// ChainKey returns the chain key of the chain managed by the provider.
	ChainKey() string
	// BlockChain returns the chain instance managed by the provider. You
	// must call Initialize before calling this method.
	BlockChain() BlockChain
}
