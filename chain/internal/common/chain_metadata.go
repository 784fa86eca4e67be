package common //nolint:revive // var-naming: This is an internal package for common code that is shared between chains.

import "fmt"

// ChainMetadata is a base struct holding the identity of a chain. It should
// be embedded in all chain structs.
type ChainMetadata struct {
	// Key is the stable chain identifier, e.g. "ethereum" or
	// "solana-mainnet".
	Key string
	// ID is the numeric chain ID for EVM chains. It is zero elsewhere.
	ID uint64
	// ChainName is the human readable chain name.
	ChainName string
	// ChainFamily is one of the chain-selectors family constants.
	ChainFamily string
}

// ChainKey returns the chain key of the chain.
func (c ChainMetadata) ChainKey() string {
	return c.Key
}

// ChainID returns the numeric chain ID. It is zero for non-EVM chains.
func (c ChainMetadata) ChainID() uint64 {
	return c.ID
}

// String returns chain name and key "<name> (<key>)".
func (c ChainMetadata) String() string {
	return fmt.Sprintf("%s (%s)", c.Name(), c.Key)
}

// Name returns the name of the chain, falling back to the key when no name
// was set.
func (c ChainMetadata) Name() string {
	if c.ChainName == "" {
		return c.Key
	}

	return c.ChainName
}

// Family returns the family of the chain.
func (c ChainMetadata) Family() string {
	return c.ChainFamily
}
