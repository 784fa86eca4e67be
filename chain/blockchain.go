package chain

import (
	"errors"
	"iter"
	"maps"
	"reflect"
	"slices"

	"github.com/cygnus-wealth/chain-access-framework/chain/evm"
	"github.com/cygnus-wealth/chain-access-framework/chain/solana"
	"github.com/cygnus-wealth/chain-access-framework/chain/sui"
)

var ErrBlockChainNotFound = errors.New("blockchain not found")

var (
	_ BlockChain = evm.Chain{}
	_ BlockChain = solana.Chain{}
	_ BlockChain = sui.Chain{}
)

// BlockChain is an interface that represents a chain. A chain can be an EVM
// chain, a Solana chain or a Sui chain.
type BlockChain interface {
	// String returns chain name and key "<name> (<key>)"
	String() string
	// Name returns the name of the chain
	Name() string
	// ChainKey returns the stable identifier of the chain, e.g. "ethereum"
	// or "solana-mainnet".
	ChainKey() string
	Family() string
}

// BlockChains represents a collection of chains keyed by chain key. It
// provides querying capabilities for different types of chains.
type BlockChains struct {
	chains map[string]BlockChain
}

// NewBlockChains initializes a new BlockChains instance.
func NewBlockChains(chains map[string]BlockChain) BlockChains {
	// perform a copy of chains to avoid mutating the original map
	copied := make(map[string]BlockChain, len(chains))
	maps.Copy(copied, chains)

	return BlockChains{chains: copied}
}

// NewBlockChainsFromSlice initializes a new BlockChains instance from a
// slice of BlockChain.
func NewBlockChainsFromSlice(chains []BlockChain) BlockChains {
	chainsMap := make(map[string]BlockChain, len(chains))
	for _, chain := range chains {
		chainsMap[chain.ChainKey()] = chain
	}

	return NewBlockChains(chainsMap)
}

// GetByKey returns a blockchain by its chain key.
func (b BlockChains) GetByKey(key string) (BlockChain, error) {
	if chain, ok := b.chains[key]; ok {
		return chain, nil
	}

	return nil, ErrBlockChainNotFound
}

// Exists checks if a chain with the given key exists.
func (b BlockChains) Exists(key string) bool {
	_, ok := b.chains[key]

	return ok
}

// ExistsN checks if all chains with the given keys exist.
func (b BlockChains) ExistsN(keys ...string) bool {
	for _, key := range keys {
		if !b.Exists(key) {
			return false
		}
	}

	return true
}

// All returns an iterator over all chains with their keys.
func (b BlockChains) All() iter.Seq2[string, BlockChain] {
	return maps.All(b.chains)
}

// EVMChains returns a map of all EVM chains with their keys.
func (b BlockChains) EVMChains() map[string]evm.Chain {
	return getChainsByType[evm.Chain, *evm.Chain](b)
}

// SolanaChains returns a map of all Solana chains with their keys.
func (b BlockChains) SolanaChains() map[string]solana.Chain {
	return getChainsByType[solana.Chain, *solana.Chain](b)
}

// SuiChains returns a map of all Sui chains with their keys.
func (b BlockChains) SuiChains() map[string]sui.Chain {
	return getChainsByType[sui.Chain, *sui.Chain](b)
}

// ChainKeysOption defines a function type for configuring ListChainKeys.
type ChainKeysOption func(*chainKeysOptions)

type chainKeysOptions struct {
	// Use maps for faster lookups
	includedFamilies  map[string]struct{}
	excludedChainKeys map[string]struct{}
}

// WithFamily returns an option to filter chains by family. Use constants
// from the chainsel package, e.g. WithFamily(chainsel.FamilySolana). This
// can be used more than once to include multiple families.
func WithFamily(family string) ChainKeysOption {
	return func(o *chainKeysOptions) {
		if o.includedFamilies == nil {
			o.includedFamilies = make(map[string]struct{})
		}
		o.includedFamilies[family] = struct{}{}
	}
}

// WithChainKeysExclusion returns an option to exclude specific chain keys.
func WithChainKeysExclusion(keys []string) ChainKeysOption {
	return func(o *chainKeysOptions) {
		if o.excludedChainKeys == nil {
			o.excludedChainKeys = make(map[string]struct{})
		}
		for _, key := range keys {
			o.excludedChainKeys[key] = struct{}{}
		}
	}
}

// ListChainKeys returns all chain keys with optional filtering.
// Options:
// - WithFamily: filter by family, e.g. WithFamily(chainsel.FamilySolana)
// - WithChainKeysExclusion: exclude specific chain keys
func (b BlockChains) ListChainKeys(options ...ChainKeysOption) []string {
	opts := chainKeysOptions{}
	for _, option := range options {
		option(&opts)
	}

	keys := make([]string, 0, len(b.chains))
	for key, chain := range b.chains {
		if opts.excludedChainKeys != nil {
			if _, excluded := opts.excludedChainKeys[key]; excluded {
				continue
			}
		}
		if opts.includedFamilies != nil {
			if _, ok := opts.includedFamilies[chain.Family()]; !ok {
				continue
			}
		}

		keys = append(keys, key)
	}

	// Sort for consistent output
	slices.Sort(keys)

	return keys
}

// getChainsByType is a helper function to extract chains of a specific type
// from BlockChains. It accepts two type parameters: VT for the target type
// and PT for the pointer type of the same chain type, e.g.
// getChainsByType[evm.Chain, *evm.Chain](b) returns a map of string to
// evm.Chain. It handles both value and pointer types, allowing for
// flexibility in how chains are stored.
func getChainsByType[VT any, PT any](b BlockChains) map[string]VT {
	chains := make(map[string]VT, len(b.chains))
	for key, chain := range b.chains {
		switch c := any(chain).(type) {
		case VT:
			chains[key] = c
		case PT:
			val := reflect.ValueOf(c)
			if val.Kind() == reflect.Ptr && !val.IsNil() {
				elem := val.Elem()
				if elem.CanInterface() {
					if v, ok := elem.Interface().(VT); ok {
						chains[key] = v
					}
				}
			}
		}
	}

	return chains
}
