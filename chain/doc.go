/*
Package chain provides the core blockchain abstraction for the chain access
framework, supporting multiple blockchain families through a unified
interface.

# Overview

The chain package defines the BlockChain interface that every chain
implementation satisfies, and a collection type for managing and querying
the chains a dashboard session has open across families.

# Core BlockChain Interface

Every chain implementation satisfies the BlockChain interface:

	import "github.com/cygnus-wealth/chain-access-framework/chain"

	// BlockChain provides basic chain identity
	type BlockChain interface {
		String() string   // Human-readable chain info
		Name() string     // Chain name
		ChainKey() string // Stable chain identifier
		Family() string   // Blockchain family (evm, solana, sui)
	}

	func printChainInfo(bc chain.BlockChain) {
		fmt.Printf("Chain: %s\n", bc.String())  // "Ethereum (ethereum)"
		fmt.Printf("Name: %s\n", bc.Name())     // "Ethereum"
		fmt.Printf("Key: %s\n", bc.ChainKey())  // "ethereum"
		fmt.Printf("Family: %s\n", bc.Family()) // "evm"
	}

# BlockChains Collection

The BlockChains collection holds every chain loaded for a session:

	import (
		"github.com/cygnus-wealth/chain-access-framework/chain"
		"github.com/cygnus-wealth/chain-access-framework/chain/evm"
	)

	chains := chain.NewBlockChains(map[string]chain.BlockChain{
		"ethereum":       evmMainnet,
		"base":           baseChain,
		"solana-mainnet": solanaMainnet,
	})

	if chains.Exists("ethereum") {
		fmt.Println("Ethereum is available")
	}

	if chains.ExistsN("ethereum", "base") {
		fmt.Println("Both Ethereum and Base are available")
	}

# Family-Specific Chain Access

Retrieve chains by their blockchain family with type safety:

	// Get all EVM chains, typed as evm.Chain
	evmChains := chains.EVMChains()
	for key, evmChain := range evmChains {
		balance, err := evmChain.Client.BalanceAt(ctx, account, nil)
		// ...
	}

	// Similarly for other families
	solanaChains := chains.SolanaChains()
	suiChains := chains.SuiChains()

# Iterating and Filtering

	// Iterate over all chains
	for key, blockchain := range chains.All() {
		fmt.Printf("Processing chain %s from family %s\n", key, blockchain.Family())
	}

	// List chain keys, optionally filtered
	evmKeys := chains.ListChainKeys(
		chain.WithFamily(chainsel.FamilyEVM),
		chain.WithChainKeysExclusion([]string{"base"}),
	)

# Provider System

The Provider interface abstracts how a chain client gets built:

	func setupChain(ctx context.Context, provider chain.Provider) (chain.BlockChain, error) {
		blockchain, err := provider.Initialize(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize %s: %w", provider.Name(), err)
		}

		return blockchain, nil
	}

Providers live in the family subpackages, e.g.
chain/evm/provider.RPCChainProvider builds an EVM chain backed by an ordered
list of RPC endpoints with automatic fallback.
*/
package chain
