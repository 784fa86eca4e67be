// Package chains provides multi-blockchain chain loading for the CygnusWealth
// chain access framework.
//
// This package implements a unified entry point for turning a resolved
// endpoint configuration into live blockchain connections across the EVM,
// Solana and Sui families. EVM chains are loaded concurrently, and every
// client is constructed with the full fallback endpoint list for its chain so
// that a failing provider never takes the portfolio down with it.
//
// # Chain Loading Process
//
// The chain loading process follows these steps:
//
//  1. Resolve the endpoint URL list for each chain, applying user overrides
//  2. Dial and health check the EVM endpoints, dropping the dead ones
//  3. Construct Solana and Sui clients (these connect lazily, on first query)
//  4. Skip chains with no reachable endpoint, logging a warning for each
//  5. Return a unified BlockChains collection keyed by chain key
//
// # Usage Example
//
//	ctx := context.Background()
//	lggr, _ := logger.New()
//
//	// Resolve the endpoint configuration for production, with whatever API
//	// keys the environment provides.
//	cfg := providers.Build(providers.EnvironmentProduction)
//
//	// Connect everything.
//	chains, err := chains.LoadChains(ctx, lggr, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Query the loaded chains.
//	for key, chain := range chains.All() {
//		fmt.Println(key, chain.Name())
//	}
package chains
