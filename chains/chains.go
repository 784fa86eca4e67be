package chains

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	solrpc "github.com/gagliardetto/solana-go/rpc"
	chainsel "github.com/smartcontractkit/chain-selectors"

	fchain "github.com/cygnus-wealth/chain-access-framework/chain"
	fevm "github.com/cygnus-wealth/chain-access-framework/chain/evm"
	evmprov "github.com/cygnus-wealth/chain-access-framework/chain/evm/provider"
	evmclient "github.com/cygnus-wealth/chain-access-framework/chain/evm/provider/rpcclient"
	solanaprov "github.com/cygnus-wealth/chain-access-framework/chain/solana/provider"
	suiprov "github.com/cygnus-wealth/chain-access-framework/chain/sui/provider"
	"github.com/cygnus-wealth/chain-access-framework/config/providers"
	"github.com/cygnus-wealth/chain-access-framework/pkg/logger"
)

// suiNetworks maps each environment to the public Sui fullnode to connect
// to. The provider catalogs cover EVM and Solana only, so Sui endpoints are
// resolved here.
var suiNetworks = map[providers.Environment]struct {
	key  string
	name string
	url  string
}{
	providers.EnvironmentProduction: {
		key: "sui-mainnet", name: "Sui", url: "https://fullnode.mainnet.sui.io:443",
	},
	providers.EnvironmentTestnet: {
		key: "sui-testnet", name: "Sui Testnet", url: "https://fullnode.testnet.sui.io:443",
	},
	providers.EnvironmentLocal: {
		key: "sui-localnet", name: "Sui Localnet", url: "http://127.0.0.1:9000",
	},
}

// LoadOption configures the behavior of LoadChains.
type LoadOption func(*loadConfig)

type loadConfig struct {
	evmClientOpts []func(client *evmclient.MultiClient)
	withoutDial   bool
	withoutSolana bool
	withoutSui    bool
}

// WithEVMClientOpts appends additional options applied to every EVM
// MultiClient created by LoadChains. Use this to adjust retry behavior or
// timeouts beyond the configuration defaults.
func WithEVMClientOpts(opts ...func(client *evmclient.MultiClient)) LoadOption {
	return func(c *loadConfig) {
		c.evmClientOpts = append(c.evmClientOpts, opts...)
	}
}

// WithoutDial constructs EVM chains without dialing their endpoints. The
// resulting chains carry the resolved URL lists but no client. Solana and
// Sui clients never dial at construction time, so they are unaffected.
func WithoutDial() LoadOption {
	return func(c *loadConfig) {
		c.withoutDial = true
	}
}

// WithoutSolana skips loading the Solana chain.
func WithoutSolana() LoadOption {
	return func(c *loadConfig) {
		c.withoutSolana = true
	}
}

// WithoutSui skips loading the Sui chain.
func WithoutSui() LoadOption {
	return func(c *loadConfig) {
		c.withoutSui = true
	}
}

// LoadChains connects every chain in the configuration and returns the
// resulting collection. EVM chains are loaded concurrently. A chain whose
// endpoints are all unreachable is logged and skipped so that one dead chain
// never blocks the rest of the portfolio, matching the fallback contract of
// the endpoint configuration itself.
func LoadChains(
	ctx context.Context,
	lggr logger.Logger,
	cfg *providers.Config,
	opts ...LoadOption,
) (fchain.BlockChains, error) {
	if cfg == nil {
		return fchain.BlockChains{}, errors.New("provider config is nil")
	}

	var lcfg loadConfig
	for _, opt := range opts {
		opt(&lcfg)
	}

	evmCfgs := cfg.EVMChains()
	loader := newChainLoaderEVM(cfg, lggr, lcfg.evmClientOpts, lcfg.withoutDial)

	// Define a result struct to hold chain loading results
	type chainResult struct {
		chain fchain.BlockChain
		key   string
		err   error
	}

	// Use indexed assignment to collect results (no mutex needed)
	results := make([]chainResult, len(evmCfgs))

	var wg sync.WaitGroup

	// Load EVM chains concurrently
	for i, chainCfg := range evmCfgs {
		wg.Add(1)

		go func(index int, chainCfg providers.ChainConfig) {
			defer wg.Done()

			lggr.Infow("Loading chain", "chain", chainCfg.Key, "family", chainCfg.Family)

			result := chainResult{key: chainCfg.Key}

			// Handle context cancellation
			select {
			case <-ctx.Done():
				result.err = ctx.Err()
			default:
				chain, err := loader.Load(ctx, chainCfg)
				result.chain = chain
				result.err = err
			}

			// Write result directly to assigned index (no mutex needed)
			results[index] = result
		}(i, chainCfg)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return fchain.BlockChains{}, fmt.Errorf("chain loading cancelled: %w", err)
	}

	loaded := make([]fchain.BlockChain, 0, len(results)+2)
	for _, result := range results {
		if result.err != nil {
			lggr.Warnw("Skipping chain, no endpoint could be reached",
				"chain", result.key, "error", result.err,
			)

			continue
		}

		loaded = append(loaded, result.chain)
	}

	if !lcfg.withoutSolana {
		chain, err := loadSolanaChain(ctx, cfg)
		if err != nil {
			lggr.Warnw("Skipping chain, no endpoint could be reached", "error", err)
		} else {
			loaded = append(loaded, chain)
		}
	}

	if !lcfg.withoutSui {
		chain, err := loadSuiChain(ctx, cfg.Environment)
		if err != nil {
			lggr.Warnw("Skipping chain, no endpoint could be reached", "error", err)
		} else {
			loaded = append(loaded, chain)
		}
	}

	lggr.Infow("Loaded chains", "loaded", len(loaded))

	return fchain.NewBlockChainsFromSlice(loaded), nil
}

// ChainLoader is an interface that defines the methods for loading a chain.
type ChainLoader interface {
	Load(ctx context.Context, chainCfg providers.ChainConfig) (fchain.BlockChain, error)
}

var _ ChainLoader = &chainLoaderEVM{}

// chainLoaderEVM implements the ChainLoader interface for EVM.
type chainLoaderEVM struct {
	cfg         *providers.Config
	lggr        logger.Logger
	clientOpts  []func(client *evmclient.MultiClient)
	withoutDial bool
}

// newChainLoaderEVM creates a new chain loader for EVM.
func newChainLoaderEVM(
	cfg *providers.Config,
	lggr logger.Logger,
	clientOpts []func(client *evmclient.MultiClient),
	withoutDial bool,
) *chainLoaderEVM {
	return &chainLoaderEVM{
		cfg:         cfg,
		lggr:        lggr,
		clientOpts:  clientOpts,
		withoutDial: withoutDial,
	}
}

// Load loads an EVM Chain from its endpoint configuration, applying user
// overrides before dialing.
func (l *chainLoaderEVM) Load(ctx context.Context, chainCfg providers.ChainConfig) (fchain.BlockChain, error) {
	urls := l.cfg.UserOverrides.Apply(chainCfg)
	if len(urls) == 0 {
		return nil, fmt.Errorf("no endpoints resolved for chain %s", chainCfg.Key)
	}

	if l.withoutDial {
		return fevm.Chain{
			ChainMetadata: fevm.ChainMetadata{
				Key:         chainCfg.Key,
				ID:          chainCfg.ChainID,
				ChainName:   chainCfg.Name,
				ChainFamily: chainsel.FamilyEVM,
			},
			RPCURLs: urls,
		}, nil
	}

	// The configuration retry defaults apply first so callers can still
	// override them through client options.
	clientOpts := make([]func(client *evmclient.MultiClient), 0, len(l.clientOpts)+1)
	clientOpts = append(clientOpts, l.retryConfigOpt(chainCfg))
	clientOpts = append(clientOpts, l.clientOpts...)

	c, err := evmprov.NewRPCChainProvider(chainCfg.Key,
		evmprov.RPCChainProviderConfig{
			ChainID:    chainCfg.ChainID,
			ChainName:  chainCfg.Name,
			RPCs:       l.toRPCs(chainCfg, urls),
			ClientOpts: clientOpts,
			Logger:     l.lggr,
		},
	).Initialize(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize chain %s: %w", chainCfg.Key, err)
	}

	return c, nil
}

// toRPCs names each URL after the provider that serves it so client logs
// stay readable. URLs injected by user overrides get positional names.
func (l *chainLoaderEVM) toRPCs(chainCfg providers.ChainConfig, urls []string) []evmclient.RPC {
	providerByURL := make(map[string]string, len(chainCfg.Endpoints))
	for _, endpoint := range chainCfg.Endpoints {
		providerByURL[endpoint.URL] = endpoint.Provider
	}

	rpcs := make([]evmclient.RPC, 0, len(urls))
	for i, url := range urls {
		name, ok := providerByURL[url]
		if !ok {
			name = "user-" + strconv.Itoa(i)
		}

		rpcs = append(rpcs, evmclient.RPC{Name: name, HTTPURL: url})
	}

	return rpcs
}

// retryConfigOpt maps the operational defaults from the configuration onto
// the client retry configuration.
func (l *chainLoaderEVM) retryConfigOpt(chainCfg providers.ChainConfig) func(client *evmclient.MultiClient) {
	return func(client *evmclient.MultiClient) {
		client.RetryConfig = evmclient.RetryConfig{
			Attempts:           uint(l.cfg.Retry.MaxAttempts), //nolint:gosec // bounded by config defaults
			Delay:              l.cfg.Retry.BaseDelay,
			Timeout:            chainCfg.TotalOperationTimeout,
			DialAttempts:       1,
			DialDelay:          l.cfg.Retry.BaseDelay,
			DialTimeout:        l.cfg.HealthCheck.Timeout,
			HealthCheckTimeout: l.cfg.HealthCheck.Timeout,
		}
	}
}

// loadSolanaChain loads the Solana chain from its endpoint configuration. A
// configuration without a Solana entry falls back to the stock cluster
// endpoint for the environment.
func loadSolanaChain(ctx context.Context, cfg *providers.Config) (fchain.BlockChain, error) {
	key, name, urls := solanaEndpoints(cfg)
	if len(urls) == 0 {
		return nil, fmt.Errorf("no endpoints resolved for chain %s", key)
	}

	c, err := solanaprov.NewRPCChainProvider(key,
		solanaprov.RPCChainProviderConfig{
			ChainName:  name,
			HTTPURL:    urls[0],
			BackupURLs: urls[1:],
		},
	).Initialize(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize chain %s: %w", key, err)
	}

	return c, nil
}

// solanaEndpoints resolves the Solana chain identity and URL list, applying
// user overrides. Hand built configs without a Solana entry get the public
// cluster endpoint matching the environment.
func solanaEndpoints(cfg *providers.Config) (key, name string, urls []string) {
	if chainCfg, ok := cfg.SolanaChain(); ok {
		return chainCfg.Key, chainCfg.Name, cfg.UserOverrides.Apply(chainCfg)
	}

	switch cfg.Environment {
	case providers.EnvironmentTestnet, providers.EnvironmentLocal:
		return "solana-devnet", "Solana Devnet", []string{solrpc.DevNet_RPC}
	default:
		return "solana-mainnet", "Solana", []string{solrpc.MainNetBeta_RPC}
	}
}

// loadSuiChain loads the Sui chain for the environment. Unknown environments
// get the production fullnode, consistent with how the endpoint catalogs
// treat unknown environments.
func loadSuiChain(ctx context.Context, env providers.Environment) (fchain.BlockChain, error) {
	network, ok := suiNetworks[env]
	if !ok {
		network = suiNetworks[providers.EnvironmentProduction]
	}

	c, err := suiprov.NewRPCChainProvider(network.key,
		suiprov.RPCChainProviderConfig{
			ChainName: network.name,
			RPCURL:    network.url,
		},
	).Initialize(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize chain %s: %w", network.key, err)
	}

	return c, nil
}
