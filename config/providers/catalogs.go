package providers

// chainDefinition describes a chain independent of any provider coverage.
type chainDefinition struct {
	key     string
	chainID uint64
	name    string
}

// The chain sets per environment are disjoint: production serves mainnets
// only, testnet serves test networks only, and local serves a single Anvil
// node.
var (
	productionEVMChains = []chainDefinition{
		{key: "ethereum", chainID: 1, name: "Ethereum"},
		{key: "polygon", chainID: 137, name: "Polygon"},
		{key: "optimism", chainID: 10, name: "OP Mainnet"},
		{key: "arbitrum", chainID: 42161, name: "Arbitrum One"},
		{key: "base", chainID: 8453, name: "Base"},
	}

	testnetEVMChains = []chainDefinition{
		{key: "sepolia", chainID: 11155111, name: "Sepolia"},
		{key: "polygon-amoy", chainID: 80002, name: "Polygon Amoy"},
		{key: "optimism-sepolia", chainID: 11155420, name: "OP Sepolia"},
		{key: "arbitrum-sepolia", chainID: 421614, name: "Arbitrum Sepolia"},
		{key: "base-sepolia", chainID: 84532, name: "Base Sepolia"},
	}

	localEVMChains = []chainDefinition{
		{key: "anvil", chainID: 31337, name: "Anvil"},
	}
)

const (
	solanaMainnetKey = "solana-mainnet"
	solanaDevnetKey  = "solana-devnet"
)

// evmChainDefinitions returns the EVM chain set for the environment. Unknown
// environments fall back to the production set so a misconfigured caller
// still receives a usable config.
func evmChainDefinitions(env Environment) []chainDefinition {
	switch env {
	case EnvironmentTestnet:
		return testnetEVMChains
	case EnvironmentLocal:
		return localEVMChains
	default:
		return productionEVMChains
	}
}

// solanaChainKey returns the Solana network key for the environment. Local
// development also targets devnet since a local validator is not assumed.
func solanaChainKey(env Environment) string {
	switch env {
	case EnvironmentTestnet, EnvironmentLocal:
		return solanaDevnetKey
	default:
		return solanaMainnetKey
	}
}

// Provider names as they appear in Endpoint.Provider.
const (
	ProviderPOKT      = "pokt"
	ProviderDRPC      = "drpc"
	ProviderLava      = "lava"
	ProviderAlchemy   = "alchemy"
	ProviderInfura    = "infura"
	ProviderQuickNode = "quicknode"
	ProviderHelius    = "helius"
	ProviderPublic    = "public"
)

// poktGatewayURLs are the keyless POKT Network gateway endpoints, keyed by
// chain key. POKT is the first hop on every supported chain.
var poktGatewayURLs = map[string]string{
	"ethereum":         "https://eth-pokt.nodies.app",
	"polygon":          "https://polygon-pokt.nodies.app",
	"optimism":         "https://op-pokt.nodies.app",
	"arbitrum":         "https://arb-pokt.nodies.app",
	"base":             "https://base-pokt.nodies.app",
	"sepolia":          "https://eth-sepolia-pokt.nodies.app",
	"polygon-amoy":     "https://polygon-amoy-pokt.nodies.app",
	"optimism-sepolia": "https://op-sepolia-pokt.nodies.app",
	"arbitrum-sepolia": "https://arb-sepolia-pokt.nodies.app",
	"base-sepolia":     "https://base-sepolia-pokt.nodies.app",
	"solana-mainnet":   "https://solana-pokt.nodies.app",
	"solana-devnet":    "https://solana-devnet-pokt.nodies.app",
}

// lavaGatewayURLs are the keyless Lava Network gateway endpoints, the second
// decentralized hop.
var lavaGatewayURLs = map[string]string{
	"ethereum":         "https://eth1.lava.build",
	"polygon":          "https://polygon1.lava.build",
	"optimism":         "https://optimism1.lava.build",
	"arbitrum":         "https://arbitrum1.lava.build",
	"base":             "https://base1.lava.build",
	"sepolia":          "https://eth-sepolia1.lava.build",
	"polygon-amoy":     "https://polygon-amoy1.lava.build",
	"optimism-sepolia": "https://optimism-sepolia1.lava.build",
	"arbitrum-sepolia": "https://arbitrum-sepolia1.lava.build",
	"base-sepolia":     "https://base-sepolia1.lava.build",
	"solana-mainnet":   "https://solana1.lava.build",
	"solana-devnet":    "https://solana-devnet1.lava.build",
}

// drpcNetworkNames maps chain keys to the dRPC network identifier used in
// the load balancer URL. dRPC coverage here is EVM only.
var drpcNetworkNames = map[string]string{
	"ethereum":         "ethereum",
	"polygon":          "polygon",
	"optimism":         "optimism",
	"arbitrum":         "arbitrum",
	"base":             "base",
	"sepolia":          "sepolia",
	"polygon-amoy":     "polygon-amoy",
	"optimism-sepolia": "optimism-sepolia",
	"arbitrum-sepolia": "arbitrum-sepolia",
	"base-sepolia":     "base-sepolia",
}

const drpcURLTemplate = "https://lb.drpc.org/ogrpc?network=%s&dkey=%s"

// alchemyURLPrefixes maps chain keys to the Alchemy URL prefix. The API key
// is appended directly to the prefix.
var alchemyURLPrefixes = map[string]string{
	"ethereum":         "https://eth-mainnet.g.alchemy.com/v2/",
	"polygon":          "https://polygon-mainnet.g.alchemy.com/v2/",
	"optimism":         "https://opt-mainnet.g.alchemy.com/v2/",
	"arbitrum":         "https://arb-mainnet.g.alchemy.com/v2/",
	"base":             "https://base-mainnet.g.alchemy.com/v2/",
	"sepolia":          "https://eth-sepolia.g.alchemy.com/v2/",
	"polygon-amoy":     "https://polygon-amoy.g.alchemy.com/v2/",
	"optimism-sepolia": "https://opt-sepolia.g.alchemy.com/v2/",
	"arbitrum-sepolia": "https://arb-sepolia.g.alchemy.com/v2/",
	"base-sepolia":     "https://base-sepolia.g.alchemy.com/v2/",
	"solana-mainnet":   "https://solana-mainnet.g.alchemy.com/v2/",
	"solana-devnet":    "https://solana-devnet.g.alchemy.com/v2/",
}

// infuraURLPrefixes maps chain keys to the Infura URL prefix. Infura has no
// Solana coverage.
var infuraURLPrefixes = map[string]string{
	"ethereum":         "https://mainnet.infura.io/v3/",
	"polygon":          "https://polygon-mainnet.infura.io/v3/",
	"optimism":         "https://optimism-mainnet.infura.io/v3/",
	"arbitrum":         "https://arbitrum-mainnet.infura.io/v3/",
	"base":             "https://base-mainnet.infura.io/v3/",
	"sepolia":          "https://sepolia.infura.io/v3/",
	"polygon-amoy":     "https://polygon-amoy.infura.io/v3/",
	"optimism-sepolia": "https://optimism-sepolia.infura.io/v3/",
	"arbitrum-sepolia": "https://arbitrum-sepolia.infura.io/v3/",
	"base-sepolia":     "https://base-sepolia.infura.io/v3/",
}

// quickNodeSlugs maps chain keys to the QuickNode network slug. The full URL
// is "https://<slug>.quiknode.pro/<key>".
var quickNodeSlugs = map[string]string{
	"ethereum":         "ethereum-mainnet",
	"polygon":          "polygon-mainnet",
	"optimism":         "optimism-mainnet",
	"arbitrum":         "arbitrum-mainnet",
	"base":             "base-mainnet",
	"sepolia":          "ethereum-sepolia",
	"polygon-amoy":     "polygon-amoy",
	"optimism-sepolia": "optimism-sepolia",
	"arbitrum-sepolia": "arbitrum-sepolia",
	"base-sepolia":     "base-sepolia",
	"solana-mainnet":   "solana-mainnet",
	"solana-devnet":    "solana-devnet",
}

const quickNodeURLTemplate = "https://%s.quiknode.pro/%s"

// heliusURLPrefixes maps Solana network keys to the Helius RPC URL prefix.
// Helius is Solana only. Mainnet and devnet use distinct hostnames rather
// than a query parameter, so both are pinned here.
var heliusURLPrefixes = map[string]string{
	"solana-mainnet": "https://mainnet.helius-rpc.com/?api-key=",
	"solana-devnet":  "https://devnet.helius-rpc.com/?api-key=",
}

// publicRPCURLs are keyless community endpoints. They form the tail of the
// emergency tier and are the only coverage for local chains.
var publicRPCURLs = map[string][]string{
	"ethereum":         {"https://eth.llamarpc.com", "https://ethereum-rpc.publicnode.com", "https://1rpc.io/eth"},
	"polygon":          {"https://polygon-rpc.com", "https://polygon-bor-rpc.publicnode.com"},
	"optimism":         {"https://mainnet.optimism.io", "https://optimism-rpc.publicnode.com"},
	"arbitrum":         {"https://arb1.arbitrum.io/rpc", "https://arbitrum-one-rpc.publicnode.com"},
	"base":             {"https://mainnet.base.org", "https://base-rpc.publicnode.com"},
	"sepolia":          {"https://ethereum-sepolia-rpc.publicnode.com", "https://rpc.sepolia.org"},
	"polygon-amoy":     {"https://rpc-amoy.polygon.technology", "https://polygon-amoy-bor-rpc.publicnode.com"},
	"optimism-sepolia": {"https://sepolia.optimism.io"},
	"arbitrum-sepolia": {"https://sepolia-rollup.arbitrum.io/rpc"},
	"base-sepolia":     {"https://sepolia.base.org"},
	"anvil":            {"http://localhost:8545", "http://127.0.0.1:8545"},
	"solana-mainnet":   {"https://api.mainnet-beta.solana.com", "https://solana-rpc.publicnode.com"},
	"solana-devnet":    {"https://api.devnet.solana.com"},
}
