package providers

import (
	"fmt"

	chainsel "github.com/smartcontractkit/chain-selectors"
)

// buildEVMChainConfig assembles the ordered endpoint list for a single EVM
// chain. Tiers are appended in escalation order: the keyless POKT gateway
// first, the keyed dRPC load balancer second, the keyless Lava gateway
// third, then managed vendors and public RPCs as the emergency tail. A tier
// whose key is missing or which does not cover the chain is skipped
// entirely, which is how the zero key build degrades to keyless gateways
// plus public RPCs.
func buildEVMChainConfig(def chainDefinition, keys APIKeys) ChainConfig {
	endpoints := make([]Endpoint, 0, 8)

	if url, ok := poktGatewayURLs[def.key]; ok {
		endpoints = append(endpoints, Endpoint{
			URL:          url,
			Provider:     ProviderPOKT,
			Role:         RolePrimary,
			Type:         ProviderTypeDecentralized,
			RateLimitRPS: keylessGatewayBounds.rateLimitRPS,
			Timeout:      keylessGatewayBounds.timeout,
		})
	}

	if network, ok := drpcNetworkNames[def.key]; ok && keys.DRPC != "" {
		endpoints = append(endpoints, Endpoint{
			URL:          fmt.Sprintf(drpcURLTemplate, network, keys.DRPC),
			Provider:     ProviderDRPC,
			Role:         RoleSecondary,
			Type:         ProviderTypeDecentralized,
			RateLimitRPS: keyedGatewayBounds.rateLimitRPS,
			Timeout:      keyedGatewayBounds.timeout,
		})
	}

	if url, ok := lavaGatewayURLs[def.key]; ok {
		endpoints = append(endpoints, Endpoint{
			URL:          url,
			Provider:     ProviderLava,
			Role:         RoleTertiary,
			Type:         ProviderTypeDecentralized,
			RateLimitRPS: keylessGatewayBounds.rateLimitRPS,
			Timeout:      keylessGatewayBounds.timeout,
		})
	}

	endpoints = appendEmergencyEndpoints(endpoints, def.key, keys)

	return ChainConfig{
		Key:                   def.key,
		ChainID:               def.chainID,
		Name:                  def.name,
		Family:                chainsel.FamilyEVM,
		Endpoints:             endpoints,
		TotalOperationTimeout: defaultTotalOperationTimeout,
		CacheStaleAcceptance:  defaultCacheStaleAcceptance,
	}
}

// buildSolanaChainConfig assembles the endpoint list for the Solana network
// matching the environment. Helius takes the secondary slot that dRPC holds
// on EVM chains: its DAS API carries the token and NFT metadata the
// dashboard reads, which makes it worth promoting ahead of the remaining
// keyless gateway.
func buildSolanaChainConfig(key string, keys APIKeys) ChainConfig {
	endpoints := make([]Endpoint, 0, 6)

	if url, ok := poktGatewayURLs[key]; ok {
		endpoints = append(endpoints, Endpoint{
			URL:          url,
			Provider:     ProviderPOKT,
			Role:         RolePrimary,
			Type:         ProviderTypeDecentralized,
			RateLimitRPS: keylessGatewayBounds.rateLimitRPS,
			Timeout:      keylessGatewayBounds.timeout,
		})
	}

	if prefix, ok := heliusURLPrefixes[key]; ok && keys.Helius != "" {
		endpoints = append(endpoints, Endpoint{
			URL:          prefix + keys.Helius,
			Provider:     ProviderHelius,
			Role:         RoleSecondary,
			Type:         ProviderTypeManaged,
			RateLimitRPS: keyedGatewayBounds.rateLimitRPS,
			Timeout:      keyedGatewayBounds.timeout,
		})
	}

	if url, ok := lavaGatewayURLs[key]; ok {
		endpoints = append(endpoints, Endpoint{
			URL:          url,
			Provider:     ProviderLava,
			Role:         RoleTertiary,
			Type:         ProviderTypeDecentralized,
			RateLimitRPS: keylessGatewayBounds.rateLimitRPS,
			Timeout:      keylessGatewayBounds.timeout,
		})
	}

	endpoints = appendEmergencyEndpoints(endpoints, key, keys)

	name := "Solana"
	if key == solanaDevnetKey {
		name = "Solana Devnet"
	}

	return ChainConfig{
		Key:                   key,
		Name:                  name,
		Family:                chainsel.FamilySolana,
		Endpoints:             endpoints,
		TotalOperationTimeout: defaultTotalOperationTimeout,
		CacheStaleAcceptance:  defaultCacheStaleAcceptance,
	}
}

// appendEmergencyEndpoints appends the managed vendors whose keys are
// present, followed by every public RPC for the chain. Managed vendors come
// first within the tier since they are faster and more reliable than
// community RPCs.
func appendEmergencyEndpoints(endpoints []Endpoint, key string, keys APIKeys) []Endpoint {
	if prefix, ok := alchemyURLPrefixes[key]; ok && keys.Alchemy != "" {
		endpoints = append(endpoints, Endpoint{
			URL:          prefix + keys.Alchemy,
			Provider:     ProviderAlchemy,
			Role:         RoleEmergency,
			Type:         ProviderTypeManaged,
			RateLimitRPS: managedBounds.rateLimitRPS,
			Timeout:      managedBounds.timeout,
		})
	}

	if prefix, ok := infuraURLPrefixes[key]; ok && keys.Infura != "" {
		endpoints = append(endpoints, Endpoint{
			URL:          prefix + keys.Infura,
			Provider:     ProviderInfura,
			Role:         RoleEmergency,
			Type:         ProviderTypeManaged,
			RateLimitRPS: managedBounds.rateLimitRPS,
			Timeout:      managedBounds.timeout,
		})
	}

	if slug, ok := quickNodeSlugs[key]; ok && keys.QuickNode != "" {
		endpoints = append(endpoints, Endpoint{
			URL:          fmt.Sprintf(quickNodeURLTemplate, slug, keys.QuickNode),
			Provider:     ProviderQuickNode,
			Role:         RoleEmergency,
			Type:         ProviderTypeManaged,
			RateLimitRPS: managedBounds.rateLimitRPS,
			Timeout:      managedBounds.timeout,
		})
	}

	for _, url := range publicRPCURLs[key] {
		endpoints = append(endpoints, Endpoint{
			URL:          url,
			Provider:     ProviderPublic,
			Role:         RoleEmergency,
			Type:         ProviderTypePublic,
			RateLimitRPS: publicBounds.rateLimitRPS,
			Timeout:      publicBounds.timeout,
		})
	}

	return endpoints
}
