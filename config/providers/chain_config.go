package providers

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ChainConfig holds the resolved endpoint set and operational bounds for a
// single chain.
type ChainConfig struct {
	// Key is the stable chain identifier, e.g. "ethereum" or
	// "solana-mainnet".
	Key string
	// ChainID is the numeric EVM chain ID. It is zero for non-EVM chains.
	ChainID uint64
	// Name is the human readable chain name.
	Name string
	// Family is one of the chain-selectors family constants.
	Family string
	// Endpoints is ordered by escalation tier. Consumers try index 0 first
	// and advance only after the current endpoint fails.
	Endpoints []Endpoint

	// TotalOperationTimeout bounds a whole operation across all endpoint
	// attempts.
	TotalOperationTimeout time.Duration
	// CacheStaleAcceptance is how long cached reads may be served while all
	// endpoints are unreachable.
	CacheStaleAcceptance time.Duration
}

// EndpointURLs returns the endpoint URLs in escalation order.
func (c ChainConfig) EndpointURLs() []string {
	urls := make([]string, 0, len(c.Endpoints))
	for _, e := range c.Endpoints {
		urls = append(urls, e.URL)
	}

	return urls
}

// Validate checks the structural invariants of the chain config: a non-empty
// endpoint list, fully resolved URLs and roles in escalation order.
func (c ChainConfig) Validate() error {
	if c.Key == "" {
		return errors.New("key is required")
	}
	if len(c.Endpoints) == 0 {
		return errors.New("at least one endpoint is required")
	}

	prev := RolePrimary
	for i, e := range c.Endpoints {
		if e.URL == "" {
			return fmt.Errorf("endpoint %d: url is required", i)
		}
		if strings.Contains(e.URL, "undefined") {
			return fmt.Errorf("endpoint %d: url contains an unresolved placeholder: %s", i, e.URL)
		}
		if e.Role < prev {
			return fmt.Errorf("endpoint %d: role %s out of order after %s", i, e.Role, prev)
		}

		prev = e.Role
	}

	return nil
}
