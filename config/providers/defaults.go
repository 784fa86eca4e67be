package providers

import "time"

// The operational settings below are fixed: they never vary with environment
// or key availability, so downstream consumers always receive the same shape
// regardless of how the config was assembled.

// CircuitBreakerConfig bounds how endpoint failures trip an endpoint out of
// rotation.
type CircuitBreakerConfig struct {
	// FailureThreshold is the number of consecutive failures that opens the
	// breaker.
	FailureThreshold int
	// ResetTimeout is how long the breaker stays open before probing again.
	ResetTimeout time.Duration
	// HalfOpenProbes is the number of trial requests allowed while half open.
	HalfOpenProbes int
}

// RetryConfig bounds retries against a single endpoint before advancing to
// the next one.
type RetryConfig struct {
	MaxAttempts   int
	BaseDelay     time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// HealthCheckConfig bounds background endpoint probing.
type HealthCheckConfig struct {
	Interval     time.Duration
	Timeout      time.Duration
	FailureLimit int
}

// PrivacyConfig declares the privacy posture queries are made under. The
// defaults prefer decentralized gateways and keep managed vendors as a
// fallback only.
type PrivacyConfig struct {
	PreferDecentralized  bool
	AllowManagedFallback bool
	LogEndpointQueries   bool
}

func defaultCircuitBreaker() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		FailureThreshold: 5,
		ResetTimeout:     30 * time.Second,
		HalfOpenProbes:   2,
	}
}

func defaultRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts:   3,
		BaseDelay:     500 * time.Millisecond,
		MaxDelay:      8 * time.Second,
		BackoffFactor: 2,
	}
}

func defaultHealthCheck() HealthCheckConfig {
	return HealthCheckConfig{
		Interval:     30 * time.Second,
		Timeout:      5 * time.Second,
		FailureLimit: 3,
	}
}

func defaultPrivacy() PrivacyConfig {
	return PrivacyConfig{
		PreferDecentralized:  true,
		AllowManagedFallback: true,
		LogEndpointQueries:   false,
	}
}

const (
	defaultTotalOperationTimeout = 30 * time.Second
	defaultCacheStaleAcceptance  = 60 * time.Second
)

// endpointBounds are the per-tier request bounds stamped onto each endpoint.
type endpointBounds struct {
	rateLimitRPS int
	timeout      time.Duration
}

var (
	// keylessGatewayBounds applies to decentralized gateways used without a
	// key, which throttle anonymous traffic aggressively.
	keylessGatewayBounds = endpointBounds{rateLimitRPS: 25, timeout: 10 * time.Second}
	// keyedGatewayBounds applies to keyed gateway endpoints.
	keyedGatewayBounds = endpointBounds{rateLimitRPS: 100, timeout: 8 * time.Second}
	// managedBounds applies to managed vendor endpoints.
	managedBounds = endpointBounds{rateLimitRPS: 300, timeout: 8 * time.Second}
	// publicBounds applies to community RPCs, which are slow and heavily
	// rate limited.
	publicBounds = endpointBounds{rateLimitRPS: 10, timeout: 12 * time.Second}
)
