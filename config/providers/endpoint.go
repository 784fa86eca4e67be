package providers

import (
	"fmt"
	"time"
)

// Role orders endpoints within a chain by escalation tier. Lower roles are
// consulted first, and a consumer only advances past a role once every
// endpoint holding it has failed.
type Role int

const (
	// RolePrimary is the first tier tried for every query, always a keyless
	// decentralized gateway.
	RolePrimary Role = iota
	// RoleSecondary is the keyed decentralized tier. It is only emitted when
	// the matching API key is present.
	RoleSecondary
	// RoleTertiary is the second keyless decentralized gateway.
	RoleTertiary
	// RoleEmergency is the managed vendor and public RPC safety net.
	RoleEmergency
)

var roleNames = map[Role]string{
	RolePrimary:   "primary",
	RoleSecondary: "secondary",
	RoleTertiary:  "tertiary",
	RoleEmergency: "emergency",
}

// String returns the lowercase name of the role.
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}

	return fmt.Sprintf("role(%d)", int(r))
}

// ProviderType classifies how an endpoint is operated.
type ProviderType string

const (
	// ProviderTypeDecentralized marks endpoints served by decentralized
	// gateway networks.
	ProviderTypeDecentralized ProviderType = "decentralized"
	// ProviderTypeManaged marks endpoints operated by a centralized vendor
	// under an account.
	ProviderTypeManaged ProviderType = "managed"
	// ProviderTypePublic marks community endpoints with no SLA.
	ProviderTypePublic ProviderType = "public"
)

// Endpoint is a single fully resolved RPC endpoint for a chain. The URL is
// complete, with any API key already interpolated, so consumers can dial it
// as is.
type Endpoint struct {
	URL      string
	Provider string
	Role     Role
	Type     ProviderType

	// RateLimitRPS is the request rate the endpoint is expected to sustain.
	RateLimitRPS int
	// Timeout bounds a single request against this endpoint.
	Timeout time.Duration
}
