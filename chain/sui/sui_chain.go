package sui

import (
	sui_sdk "github.com/block-vision/sui-go-sdk/sui"

	chaincommon "github.com/cygnus-wealth/chain-access-framework/chain/internal/common"
)

// ChainMetadata is the metadata of the Sui chain.
type ChainMetadata = chaincommon.ChainMetadata

// Chain represents a Sui chain.
type Chain struct {
	ChainMetadata

	// Client is the RPC client used to query the chain.
	Client sui_sdk.ISuiAPI

	// URL is the endpoint URL the client was constructed with.
	URL string
}
