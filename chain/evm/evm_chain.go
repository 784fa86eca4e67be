package evm

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	chaincommon "github.com/cygnus-wealth/chain-access-framework/chain/internal/common"
)

// OnchainClient is a read-only EVM chain client. It covers the query surface
// a portfolio dashboard needs: balances, nonces, code, logs, headers and
// read-only contract calls. No signing or transaction submission.
type OnchainClient interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	NonceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (uint64, error)
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// ChainMetadata is the metadata of the EVM chain.
type ChainMetadata = chaincommon.ChainMetadata

// Chain represents an EVM chain.
type Chain struct {
	ChainMetadata

	// Client is the RPC client used to query the chain. It transparently
	// fails over across the endpoints in RPCURLs.
	Client OnchainClient

	// RPCURLs are the endpoint URLs the client was constructed with, in
	// fallback order.
	RPCURLs []string
}
