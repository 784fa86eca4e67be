// Package rpcclient provides an EVM RPC client that fails over across
// multiple endpoints. Every call goes to the primary client first and falls
// through to the backups, with per-endpoint retries, when it fails.
package rpcclient

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/google/uuid"

	"github.com/cygnus-wealth/chain-access-framework/chain/evm"
	"github.com/cygnus-wealth/chain-access-framework/pkg/logger"
)

const (
	// Default retry configuration for RPC calls
	RPCDefaultRetryAttempts = 3
	RPCDefaultRetryDelay    = 500 * time.Millisecond
	RPCDefaultRetryTimeout  = 8 * time.Second

	// Default retry configuration for dialing RPC endpoints
	RPCDefaultDialRetryAttempts = 1
	RPCDefaultDialRetryDelay    = 500 * time.Millisecond
	RPCDefaultDialTimeout       = 10 * time.Second

	// Default timeout for health checks
	RPCDefaultHealthCheckTimeout = 5 * time.Second
)

// RPC describes a single HTTP endpoint. Name identifies the endpoint in logs,
// typically the provider it belongs to.
type RPC struct {
	Name    string
	HTTPURL string
}

// RPCConfig holds the endpoints to construct a MultiClient from, in fallback
// order.
type RPCConfig struct {
	ChainName string
	RPCs      []RPC
}

// RetryConfig controls per-endpoint retries, dial behavior and the timeout
// applied to individual calls.
type RetryConfig struct {
	Attempts           uint
	Delay              time.Duration
	Timeout            time.Duration
	DialAttempts       uint
	DialDelay          time.Duration
	DialTimeout        time.Duration
	HealthCheckTimeout time.Duration
}

func defaultRetryConfig() RetryConfig {
	return RetryConfig{
		Attempts:           RPCDefaultRetryAttempts,
		Delay:              RPCDefaultRetryDelay,
		Timeout:            RPCDefaultRetryTimeout,
		DialAttempts:       RPCDefaultDialRetryAttempts,
		DialDelay:          RPCDefaultDialRetryDelay,
		DialTimeout:        RPCDefaultDialTimeout,
		HealthCheckTimeout: RPCDefaultHealthCheckTimeout,
	}
}

// MultiClient should comply with the OnchainClient interface
var _ evm.OnchainClient = &MultiClient{}

// MultiClient is an EVM client that wraps one primary and any number of
// backup clients. Calls that fail on the primary are retried on the backups
// in order, and an endpoint that answers after the primary failed is promoted
// to primary for subsequent calls.
type MultiClient struct {
	*ethclient.Client
	Backups     []*ethclient.Client
	RetryConfig RetryConfig
	lggr        logger.Logger
	chainName   string
	mu          sync.RWMutex
}

// NewMultiClient dials every configured endpoint and health checks it,
// keeping the healthy ones. Endpoints that cannot be dialed or that fail the
// health check are skipped with a warning. It errors only when no endpoint
// survives.
func NewMultiClient(ctx context.Context, lggr logger.Logger, rpcsCfg RPCConfig, opts ...func(client *MultiClient)) (*MultiClient, error) {
	if rpcsCfg.ChainName == "" {
		return nil, errors.New("chain name is required")
	}
	if len(rpcsCfg.RPCs) == 0 {
		return nil, errors.New("no RPCs provided, need at least one")
	}

	mc := MultiClient{lggr: lggr, chainName: rpcsCfg.ChainName}
	mc.RetryConfig = defaultRetryConfig()

	for _, opt := range opts {
		opt(&mc)
	}

	clients := make([]*ethclient.Client, 0, len(rpcsCfg.RPCs))
	for i, rpc := range rpcsCfg.RPCs {
		client, err := mc.dialWithRetry(ctx, rpc)
		if err != nil {
			lggr.Warnf("failed to dial client %d for RPC '%s' - %s, trying with the next one: %v", i, rpc.Name, mc.chainName, err)

			continue
		}
		if err := mc.rpcHealthCheck(ctx, client); err != nil {
			lggr.Warnf("health check failed for client %d for RPC '%s' - %s, trying with the next one: %v", i, rpc.Name, mc.chainName, err)
			client.Close()

			continue
		}
		clients = append(clients, client)
	}

	if len(clients) == 0 {
		return nil, errors.New("no valid RPC clients created")
	}

	mc.Client = clients[0]
	mc.Backups = clients[1:]

	return &mc, nil
}

// rpcHealthCheck performs a basic health check on the RPC client by calling eth_blockNumber
func (mc *MultiClient) rpcHealthCheck(ctx context.Context, client *ethclient.Client) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, mc.RetryConfig.HealthCheckTimeout)
	defer cancel()

	// Try to get the latest block number
	_, err := client.BlockNumber(timeoutCtx)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	return nil
}

func (mc *MultiClient) ChainID(ctx context.Context) (*big.Int, error) {
	var id *big.Int
	err := mc.retryWithBackups(ctx, "ChainID", func(ct context.Context, client *ethclient.Client) error {
		var err error
		id, err = client.ChainID(ct)

		return err
	})

	return id, err
}

func (mc *MultiClient) BlockNumber(ctx context.Context) (uint64, error) {
	var blockNumber uint64
	err := mc.retryWithBackups(ctx, "BlockNumber", func(ct context.Context, client *ethclient.Client) error {
		var err error
		blockNumber, err = client.BlockNumber(ct)

		return err
	})

	return blockNumber, err
}

func (mc *MultiClient) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error) {
	var balance *big.Int
	err := mc.retryWithBackups(ctx, "BalanceAt", func(ct context.Context, client *ethclient.Client) error {
		var err error
		balance, err = client.BalanceAt(ct, account, blockNumber)

		return err
	})

	return balance, err
}

func (mc *MultiClient) NonceAt(ctx context.Context, account common.Address, block *big.Int) (uint64, error) {
	var count uint64
	err := mc.retryWithBackups(ctx, "NonceAt", func(ct context.Context, client *ethclient.Client) error {
		var err error
		count, err = client.NonceAt(ct, account, block)

		return err
	})

	return count, err
}

func (mc *MultiClient) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	var code []byte
	err := mc.retryWithBackups(ctx, "CodeAt", func(ct context.Context, client *ethclient.Client) error {
		var err error
		code, err = client.CodeAt(ct, account, blockNumber)

		return err
	})

	return code, err
}

func (mc *MultiClient) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	var result []byte
	err := mc.retryWithBackups(ctx, "CallContract", func(ct context.Context, client *ethclient.Client) error {
		var err error
		result, err = client.CallContract(ct, msg, blockNumber)

		return err
	})

	return result, err
}

func (mc *MultiClient) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	var header *types.Header
	err := mc.retryWithBackups(ctx, "HeaderByNumber", func(ct context.Context, client *ethclient.Client) error {
		var err error
		header, err = client.HeaderByNumber(ct, number)

		return err
	})

	return header, err
}

func (mc *MultiClient) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	var logs []types.Log
	err := mc.retryWithBackups(ctx, "FilterLogs", func(ct context.Context, client *ethclient.Client) error {
		var err error
		logs, err = client.FilterLogs(ct, q)

		return err
	})

	return logs, err
}

func (mc *MultiClient) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	var gasPrice *big.Int
	err := mc.retryWithBackups(ctx, "SuggestGasPrice", func(ct context.Context, client *ethclient.Client) error {
		var err error
		gasPrice, err = client.SuggestGasPrice(ct)

		return err
	})

	return gasPrice, err
}

func (mc *MultiClient) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	var receipt *types.Receipt
	err := mc.retryWithBackups(ctx, "TransactionReceipt", func(ct context.Context, client *ethclient.Client) error {
		var err error
		receipt, err = client.TransactionReceipt(ct, txHash)

		return err
	})

	return receipt, err
}

func (mc *MultiClient) retryWithBackups(ctx context.Context, opName string, op func(context.Context, *ethclient.Client) error) error {
	var err error
	traceID := uuid.New()

	for rpcIndex, client := range mc.clients() {
		retryCount := 0
		err2 := retry.Do(func() error {
			timeoutCtx, cancel := ensureTimeout(ctx, mc.RetryConfig.Timeout)
			defer cancel()

			err = op(timeoutCtx, client)
			if err != nil {
				mc.lggr.Warnf("traceID %q: chain %q: op: %q: client index %d: failed execution - retryable error '%s'", traceID.String(), mc.chainName, opName, rpcIndex, maybeDataErr(err))
				return err
			}

			// If the operation was successful, check if we need to reorder the RPCs
			mc.reorderRPCs(rpcIndex)

			return nil
		}, retry.Attempts(mc.RetryConfig.Attempts), retry.Delay(mc.RetryConfig.Delay),
			retry.OnRetry(func(n uint, err error) { retryCount++ }))
		if err2 == nil {
			if retryCount > 0 {
				mc.lggr.Infof("traceID %q: chain %q: op: %q: client index %d: successfully executed after %d retry", traceID.String(), mc.chainName, opName, rpcIndex, retryCount)
			}

			return nil
		}
		mc.lggr.Infof("traceID %q: chain %q: op: %q: client index %d: failed, trying next client", traceID.String(), mc.chainName, opName, rpcIndex)
	}

	return errors.Join(err, fmt.Errorf("all backup clients failed for chain %q", mc.chainName))
}

func (mc *MultiClient) dialWithRetry(ctx context.Context, rpc RPC) (*ethclient.Client, error) {
	if rpc.HTTPURL == "" {
		return nil, fmt.Errorf("no HTTP URL provided for RPC %q", rpc.Name)
	}

	traceID := uuid.New()
	var client *ethclient.Client
	retryCount := 0
	err := retry.Do(func() error {
		dialCtx, cancel := context.WithTimeout(ctx, mc.RetryConfig.DialTimeout)
		defer cancel()

		var err2 error
		mc.lggr.Debugf("traceID %q: chain %q: rpc: %q: dialing endpoint '%s'", traceID.String(), mc.chainName, rpc.Name, rpc.HTTPURL)
		client, err2 = ethclient.DialContext(dialCtx, rpc.HTTPURL)
		if err2 != nil {
			mc.lggr.Warnf("traceID %q: chain %q: rpc: %q: dialing failed - retryable error: %s: %v", traceID.String(), mc.chainName, rpc.Name, rpc.HTTPURL, err2)
			return err2
		}

		return nil
	}, retry.Attempts(mc.RetryConfig.DialAttempts), retry.Delay(mc.RetryConfig.DialDelay),
		retry.OnRetry(func(n uint, err error) { retryCount++ }))

	if err != nil {
		return nil, errors.Join(err, fmt.Errorf("failed to dial endpoint '%s' for RPC %s for chain %s after retries", rpc.HTTPURL, rpc.Name, mc.chainName))
	}
	if retryCount > 0 {
		mc.lggr.Infof("traceID %q: chain %q: rpc: %q: successfully dialed endpoint '%s' after %d retries", traceID.String(), mc.chainName, rpc.Name, rpc.HTTPURL, retryCount)
	}

	return client, nil
}

// ensureTimeout checks if the parent context has a deadline.
// If it does, it returns a new cancelable context using the parent's deadline.
// If it doesn't, it creates a new context with the specified timeout.
func ensureTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	// check if the parent context already has a deadline
	if _, hasDeadline := parent.Deadline(); hasDeadline {
		// derive a new cancelable context from the parent context with the same deadline
		return context.WithCancel(parent)
	}

	// create a new context with the specified timeout
	return context.WithTimeout(parent, timeout)
}

// reorderRPCs reorders the RPCs based on the latest call.
// If the default RPC failed all attempts, it will be moved to the end of the backup list.
// If backup RPCs also failed, they will be moved to the end of the backup list.
// If the primary RPC worked, it will remain the first in the list.
func (mc *MultiClient) reorderRPCs(rpcIndex int) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if rpcIndex < 1 || len(mc.Backups) == 0 {
		return // No need to reorder if the first RPC is still the default or we don't have backups
	}

	// Find the index of the backupRPC
	newDefaultRPCIndex := rpcIndex - 1
	newDefaultRPC := mc.Backups[newDefaultRPCIndex]

	// Reorder the failed backups to the end of the list
	reordered := make([]*ethclient.Client, 0, len(mc.Backups))
	reordered = append(reordered, mc.Backups[newDefaultRPCIndex+1:]...)
	reordered = append(reordered, mc.Backups[:newDefaultRPCIndex]...)
	reordered = append(reordered, mc.Client)

	mc.Backups = reordered
	mc.Client = newDefaultRPC
}

func (mc *MultiClient) clients() []*ethclient.Client {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	return append([]*ethclient.Client{mc.Client}, mc.Backups...)
}

func maybeDataErr(err error) error {
	var d rpc.DataError
	if errors.As(err, &d) {
		return fmt.Errorf("%s: %v", d.Error(), d.ErrorData())
	}

	return err
}
