package solana

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/gagliardetto/solana-go"
	solrpc "github.com/gagliardetto/solana-go/rpc"

	chaincommon "github.com/cygnus-wealth/chain-access-framework/chain/internal/common"
)

// DefaultCommitment is the commitment level used for queries issued through
// the chain helpers. Confirmed is a reasonable middle ground for a dashboard:
// finalized lags too far behind for balances, processed is too optimistic.
const DefaultCommitment = solrpc.CommitmentConfirmed

const (
	// retryAttempts bounds how often a single client is retried before the
	// call falls through to the next one.
	retryAttempts = 2
	retryDelay    = 200 * time.Millisecond
)

// ChainMetadata is the metadata of the Solana chain.
type ChainMetadata = chaincommon.ChainMetadata

// Chain represents a Solana chain.
type Chain struct {
	ChainMetadata

	// Client is the primary RPC client.
	Client *solrpc.Client
	// Backups are tried in order when the primary fails.
	Backups []*solrpc.Client

	// URL is the primary endpoint URL.
	URL string
	// URLs are all endpoint URLs in fallback order, starting with URL.
	URLs []string
}

// clients returns the primary client followed by the backups.
func (c Chain) clients() []*solrpc.Client {
	clients := make([]*solrpc.Client, 0, len(c.Backups)+1)
	if c.Client != nil {
		clients = append(clients, c.Client)
	}

	return append(clients, c.Backups...)
}

// do runs op against each client in fallback order until one succeeds,
// retrying each client before moving on. The collected per-client errors are
// joined when every client fails.
func (c Chain) do(ctx context.Context, opName string, op func(client *solrpc.Client) error) error {
	var errs []error
	for _, client := range c.clients() {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := retry.Do(func() error { return op(client) },
			retry.Context(ctx),
			retry.Attempts(retryAttempts),
			retry.Delay(retryDelay),
			retry.LastErrorOnly(true),
		)
		if err != nil {
			errs = append(errs, err)

			continue
		}

		return nil
	}

	return errors.Join(append(errs,
		fmt.Errorf("%s: all RPC clients failed for chain %q", opName, c.Name()),
	)...)
}

// Balance returns the lamport balance of the account.
func (c Chain) Balance(ctx context.Context, account solana.PublicKey) (uint64, error) {
	var balance uint64
	err := c.do(ctx, "getBalance", func(client *solrpc.Client) error {
		out, err := client.GetBalance(ctx, account, DefaultCommitment)
		if err != nil {
			return err
		}
		balance = out.Value

		return nil
	})

	return balance, err
}

// Slot returns the current slot.
func (c Chain) Slot(ctx context.Context) (uint64, error) {
	var slot uint64
	err := c.do(ctx, "getSlot", func(client *solrpc.Client) error {
		out, err := client.GetSlot(ctx, DefaultCommitment)
		if err != nil {
			return err
		}
		slot = out

		return nil
	})

	return slot, err
}
