package evm_test

import (
	"testing"

	chain_selectors "github.com/smartcontractkit/chain-selectors"
	"github.com/stretchr/testify/assert"

	"github.com/cygnus-wealth/chain-access-framework/chain/evm"
)

func TestChain_ChainInfo(t *testing.T) {
	t.Parallel()

	c := evm.Chain{
		ChainMetadata: evm.ChainMetadata{
			Key:         "ethereum",
			ID:          1,
			ChainName:   "Ethereum",
			ChainFamily: chain_selectors.FamilyEVM,
		},
		RPCURLs: []string{"https://eth.llamarpc.com"},
	}

	assert.Equal(t, "ethereum", c.ChainKey())
	assert.Equal(t, uint64(1), c.ChainID())
	assert.Equal(t, "Ethereum", c.Name())
	assert.Equal(t, "Ethereum (ethereum)", c.String())
	assert.Equal(t, chain_selectors.FamilyEVM, c.Family())
}
