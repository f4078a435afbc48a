package summary

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/dmagro/eth-block-summary/internal/rpc"
)

// Caller issues a single JSON-RPC call and returns the raw result payload.
// *rpc.Client satisfies this; tests substitute a recording mock.
type Caller interface {
	Call(ctx context.Context, method string, params ...interface{}) (json.RawMessage, error)
}

// Fetcher resolves an optional block number into a fetched block.
type Fetcher struct {
	caller Caller
}

// NewFetcher creates a Fetcher on top of the given JSON-RPC caller.
func NewFetcher(caller Caller) *Fetcher {
	return &Fetcher{caller: caller}
}

var jsonNull = []byte("null")

// Fetch retrieves the block identified by number (nil means latest) with
// full transaction objects embedded.
//
// Failure modes:
//   - ErrNegativeBlockNumber for number < 0, before any network call
//   - rpc.ErrBlockNotFound when the node returns a null result, i.e. the
//     requested number exceeds the chain's current height
//   - transport and protocol errors from the caller, propagated unchanged
func (f *Fetcher) Fetch(ctx context.Context, number *int64) (*rpc.Block, error) {
	blockID, err := BlockID(number)
	if err != nil {
		return nil, err
	}

	// The true flag requests full transaction objects instead of bare
	// hashes; Summarize needs from/to fields to group by address.
	result, err := f.caller.Call(ctx, "eth_getBlockByNumber", blockID, true)
	if err != nil {
		return nil, err
	}

	if len(result) == 0 || bytes.Equal(bytes.TrimSpace(result), jsonNull) {
		return nil, errors.Wrapf(rpc.ErrBlockNotFound, "no block for %s", blockID)
	}

	var block rpc.Block
	if err := json.Unmarshal(result, &block); err != nil {
		return nil, errors.Wrap(err, "parse block")
	}

	return &block, nil
}
