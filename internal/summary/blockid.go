// Package summary turns an optional block number into a fetched block and
// reduces it to a per-address transaction histogram.
package summary

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// BlockLatest is the JSON-RPC sentinel for the current head of the chain.
const BlockLatest = "latest"

// ErrNegativeBlockNumber is returned for block numbers below zero. The
// check happens before any network activity.
var ErrNegativeBlockNumber = errors.New("block number cannot be negative")

// BlockID converts an optional block number to its JSON-RPC wire form:
// nil becomes "latest", a non-negative n becomes a lowercase 0x-prefixed
// hex string with no leading zeros ("0x0" for zero).
func BlockID(number *int64) (string, error) {
	if number == nil {
		return BlockLatest, nil
	}
	if *number < 0 {
		return "", errors.Wrapf(ErrNegativeBlockNumber, "got %d", *number)
	}
	return hexutil.EncodeUint64(uint64(*number)), nil
}
