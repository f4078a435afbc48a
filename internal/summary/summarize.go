package summary

import (
	"github.com/dmagro/eth-block-summary/internal/rpc"
)

// ReceiverNull is the by_receiver key used for contract-creation
// transactions, which carry no recipient. A hypothetical literal address
// string "null" would collide with it; no such address occurs on the real
// chain, so the string form is kept for output compatibility.
const ReceiverNull = "null"

// Summary is the externally visible reduction of a block: transaction
// count plus per-address send and receive tallies. Map iteration order is
// not part of the contract.
type Summary struct {
	BlockNumber       *uint64        `json:"block_number"`       // nil when the block carried no parseable number
	BlockHash         *string        `json:"block_hash"`         // nil when absent
	TotalTransactions int            `json:"total_transactions"` // length of the transaction list
	BySender          map[string]int `json:"by_sender"`          // sender address -> count
	ByReceiver        map[string]int `json:"by_receiver"`        // receiver address (or "null") -> count
}

// Summarize reduces a block to its transaction histogram. It is a pure
// function: no I/O, deterministic for identical input.
//
// A transaction with an empty from field increments no sender tally; a
// signed transaction always has one, but malformed input is skipped rather
// than rejected. Every transaction increments exactly one receiver tally,
// under ReceiverNull when it creates a contract.
func Summarize(block *rpc.Block) Summary {
	s := Summary{
		TotalTransactions: len(block.Transactions),
		BySender:          make(map[string]int),
		ByReceiver:        make(map[string]int),
	}

	for _, tx := range block.Transactions {
		if tx.From != "" {
			s.BySender[tx.From]++
		}

		if tx.To == nil {
			s.ByReceiver[ReceiverNull]++
		} else {
			s.ByReceiver[*tx.To]++
		}
	}

	// An absent or malformed number field yields a JSON null block_number,
	// never an error.
	if block.Number != "" {
		if num, err := rpc.ParseHexUint64(block.Number); err == nil {
			s.BlockNumber = &num
		}
	}
	if block.Hash != "" {
		hash := block.Hash
		s.BlockHash = &hash
	}

	return s
}
