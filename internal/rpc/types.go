package rpc

import "encoding/json"

// Request represents a JSON-RPC 2.0 request sent to an Ethereum node.
//
// The Params field uses []interface{} because different RPC methods take
// different parameter types: eth_getBlockByNumber takes a hex string and a
// boolean, eth_blockNumber takes nothing. The ID is hardcoded to 1 by the
// client since calls are synchronous HTTP (one request, one response per
// connection) and never need correlation.
type Request struct {
	JSONRPC string        `json:"jsonrpc"` // Always "2.0"
	Method  string        `json:"method"`  // RPC method name, e.g. "eth_getBlockByNumber"
	Params  []interface{} `json:"params"`  // Method arguments, varies per method
	ID      int           `json:"id"`      // Request identifier
}

// Response represents a JSON-RPC 2.0 response from an Ethereum node.
//
// Result is json.RawMessage because its shape depends on the method called;
// decoding is deferred to the caller, who knows what type to expect. Error
// is a pointer so that an absent "error" key decodes to nil, which is how
// success is detected regardless of HTTP status.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *Error          `json:"error,omitempty"`
}

// Error is the error object an Ethereum JSON-RPC server returns in place of
// a result. Standard codes are negative (-32700 parse error, -32601 method
// not found, ...); nodes may also return custom codes like -32000.
type Error struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Block holds the raw wire format of an Ethereum block as returned by
// eth_getBlockByNumber. All numeric fields arrive as 0x-prefixed hex
// strings, dictated by the Ethereum JSON-RPC specification.
//
// Transactions carries full transaction objects, not bare hashes: the
// summarizer groups by sender and receiver, so the fetcher always requests
// blocks with the fullTx flag set.
type Block struct {
	Number        string        `json:"number"`                  // Block height as hex (e.g. "0x1406f40")
	Hash          string        `json:"hash"`                    // 32-byte block hash as hex
	ParentHash    string        `json:"parentHash"`              // Hash of the parent block
	Timestamp     string        `json:"timestamp"`               // Unix timestamp as hex
	GasUsed       string        `json:"gasUsed"`                 // Gas consumed by all txns, as hex
	GasLimit      string        `json:"gasLimit"`                // Maximum gas allowed in this block, as hex
	BaseFeePerGas string        `json:"baseFeePerGas,omitempty"` // EIP-1559 base fee in wei (absent pre-London)
	Transactions  []Transaction `json:"transactions"`            // Full transaction objects
}

// Transaction is the subset of a wire transaction the service consumes.
//
// To is a pointer: contract-creation transactions carry no recipient, and
// the node encodes that as JSON null. From is always present for a signed
// transaction, but consumers tolerate it being empty.
type Transaction struct {
	Hash  string  `json:"hash"`
	From  string  `json:"from"`
	To    *string `json:"to"`
	Value string  `json:"value"`
}
