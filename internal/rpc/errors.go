package rpc

import (
	"errors"
	"fmt"
)

// ErrBlockNotFound is returned when the node answers a block query with a
// JSON null result. This happens when the requested block number exceeds
// the chain's current height.
var ErrBlockNotFound = errors.New("block not found")

// TransportError reports a failure to complete the HTTP exchange with the
// RPC endpoint: connection refused, timeout, or a non-2xx status. The
// underlying cause is wrapped, not discarded.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("rpc transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError reports that the endpoint was reachable and answered, but
// the JSON-RPC response body carried an error object instead of a result.
type ProtocolError struct {
	Code    int
	Message string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}
