package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmagro/eth-block-summary/internal/rpc"
	"github.com/dmagro/eth-block-summary/internal/summary"
)

// ErrBadNumber is returned when the number query parameter is not an
// integer.
var ErrBadNumber = errors.New("number must be an integer")

// errorResponse is the JSON body returned for every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

// HTTPCodeForError maps the failure taxonomy onto response status codes:
// caller mistakes are 400, upstream trouble is 502, everything else is 500.
//
// "Block not found" is folded into 502 rather than 404: the caller's input
// was well-formed, the chain just does not have that height yet, and the
// service treats that the same as any other upstream miss.
func HTTPCodeForError(err error) int {
	var transportErr *rpc.TransportError
	var protocolErr *rpc.ProtocolError

	switch {
	case errors.Is(err, summary.ErrNegativeBlockNumber), errors.Is(err, ErrBadNumber):
		return http.StatusBadRequest
	case errors.Is(err, rpc.ErrBlockNotFound):
		return http.StatusBadGateway
	case errors.As(err, &transportErr), errors.As(err, &protocolErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as a JSON error body. Unexpected failures get a
// generic message so internals never leak to the caller; the full error is
// left to the access log.
func writeError(w http.ResponseWriter, status int, err error) {
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "unexpected server error"
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
