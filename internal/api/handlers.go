package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/dmagro/eth-block-summary/internal/rpc"
	"github.com/dmagro/eth-block-summary/internal/summary"
)

// BlockFetcher resolves an optional block number into a fetched block.
// *summary.Fetcher satisfies this; handler tests substitute mocks.
type BlockFetcher interface {
	Fetch(ctx context.Context, number *int64) (*rpc.Block, error)
}

type handlers struct {
	fetcher BlockFetcher
	logger  *zap.Logger
}

// root serves a static capability description of the service.
func (h *handlers) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Ethereum block summary API",
		"endpoints": map[string]interface{}{
			"/block": map[string]interface{}{
				"method": "GET",
				"query_params": map[string]string{
					"number": "optional integer block number; if omitted, uses 'latest'",
				},
				"examples": []string{
					"/block",
					"/block?number=21000000",
				},
			},
		},
	})
}

// block fetches one block from the configured RPC endpoint and returns its
// summary. The outbound call inherits the request context, so a client
// that disconnects cancels the RPC call as well.
func (h *handlers) block(w http.ResponseWriter, r *http.Request) {
	var number *int64
	if raw := r.URL.Query().Get("number"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, errors.Wrapf(ErrBadNumber, "got %q", raw))
			return
		}
		number = &n
	}

	block, err := h.fetcher.Fetch(r.Context(), number)
	if err != nil {
		status := HTTPCodeForError(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("block fetch failed", zap.Error(err))
		} else {
			h.logger.Warn("block fetch failed", zap.Int("status", status), zap.Error(err))
		}
		writeError(w, status, err)
		return
	}

	writeJSON(w, http.StatusOK, summary.Summarize(block))
}

// healthz reports process liveness. It deliberately does not probe the RPC
// endpoint; upstream health shows up in /block responses and metrics.
func (h *handlers) healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
