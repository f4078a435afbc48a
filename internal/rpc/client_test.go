package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCallSuccess(t *testing.T) {
	var gotReq Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"0x1406f40"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	result, err := client.Call(context.Background(), "eth_blockNumber")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(result) != `"0x1406f40"` {
		t.Errorf("result = %s, want \"0x1406f40\"", result)
	}

	if gotReq.JSONRPC != "2.0" {
		t.Errorf("jsonrpc = %q, want 2.0", gotReq.JSONRPC)
	}
	if gotReq.Method != "eth_blockNumber" {
		t.Errorf("method = %q, want eth_blockNumber", gotReq.Method)
	}
	if gotReq.ID != 1 {
		t.Errorf("id = %d, want 1", gotReq.ID)
	}
	if gotReq.Params == nil || len(gotReq.Params) != 0 {
		t.Errorf("params = %v, want empty list", gotReq.Params)
	}
}

func TestCallSendsOrderedParams(t *testing.T) {
	var gotReq Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":null}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	if _, err := client.Call(context.Background(), "eth_getBlockByNumber", "latest", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(gotReq.Params) != 2 {
		t.Fatalf("params length = %d, want 2", len(gotReq.Params))
	}
	if gotReq.Params[0] != "latest" {
		t.Errorf("params[0] = %v, want latest", gotReq.Params[0])
	}
	if gotReq.Params[1] != true {
		t.Errorf("params[1] = %v, want true", gotReq.Params[1])
	}
}

func TestCallHTTPErrorStatus(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.Call(context.Background(), "eth_blockNumber")

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("error = %v, want TransportError", err)
	}
	// Single attempt per call, no retries.
	if calls != 1 {
		t.Errorf("server saw %d calls, want 1", calls)
	}
}

func TestCallConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url, time.Second)
	_, err := client.Call(context.Background(), "eth_blockNumber")

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("error = %v, want TransportError", err)
	}
}

func TestCallRPCErrorBody(t *testing.T) {
	// JSON-RPC errors arrive with HTTP 200; the body decides.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"error":{"code":-32601,"message":"method not found"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.Call(context.Background(), "eth_bogus")

	var protocolErr *ProtocolError
	if !errors.As(err, &protocolErr) {
		t.Fatalf("error = %v, want ProtocolError", err)
	}
	if protocolErr.Code != -32601 {
		t.Errorf("code = %d, want -32601", protocolErr.Code)
	}
	if protocolErr.Message != "method not found" {
		t.Errorf("message = %q, want \"method not found\"", protocolErr.Message)
	}
}

func TestCallInvalidJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.Call(context.Background(), "eth_blockNumber")

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("error = %v, want TransportError", err)
	}
}

func TestCallTimeout(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	client := NewClient(server.URL, 50*time.Millisecond)
	start := time.Now()
	_, err := client.Call(context.Background(), "eth_blockNumber")

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("error = %v, want TransportError", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("call took %s, timeout not honored", elapsed)
	}
}

func TestCallContextCancellation(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	client := NewClient(server.URL, 10*time.Second)
	_, err := client.Call(ctx, "eth_blockNumber")

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("error = %v, want TransportError", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want wrapped context.Canceled", err)
	}
}
