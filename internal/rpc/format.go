package rpc

import (
	"fmt"
	"math/big"
	"strings"
)

// ParseHexUint64 converts a hex-encoded string (with or without "0x"
// prefix) to uint64. Ethereum returns all numeric block fields in this
// form. An empty string parses to zero rather than failing, so absent
// optional fields do not need special casing at every call site.
func ParseHexUint64(hex string) (uint64, error) {
	hex = strings.TrimPrefix(hex, "0x")
	if hex == "" {
		return 0, nil
	}

	val := new(big.Int)
	_, ok := val.SetString(hex, 16)
	if !ok || !val.IsUint64() {
		return 0, fmt.Errorf("invalid hex: %s", hex)
	}
	return val.Uint64(), nil
}
