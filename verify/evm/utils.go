package evm

import (
	"encoding/hex"
	"strings"
)

// HexToBytes converts a hex string to bytes, tolerating a 0x prefix.
func HexToBytes(hexStr string) ([]byte, error) {
	cleaned := strings.TrimPrefix(hexStr, "0x")
	return hex.DecodeString(cleaned)
}

// NormalizeAddress lowercases an address string and ensures a 0x prefix.
func NormalizeAddress(address string) string {
	addr := strings.TrimPrefix(strings.ToLower(address), "0x")
	return "0x" + addr
}

// IsValidAddress checks if a string is a valid hex-encoded Ethereum address.
func IsValidAddress(address string) bool {
	addr := strings.TrimPrefix(address, "0x")
	if len(addr) != 40 {
		return false
	}
	_, err := hex.DecodeString(addr)
	return err == nil
}
