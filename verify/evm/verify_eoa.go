package evm

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// VerifyEOASignature verifies an ECDSA signature from an externally owned
// account.
//
// The signing address is recovered from the 65-byte (r, s, v) signature over
// hash and compared to expectedAddress. Ethereum tooling emits v as 27/28
// while secp256k1 recovery expects 0/1, so both forms are accepted.
//
// A structurally valid signature that recovers to a different address yields
// (false, nil). Malformed bytes (wrong length, invalid recovery id,
// out-of-range curve values) yield an ErrMalformedSignature error instead:
// that is a caller error, not a failed authorization.
func VerifyEOASignature(
	hash []byte,
	signature []byte,
	expectedAddress common.Address,
) (bool, error) {
	if len(signature) != SignatureLength {
		return false, fmt.Errorf("%w: expected %d bytes, got %d",
			ErrMalformedSignature, SignatureLength, len(signature))
	}

	// Copy before normalizing v so the caller's slice is untouched.
	sig := make([]byte, SignatureLength)
	copy(sig, signature)
	if v := sig[64]; v >= 27 {
		sig[64] = v - 27
	}

	pubKey, err := crypto.SigToPub(hash, sig)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrMalformedSignature, err)
	}

	return crypto.PubkeyToAddress(*pubKey) == expectedAddress, nil
}
