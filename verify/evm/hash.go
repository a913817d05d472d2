package evm

import (
	"encoding/hex"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
)

// personalMessagePrefix is the EIP-191 prefix. The decimal byte length of the
// payload is appended before hashing.
const personalMessagePrefix = "\x19Ethereum Signed Message:\n"

// IsHexChallenge reports whether a challenge string is a well-formed hex
// literal: a "0x" prefix followed by an even number of hex digits. Odd-length
// digit runs, non-hex characters, and unprefixed strings all fail the check
// and are treated as UTF-8 text by ChallengeBytes.
func IsHexChallenge(challenge string) bool {
	if len(challenge) < 2 || challenge[0] != '0' || challenge[1] != 'x' {
		return false
	}
	digits := challenge[2:]
	if len(digits)%2 != 0 {
		return false
	}
	_, err := hex.DecodeString(digits)
	return err == nil
}

// ChallengeBytes returns the byte payload a signer is expected to have
// signed: the decoded bytes for a well-formed hex literal, the UTF-8 bytes
// otherwise.
func ChallengeBytes(challenge string) []byte {
	if IsHexChallenge(challenge) {
		b, _ := hex.DecodeString(challenge[2:])
		return b
	}
	return []byte(challenge)
}

// HashPersonalMessage converts a challenge string into the 32-byte digest
// that must have been signed: keccak256 over the EIP-191 prefix, the decimal
// payload length, and the payload.
//
// The payload encoding follows ChallengeBytes. A hex-looking string and its
// UTF-8 interpretation hash to unrelated digests, so callers must know which
// encoding the signer actually used; the detection rule is exposed through
// IsHexChallenge for that reason.
func HashPersonalMessage(challenge string) [32]byte {
	payload := ChallengeBytes(challenge)
	prefix := fmt.Sprintf("%s%d", personalMessagePrefix, len(payload))

	var digest [32]byte
	copy(digest[:], crypto.Keccak256([]byte(prefix), payload))
	return digest
}
