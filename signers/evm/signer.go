package evm

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	verifyevm "github.com/blip-labs/walletauth/verify/evm"
)

// ChallengeSigner signs challenge strings with a secp256k1 private key,
// producing the 65-byte signature the EOA verification path expects.
type ChallengeSigner struct {
	privateKey *ecdsa.PrivateKey
	address    common.Address
}

// NewChallengeSignerFromPrivateKey creates a signer from a hex-encoded
// private key, with or without a 0x prefix.
func NewChallengeSignerFromPrivateKey(privateKeyHex string) (*ChallengeSigner, error) {
	privateKeyHex = strings.TrimPrefix(privateKeyHex, "0x")

	privateKey, err := crypto.HexToECDSA(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	return &ChallengeSigner{
		privateKey: privateKey,
		address:    crypto.PubkeyToAddress(privateKey.PublicKey),
	}, nil
}

// Address returns the signer's Ethereum address.
func (s *ChallengeSigner) Address() common.Address {
	return s.address
}

// SignChallenge signs the personal-message digest of challenge and returns a
// 65-byte (r, s, v) signature with v in 27/28.
func (s *ChallengeSigner) SignChallenge(challenge string) ([]byte, error) {
	digest := verifyevm.HashPersonalMessage(challenge)

	sig, err := crypto.Sign(digest[:], s.privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign challenge: %w", err)
	}
	if sig[64] < 27 {
		sig[64] += 27
	}
	return sig, nil
}
