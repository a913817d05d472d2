// Package walletauth authenticates a claimed Ethereum address against a
// signed challenge string.
//
// Two signer models are supported: externally owned accounts (a single
// secp256k1 key signs the challenge directly) and smart-contract wallets
// (authorization is delegated to the wallet's on-chain isValidSignature
// logic, e.g. a multisig). The package is stateless; the only external
// collaborator is a ContractCaller used for the contract-wallet path.
package walletauth

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/blip-labs/walletauth/verify/evm"
)

// IsAuthorizedSigner reports whether signature authorizes signer over
// challenge.
//
// The challenge is hashed with HashPersonalMessage. A 65-byte signature is
// verified as an EOA signature via ECDSA recovery; anything else (including
// ERC-6492 wrapped signatures) is validated by calling isValidSignature on
// the signer address through caller. A false result means "not authorized";
// an error means the result could not be determined (malformed input or a
// failed provider call) and must not be treated as a denial.
//
// caller may be nil when only EOA signatures are expected; the contract path
// then fails with evm.ErrProvider.
func IsAuthorizedSigner(
	ctx context.Context,
	caller evm.ContractCaller,
	challenge string,
	signature []byte,
	signer common.Address,
) (bool, error) {
	return evm.NewVerifier(caller).IsAuthorizedSigner(ctx, challenge, signature, signer, evm.SignerTypeAuto)
}

// HashPersonalMessage returns the EIP-191 personal-message digest of
// challenge. See evm.HashPersonalMessage for the hex-literal decoding rule.
func HashPersonalMessage(challenge string) [32]byte {
	return evm.HashPersonalMessage(challenge)
}
