package evm

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Verifier authenticates claimed addresses against signed challenges. It is
// stateless and safe for concurrent use; every call is an independent
// computation.
type Verifier struct {
	caller ContractCaller
}

// NewVerifier returns a Verifier that uses caller for contract-wallet
// validation. caller may be nil when only EOA signatures are expected; the
// contract path then fails with ErrProvider.
func NewVerifier(caller ContractCaller) *Verifier {
	return &Verifier{caller: caller}
}

// ClassifySignature decides the verification path for a signature by shape.
// ERC-6492 wrapped signatures always belong to a contract wallet, a bare
// 65-byte signature is an EOA signature, and everything else (multisig
// blobs, packed owner signatures) goes to the contract path.
func ClassifySignature(signature []byte) SignerType {
	if IsERC6492Signature(signature) {
		return SignerTypeContract
	}
	if len(signature) == SignatureLength {
		return SignerTypeEOA
	}
	return SignerTypeContract
}

// IsAuthorizedSigner reports whether signature authorizes signer over
// challenge.
//
// The challenge is hashed with HashPersonalMessage, then verified on the
// path selected by signerType; SignerTypeAuto defers to ClassifySignature.
// There is no fallback between paths and no retry: a false result means the
// chosen path determined "not authorized", an error means the result could
// not be determined.
func (v *Verifier) IsAuthorizedSigner(
	ctx context.Context,
	challenge string,
	signature []byte,
	signer common.Address,
	signerType SignerType,
) (bool, error) {
	if len(signature) == 0 {
		return false, fmt.Errorf("%w: empty signature", ErrMalformedSignature)
	}

	digest := HashPersonalMessage(challenge)

	if signerType == SignerTypeAuto {
		signerType = ClassifySignature(signature)
	}

	switch signerType {
	case SignerTypeEOA:
		return VerifyEOASignature(digest[:], signature, signer)

	case SignerTypeContract:
		sigData, err := ParseERC6492Signature(signature)
		if err != nil {
			return false, err
		}
		return VerifyContractSignature(ctx, v.caller, signer, digest, sigData.InnerSignature)

	default:
		return false, fmt.Errorf("unknown signer type %d", signerType)
	}
}
