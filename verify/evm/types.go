package evm

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// SignatureLength is the byte length of a single (r, s, v) ECDSA signature.
const SignatureLength = 65

// ContractCaller executes a read-only call against a contract and returns the
// raw return data. This is the only provider capability the package needs;
// implementations wrap an RPC client (see signers/evm) or an in-memory fake.
type ContractCaller interface {
	CallContract(ctx context.Context, contract common.Address, data []byte) ([]byte, error)
}

// SignerType selects the verification path for a claimed address.
type SignerType int

const (
	// SignerTypeAuto classifies by signature shape: a bare 65-byte signature
	// is treated as an EOA signature, everything else goes through the
	// contract-wallet path.
	SignerTypeAuto SignerType = iota

	// SignerTypeEOA forces ECDSA recovery. Input that is not exactly one
	// 65-byte signature fails with ErrMalformedSignature.
	SignerTypeEOA

	// SignerTypeContract forces on-chain isValidSignature validation, even
	// for 65-byte signatures (e.g. a 1-of-1 contract wallet).
	SignerTypeContract
)

func (t SignerType) String() string {
	switch t {
	case SignerTypeAuto:
		return "auto"
	case SignerTypeEOA:
		return "eoa"
	case SignerTypeContract:
		return "contract"
	default:
		return "unknown"
	}
}

// ERC6492SignatureData holds the components of an ERC-6492 wrapped signature.
// For a signature without the wrapper, Factory is zero and InnerSignature is
// the original bytes.
type ERC6492SignatureData struct {
	Factory         [20]byte
	FactoryCalldata []byte
	InnerSignature  []byte
}
