package evm

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// erc6492MagicSuffix is the 32-byte suffix marking an ERC-6492 wrapped
// signature: bytes32(uint256(keccak256("erc6492.invalid.signature")) - 1).
var erc6492MagicSuffix = common.Hex2Bytes(
	"6492649264926492649264926492649264926492649264926492649264926492",
)

// IsERC6492Signature reports whether a signature carries the ERC-6492 magic
// suffix used by counterfactual smart-wallet signatures.
func IsERC6492Signature(signature []byte) bool {
	if len(signature) < 32 {
		return false
	}
	return bytes.Equal(signature[len(signature)-32:], erc6492MagicSuffix)
}

// ParseERC6492Signature unwraps an ERC-6492 signature:
//
//	abi.encode(address factory, bytes factoryCalldata, bytes signature) || magic
//
// An unwrapped signature is returned unchanged as the InnerSignature with a
// zero Factory. A wrapper that carries the magic suffix but does not decode
// is a caller error and fails with ErrMalformedSignature.
func ParseERC6492Signature(signature []byte) (*ERC6492SignatureData, error) {
	if !IsERC6492Signature(signature) {
		return &ERC6492SignatureData{InnerSignature: signature}, nil
	}

	payload := signature[:len(signature)-32]

	addressTy, err := abi.NewType("address", "", nil)
	if err != nil {
		return nil, err
	}
	bytesTy, err := abi.NewType("bytes", "", nil)
	if err != nil {
		return nil, err
	}
	args := abi.Arguments{
		{Type: addressTy}, // factory
		{Type: bytesTy},   // factoryCalldata
		{Type: bytesTy},   // inner signature
	}

	unpacked, err := args.Unpack(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: bad ERC-6492 wrapper: %v", ErrMalformedSignature, err)
	}
	if len(unpacked) != 3 {
		return nil, fmt.Errorf("%w: ERC-6492 wrapper has %d fields, want 3",
			ErrMalformedSignature, len(unpacked))
	}

	factory, ok := unpacked[0].(common.Address)
	if !ok {
		return nil, fmt.Errorf("%w: ERC-6492 factory is not an address", ErrMalformedSignature)
	}
	factoryCalldata, ok := unpacked[1].([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: ERC-6492 factory calldata is not bytes", ErrMalformedSignature)
	}
	inner, ok := unpacked[2].([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: ERC-6492 inner signature is not bytes", ErrMalformedSignature)
	}

	var factoryBytes [20]byte
	copy(factoryBytes[:], factory.Bytes())

	return &ERC6492SignatureData{
		Factory:         factoryBytes,
		FactoryCalldata: factoryCalldata,
		InnerSignature:  inner,
	}, nil
}
