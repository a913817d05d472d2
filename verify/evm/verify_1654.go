package evm

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// erc1654ABI is the minimal ABI for the isValidSignature(bytes32,bytes)
// validation method exposed by contract wallets.
const erc1654ABI = `[{
	"inputs": [
		{"type": "bytes32", "name": "hash"},
		{"type": "bytes", "name": "signature"}
	],
	"name": "isValidSignature",
	"outputs": [{"type": "bytes4", "name": "magicValue"}],
	"stateMutability": "view",
	"type": "function"
}]`

// erc1654MagicValue is the bytes4 value a wallet returns when it accepts the
// signature.
var erc1654MagicValue = [4]byte{0x20, 0xc1, 0x3b, 0x0b}

// VerifyContractSignature asks the contract wallet at wallet whether
// signature authorizes hash, via a read-only isValidSignature call through
// caller.
//
// The signature bytes are passed through opaquely; their internal layout
// (e.g. concatenated multisig blocks) is the wallet's concern. The wallet
// accepts by returning the magic value 0x20c13b0b; any other magic yields
// (false, nil).
//
// Errors from the call itself (network failure, revert, return data that is
// not a bytes4) surface as ErrProvider errors, never as false: a failed call
// means the validity was not determined.
func VerifyContractSignature(
	ctx context.Context,
	caller ContractCaller,
	wallet common.Address,
	hash [32]byte,
	signature []byte,
) (bool, error) {
	if caller == nil {
		return false, fmt.Errorf("%w: no contract caller configured", ErrProvider)
	}

	parsed, err := abi.JSON(strings.NewReader(erc1654ABI))
	if err != nil {
		return false, err
	}

	data, err := parsed.Pack("isValidSignature", hash, signature)
	if err != nil {
		return false, fmt.Errorf("encode isValidSignature call: %w", err)
	}

	ret, err := caller.CallContract(ctx, wallet, data)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	out, err := parsed.Unpack("isValidSignature", ret)
	if err != nil {
		return false, fmt.Errorf("%w: bad isValidSignature return data: %v", ErrProvider, err)
	}
	magic, ok := out[0].([4]byte)
	if !ok {
		return false, fmt.Errorf("%w: isValidSignature did not return bytes4", ErrProvider)
	}

	return magic == erc1654MagicValue, nil
}
