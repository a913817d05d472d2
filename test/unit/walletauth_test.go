package unit_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	walletauth "github.com/blip-labs/walletauth"
	signerevm "github.com/blip-labs/walletauth/signers/evm"
	verifyevm "github.com/blip-labs/walletauth/verify/evm"
)

// acceptAllWallet answers every isValidSignature call with the accepting
// magic value, after checking the calldata decodes.
type acceptAllWallet struct{}

func (acceptAllWallet) CallContract(ctx context.Context, contract common.Address, data []byte) ([]byte, error) {
	const walletABI = `[{
		"inputs": [
			{"type": "bytes32", "name": "hash"},
			{"type": "bytes", "name": "signature"}
		],
		"name": "isValidSignature",
		"outputs": [{"type": "bytes4", "name": "magicValue"}],
		"stateMutability": "view",
		"type": "function"
	}]`

	parsed, err := abi.JSON(strings.NewReader(walletABI))
	if err != nil {
		return nil, err
	}
	if _, err := parsed.Methods["isValidSignature"].Inputs.Unpack(data[4:]); err != nil {
		return nil, err
	}

	out := make([]byte, 32)
	copy(out, []byte{0x20, 0xc1, 0x3b, 0x0b})
	return out, nil
}

type failingCaller struct{}

func (failingCaller) CallContract(ctx context.Context, contract common.Address, data []byte) ([]byte, error) {
	return nil, errors.New("rpc: connection reset")
}

func TestTopLevelAPI_EOA(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	signer, err := signerevm.NewChallengeSignerFromPrivateKey(
		"0x" + common.Bytes2Hex(crypto.FromECDSA(key)))
	require.NoError(t, err)

	sig, err := signer.SignChallenge("session nonce 7f3a")
	require.NoError(t, err)

	ok, err := walletauth.IsAuthorizedSigner(
		context.Background(), nil, "session nonce 7f3a", sig, signer.Address())
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = walletauth.IsAuthorizedSigner(
		context.Background(), nil, "another nonce", sig, signer.Address())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestTopLevelAPI_ContractWallet(t *testing.T) {
	wallet := common.HexToAddress("0x00000000000000000000000000000000000000ee")

	// Anything that is not a bare 65-byte signature routes to the wallet.
	blob := make([]byte, 195)
	ok, err := walletauth.IsAuthorizedSigner(
		context.Background(), acceptAllWallet{}, "wallet session", blob, wallet)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestTopLevelAPI_ProviderErrorPropagates(t *testing.T) {
	wallet := common.HexToAddress("0x00000000000000000000000000000000000000ee")

	ok, err := walletauth.IsAuthorizedSigner(
		context.Background(), failingCaller{}, "wallet session", make([]byte, 130), wallet)
	require.ErrorIs(t, err, verifyevm.ErrProvider)
	require.False(t, ok)
}

func TestTopLevelAPI_HashPersonalMessage(t *testing.T) {
	want := common.Hex2Bytes("76b2e96714d3b5e6eb1d1c509265430b907b44f72b2a22b06fcd4d96372b8565")
	got := walletauth.HashPersonalMessage("foo")
	require.Equal(t, want, got[:])
}
