package evm

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

func TestVerifyEOASignature(t *testing.T) {
	privateKey, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	address := crypto.PubkeyToAddress(privateKey.PublicKey)

	digest := HashPersonalMessage("login challenge 42")
	sig, err := crypto.Sign(digest[:], privateKey)
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}
	sig[64] += 27

	otherDigest := HashPersonalMessage("a different challenge")
	otherSig, _ := crypto.Sign(otherDigest[:], privateKey)
	otherSig[64] += 27

	tests := []struct {
		name      string
		hash      []byte
		signature []byte
		address   common.Address
		want      bool
		wantErr   bool
	}{
		{
			name:      "valid signature",
			hash:      digest[:],
			signature: sig,
			address:   address,
			want:      true,
		},
		{
			name:      "signature over a different challenge",
			hash:      digest[:],
			signature: otherSig,
			address:   address,
			want:      false,
		},
		{
			name:      "claimed address from a different key",
			hash:      digest[:],
			signature: sig,
			address:   common.HexToAddress("0x0000000000000000000000000000000000000001"),
			want:      false,
		},
		{
			name:      "64-byte signature",
			hash:      digest[:],
			signature: make([]byte, 64),
			address:   address,
			wantErr:   true,
		},
		{
			name:      "130-byte multisig blob",
			hash:      digest[:],
			signature: append(append([]byte{}, sig...), sig...),
			address:   address,
			wantErr:   true,
		},
		{
			name:      "empty signature",
			hash:      digest[:],
			signature: []byte{},
			address:   address,
			wantErr:   true,
		},
		{
			name:      "invalid recovery id",
			hash:      digest[:],
			signature: append(append([]byte{}, sig[:64]...), 9),
			address:   address,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VerifyEOASignature(tt.hash, tt.signature, tt.address)

			if (err != nil) != tt.wantErr {
				t.Errorf("VerifyEOASignature() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if got {
					t.Error("VerifyEOASignature() returned true with an error")
				}
				if !errors.Is(err, ErrMalformedSignature) {
					t.Errorf("error %v is not ErrMalformedSignature", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("VerifyEOASignature() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVerifyEOASignature_VNormalization(t *testing.T) {
	privateKey, _ := crypto.GenerateKey()
	address := crypto.PubkeyToAddress(privateKey.PublicKey)
	digest := HashPersonalMessage("v normalization")

	t.Run("v in 0/1", func(t *testing.T) {
		sig, _ := crypto.Sign(digest[:], privateKey)
		got, err := VerifyEOASignature(digest[:], sig, address)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got {
			t.Error("signature with raw recovery id should verify")
		}
	})

	t.Run("v in 27/28", func(t *testing.T) {
		sig, _ := crypto.Sign(digest[:], privateKey)
		sig[64] += 27
		got, err := VerifyEOASignature(digest[:], sig, address)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got {
			t.Error("signature with Ethereum-style v should verify")
		}
	})

	t.Run("caller's slice is not mutated", func(t *testing.T) {
		sig, _ := crypto.Sign(digest[:], privateKey)
		sig[64] += 27
		v := sig[64]
		if _, err := VerifyEOASignature(digest[:], sig, address); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sig[64] != v {
			t.Errorf("v byte mutated: %d -> %d", v, sig[64])
		}
	})
}
