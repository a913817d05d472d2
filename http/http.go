// Package http provides the HTTP-facing side of walletauth: a gin-mounted
// challenge-response flow where a client requests a single-use challenge for
// its address, signs it, and presents the signature for verification.
package http

import verifyevm "github.com/blip-labs/walletauth/verify/evm"

// NewAuth is a convenience alias for NewChallengeAuth.
func NewAuth(caller verifyevm.ContractCaller, opts ...Option) (*ChallengeAuth, error) {
	return NewChallengeAuth(caller, opts...)
}
