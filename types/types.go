// Package types defines the JSON envelopes exchanged by the challenge-auth
// HTTP flow.
package types

import "time"

// ChallengeRequest asks for a fresh challenge for an address.
type ChallengeRequest struct {
	Address string `json:"address"` // Ethereum address (hex)
}

// Challenge is an issued, single-use challenge the client must sign.
type Challenge struct {
	ID        string    `json:"id"`        // Opaque challenge id
	Address   string    `json:"address"`   // Address the challenge was issued for
	Challenge string    `json:"challenge"` // The string to sign (personal message)
	ExpiresAt time.Time `json:"expiresAt"` // After this, verification is refused
}

// VerifyRequest presents a signed challenge for verification.
type VerifyRequest struct {
	Address   string `json:"address"`   // Claimed signer address (hex)
	Challenge string `json:"challenge"` // The issued challenge string
	Signature string `json:"signature"` // Signature bytes (hex)
}

// VerifyResult reports the authorization outcome.
type VerifyResult struct {
	Authorized bool   `json:"authorized"`
	Address    string `json:"address,omitempty"`
	Error      string `json:"error,omitempty"`
}
