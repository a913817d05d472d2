package http

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/blip-labs/walletauth/types"
	verifyevm "github.com/blip-labs/walletauth/verify/evm"
)

// DefaultChallengeTTL bounds how long an issued challenge stays valid.
const DefaultChallengeTTL = 5 * time.Minute

// ChallengeStore issues and redeems single-use login challenges. Challenges
// are held in memory and keyed by the challenge string itself; redeeming
// removes the entry, so a signature can only ever be presented once.
type ChallengeStore struct {
	ttl        time.Duration
	challenges sync.Map // challenge string -> types.Challenge
}

// NewChallengeStore returns a store whose challenges expire after ttl;
// ttl <= 0 uses DefaultChallengeTTL.
func NewChallengeStore(ttl time.Duration) *ChallengeStore {
	if ttl <= 0 {
		ttl = DefaultChallengeTTL
	}
	return &ChallengeStore{ttl: ttl}
}

// Issue creates a fresh challenge for address.
func (s *ChallengeStore) Issue(address string) (types.Challenge, error) {
	nonce := make([]byte, 32)
	if _, err := rand.Read(nonce); err != nil {
		return types.Challenge{}, fmt.Errorf("failed to generate nonce: %w", err)
	}

	id := uuid.NewString()
	ch := types.Challenge{
		ID:        id,
		Address:   verifyevm.NormalizeAddress(address),
		Challenge: fmt.Sprintf("walletauth login %s %s", id, hex.EncodeToString(nonce)),
		ExpiresAt: time.Now().Add(s.ttl),
	}
	s.challenges.Store(ch.Challenge, ch)
	return ch, nil
}

// Redeem consumes challenge for address. It returns false for unknown,
// already-used, expired, or wrong-address challenges; in every case the
// entry is gone afterwards.
func (s *ChallengeStore) Redeem(challenge, address string) bool {
	v, ok := s.challenges.LoadAndDelete(challenge)
	if !ok {
		return false
	}
	ch := v.(types.Challenge)
	if time.Now().After(ch.ExpiresAt) {
		return false
	}
	return ch.Address == verifyevm.NormalizeAddress(address)
}
