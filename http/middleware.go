package http

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"github.com/blip-labs/walletauth/types"
	verifyevm "github.com/blip-labs/walletauth/verify/evm"
)

// verifyRequestSchema constrains the verify body before any crypto runs.
const verifyRequestSchema = `{
	"type": "object",
	"required": ["address", "challenge", "signature"],
	"properties": {
		"address":   {"type": "string", "pattern": "^0x[0-9a-fA-F]{40}$"},
		"challenge": {"type": "string", "minLength": 1},
		"signature": {"type": "string", "pattern": "^(0x)?[0-9a-fA-F]+$"}
	}
}`

// ChallengeAuth wires the challenge-response login flow into a gin router:
// one handler issues single-use challenges, the other verifies a signed
// challenge against the claimed address via the verification core.
type ChallengeAuth struct {
	verifier *verifyevm.Verifier
	store    *ChallengeStore
	schema   *gojsonschema.Schema
	log      *zap.Logger
}

// Option configures a ChallengeAuth.
type Option func(*ChallengeAuth)

// WithLogger attaches a zap logger.
func WithLogger(log *zap.Logger) Option {
	return func(a *ChallengeAuth) {
		a.log = log
	}
}

// WithChallengeTTL overrides the challenge lifetime.
func WithChallengeTTL(ttl time.Duration) Option {
	return func(a *ChallengeAuth) {
		a.store = NewChallengeStore(ttl)
	}
}

// NewChallengeAuth builds the auth flow around caller. caller may be nil if
// only EOA wallets will authenticate.
func NewChallengeAuth(caller verifyevm.ContractCaller, opts ...Option) (*ChallengeAuth, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(verifyRequestSchema))
	if err != nil {
		return nil, err
	}

	a := &ChallengeAuth{
		verifier: verifyevm.NewVerifier(caller),
		store:    NewChallengeStore(DefaultChallengeTTL),
		schema:   schema,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Routes mounts the auth endpoints on r.
func (a *ChallengeAuth) Routes(r gin.IRouter) {
	r.POST("/auth/challenge", a.ChallengeHandler)
	r.POST("/auth/verify", a.VerifyHandler)
}

// ChallengeHandler issues a fresh challenge for the requested address.
func (a *ChallengeAuth) ChallengeHandler(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.VerifyResult{Error: "failed to read request body"})
		return
	}

	req, err := types.ParseChallengeRequest(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.VerifyResult{Error: err.Error()})
		return
	}
	if !verifyevm.IsValidAddress(req.Address) {
		c.JSON(http.StatusBadRequest, types.VerifyResult{Error: "invalid address"})
		return
	}

	ch, err := a.store.Issue(req.Address)
	if err != nil {
		a.log.Error("failed to issue challenge", zap.Error(err))
		c.JSON(http.StatusInternalServerError, types.VerifyResult{Error: "failed to issue challenge"})
		return
	}

	a.log.Info("challenge issued",
		zap.String("address", ch.Address),
		zap.String("challenge_id", ch.ID),
	)
	c.JSON(http.StatusOK, ch)
}

// VerifyHandler validates a signed challenge. Outcomes are mapped onto HTTP
// statuses: authorized 200, not authorized or unknown challenge 401,
// malformed input 400, provider failure 502. A provider failure is
// inconclusive, never a denial.
func (a *ChallengeAuth) VerifyHandler(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.VerifyResult{Error: "failed to read request body"})
		return
	}

	result, err := a.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil || !result.Valid() {
		c.JSON(http.StatusBadRequest, types.VerifyResult{Error: "request does not match schema"})
		return
	}

	req, err := types.ParseVerifyRequest(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.VerifyResult{Error: err.Error()})
		return
	}

	if !a.store.Redeem(req.Challenge, req.Address) {
		a.log.Info("unknown or expired challenge", zap.String("address", req.Address))
		c.JSON(http.StatusUnauthorized, types.VerifyResult{Error: "unknown or expired challenge"})
		return
	}

	signature, err := verifyevm.HexToBytes(req.Signature)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.VerifyResult{Error: "signature is not valid hex"})
		return
	}

	authorized, err := a.verifier.IsAuthorizedSigner(
		c.Request.Context(),
		req.Challenge,
		signature,
		common.HexToAddress(req.Address),
		verifyevm.SignerTypeAuto,
	)
	switch {
	case errors.Is(err, verifyevm.ErrMalformedSignature):
		c.JSON(http.StatusBadRequest, types.VerifyResult{Error: err.Error()})
		return
	case errors.Is(err, verifyevm.ErrProvider):
		a.log.Error("verification inconclusive", zap.Error(err))
		c.JSON(http.StatusBadGateway, types.VerifyResult{Error: err.Error()})
		return
	case err != nil:
		a.log.Error("verification failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, types.VerifyResult{Error: err.Error()})
		return
	}

	if !authorized {
		a.log.Info("signature not authorized", zap.String("address", req.Address))
		c.JSON(http.StatusUnauthorized, types.VerifyResult{Authorized: false, Address: req.Address})
		return
	}

	a.log.Info("signer authenticated", zap.String("address", req.Address))
	c.JSON(http.StatusOK, types.VerifyResult{Authorized: true, Address: req.Address})
}
