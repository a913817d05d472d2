// Package evm provides concrete collaborators for the verification core: an
// ethclient-backed contract caller and a private-key challenge signer.
package evm

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	verifyevm "github.com/blip-labs/walletauth/verify/evm"
)

// CallerClient implements verify/evm.ContractCaller over a JSON-RPC endpoint.
// It exposes exactly the one capability the verifier needs: a read-only
// contract call returning raw bytes. Cancellation and timeouts come from the
// caller's context; the client never retries.
type CallerClient struct {
	ethClient *ethclient.Client
	log       *zap.Logger
}

// CallerOption configures a CallerClient.
type CallerOption func(*CallerClient)

// WithLogger attaches a zap logger for call-level debug logging.
func WithLogger(log *zap.Logger) CallerOption {
	return func(c *CallerClient) {
		c.log = log
	}
}

// NewCallerClient dials rpcURL and returns a contract caller bound to it.
func NewCallerClient(rpcURL string, opts ...CallerOption) (*CallerClient, error) {
	ethClient, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	c := &CallerClient{
		ethClient: ethClient,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

var _ verifyevm.ContractCaller = (*CallerClient)(nil)

// CallContract executes a read-only call against contract at the latest
// block and returns the raw return data.
func (c *CallerClient) CallContract(ctx context.Context, contract common.Address, data []byte) ([]byte, error) {
	msg := ethereum.CallMsg{
		To:   &contract,
		Data: data,
	}

	ret, err := c.ethClient.CallContract(ctx, msg, nil)
	if err != nil {
		c.log.Debug("contract call failed",
			zap.String("contract", contract.Hex()),
			zap.Error(err),
		)
		return nil, err
	}

	c.log.Debug("contract call",
		zap.String("contract", contract.Hex()),
		zap.Int("calldata_bytes", len(data)),
		zap.Int("return_bytes", len(ret)),
	)
	return ret, nil
}

// Close releases the underlying RPC connection.
func (c *CallerClient) Close() {
	c.ethClient.Close()
}
