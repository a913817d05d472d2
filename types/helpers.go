package types

import (
	"encoding/json"
	"fmt"
)

// ParseVerifyRequest unmarshals and shape-checks a verify request body.
func ParseVerifyRequest(data []byte) (*VerifyRequest, error) {
	var req VerifyRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse verify request: %w", err)
	}
	if req.Address == "" || req.Challenge == "" || req.Signature == "" {
		return nil, fmt.Errorf("verify request missing required fields")
	}
	return &req, nil
}

// ParseChallengeRequest unmarshals a challenge request body.
func ParseChallengeRequest(data []byte) (*ChallengeRequest, error) {
	var req ChallengeRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse challenge request: %w", err)
	}
	if req.Address == "" {
		return nil, fmt.Errorf("challenge request missing address")
	}
	return &req, nil
}
