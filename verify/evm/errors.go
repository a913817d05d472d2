package evm

import "errors"

var (
	// ErrMalformedSignature reports signature bytes that cannot be parsed
	// into the structure the chosen path expects. Distinct from a
	// structurally valid but wrong signature, which is a (false, nil)
	// verification result.
	ErrMalformedSignature = errors.New("malformed signature")

	// ErrProvider reports a failed contract-call collaborator: network
	// error, revert, or return data of the wrong shape. The signature's
	// validity could not be determined; callers must not treat this as a
	// denial.
	ErrProvider = errors.New("contract call failed")
)
