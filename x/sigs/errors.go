package sigs

import (
	"github.com/iov-one/vault/errors"
)

// x/sigs reserves 120 ~ 129.
var (
	// ErrInvalidSequence is returned when a signature carries a nonce
	// that is not the one expected by the account.
	ErrInvalidSequence = errors.Register(120, "invalid sequence number")
)
