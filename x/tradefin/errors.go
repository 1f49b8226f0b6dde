package tradefin

import (
	"github.com/iov-one/vault/errors"
)

// Failure kinds of the trade finance extension. Unauthorized and
// InvalidAmount are the generic kinds, named here so that the whole set is
// visible in one place.
//
// x/tradefin reserves 1200 ~ 1209.
var (
	ErrUnauthorized          = errors.ErrUnauthorized
	ErrInvalidAmount         = errors.ErrAmount
	ErrInsufficientBalance   = errors.Register(1201, "insufficient balance")
	ErrEscrowNotFound        = errors.Register(1202, "escrow not found")
	ErrEscrowAlreadyReleased = errors.Register(1203, "escrow already released")
)
