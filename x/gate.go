package x

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// Gate decides whether the current invocation was authorized by the holder
// of an identity.
type Gate interface {
	// RequireAuthorized returns ErrUnauthorized unless the identity
	// authorized the current invocation.
	RequireAuthorized(ctx vault.Context, addr vault.Address) error
}

// NewGate returns a Gate that accepts any identity for which the
// authenticator holds a fulfilled condition.
func NewGate(auth Authenticator) Gate {
	return authGate{auth: auth}
}

type authGate struct {
	auth Authenticator
}

func (g authGate) RequireAuthorized(ctx vault.Context, addr vault.Address) error {
	if len(addr) == 0 {
		return errors.Wrap(errors.ErrUnauthorized, "no identity")
	}
	if !g.auth.HasAddress(ctx, addr) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s did not authorize", addr)
	}
	return nil
}
