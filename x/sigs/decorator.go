/*
Package sigs verifies the signatures of transactions and keeps a nonce per
signer, so a signed transaction cannot be replayed.
*/
package sigs

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// RegisterQuery exposes the signer accounts under "/auth".
func RegisterQuery(qr vault.QueryRouter) {
	NewBucket().Register("auth", qr)
}

// Decorator puts the conditions of the verified signers in the context,
// where Authenticate finds them. A transaction with an invalid signature
// is rejected.
type Decorator struct {
	optional bool
}

var _ vault.Decorator = Decorator{}

// NewDecorator returns a decorator requiring at least one signature.
func NewDecorator() Decorator {
	return Decorator{}
}

// AllowMissingSigs returns a copy of d accepting unsigned transactions.
// The handlers decide then whether a signer is needed.
func (d Decorator) AllowMissingSigs() Decorator {
	d.optional = true
	return d
}

func (d Decorator) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Checker) (*vault.CheckResult, error) {
	ctx, err := d.authenticate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return next.Check(ctx, db, tx)
}

func (d Decorator) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Deliverer) (*vault.DeliverResult, error) {
	ctx, err := d.authenticate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, db, tx)
}

// authenticate verifies the signatures of tx. A transaction that cannot
// carry signatures is passed unchanged.
func (d Decorator) authenticate(ctx vault.Context, db vault.KVStore, tx vault.Tx) (vault.Context, error) {
	signed, ok := tx.(SignedTx)
	if !ok {
		return ctx, nil
	}
	signers, err := VerifyTxSignatures(db, signed, vault.GetChainID(ctx))
	switch {
	case err != nil:
		return nil, errors.Wrap(err, "cannot verify signatures")
	case len(signers) == 0 && !d.optional:
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return withSigners(ctx, signers), nil
}
