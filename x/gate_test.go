package x

import (
	"context"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/vaulttest/assert"
)

func TestGate(t *testing.T) {
	owner := vaulttest.NewCondition()
	other := vaulttest.NewCondition()

	auth := &vaulttest.CtxAuth{Key: "gate"}
	signed := auth.SetConditions(context.Background(), owner)

	cases := map[string]struct {
		ctx     vault.Context
		addr    vault.Address
		wantErr *errors.Error
	}{
		"signer is authorized": {
			ctx:  signed,
			addr: owner.Address(),
		},
		"other identity": {
			ctx:     signed,
			addr:    other.Address(),
			wantErr: errors.ErrUnauthorized,
		},
		"no signers": {
			ctx:     context.Background(),
			addr:    owner.Address(),
			wantErr: errors.ErrUnauthorized,
		},
		"empty identity": {
			ctx:     signed,
			addr:    nil,
			wantErr: errors.ErrUnauthorized,
		},
	}

	gate := NewGate(auth)
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := gate.RequireAuthorized(tc.ctx, tc.addr)
			if tc.wantErr == nil {
				assert.Nil(t, err)
				return
			}
			assert.IsErr(t, tc.wantErr, err)
		})
	}
}
