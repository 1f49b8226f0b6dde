package utils

import (
	"context"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/vaulttest/assert"
)

func TestSavepoint(t *testing.T) {
	// always written before calling the decorator
	ok := vault.Pair([]byte("demo"), []byte("data"))
	// written by the handler
	nk := vault.Pair([]byte{1, 2, 3}, []byte{4, 5, 6})

	cases := map[string]struct {
		save    vault.Decorator
		handler *vaulttest.Handler
		check   bool
		wantErr bool
		written [][]byte
		missing [][]byte
	}{
		"disabled savepoint keeps writes of a failed check": {
			save:    NewSavepoint(),
			handler: &vaulttest.Handler{Write: &nk, CheckErr: errors.ErrAmount},
			check:   true,
			wantErr: true,
			written: [][]byte{ok.Key, nk.Key},
		},
		"check savepoint drops writes of a failed check": {
			save:    NewSavepoint().OnCheck(),
			handler: &vaulttest.Handler{Write: &nk, CheckErr: errors.ErrAmount},
			check:   true,
			wantErr: true,
			written: [][]byte{ok.Key},
			missing: [][]byte{nk.Key},
		},
		"deliver savepoint drops writes of a failed deliver": {
			save:    NewSavepoint().OnDeliver(),
			handler: &vaulttest.Handler{Write: &nk, DeliverErr: errors.ErrNotFound},
			wantErr: true,
			written: [][]byte{ok.Key},
			missing: [][]byte{nk.Key},
		},
		"check savepoint ignores deliver": {
			save:    NewSavepoint().OnCheck(),
			handler: &vaulttest.Handler{Write: &nk, DeliverErr: errors.ErrNotFound},
			wantErr: true,
			written: [][]byte{ok.Key, nk.Key},
		},
		"successful deliver is written": {
			save:    NewSavepoint().OnCheck().OnDeliver(),
			handler: &vaulttest.Handler{Write: &nk},
			written: [][]byte{ok.Key, nk.Key},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			db := store.MemStore()
			assert.Nil(t, db.Set(ok.Key, ok.Value))

			h := vaulttest.Decorate(tc.handler, tc.save)
			var err error
			if tc.check {
				_, err = h.Check(ctx, db, &vaulttest.Tx{})
			} else {
				_, err = h.Deliver(ctx, db, &vaulttest.Tx{})
			}
			if tc.wantErr != (err != nil) {
				t.Fatalf("unexpected error state: %+v", err)
			}

			for _, k := range tc.written {
				has, err := db.Has(k)
				assert.Nil(t, err)
				assert.Equal(t, true, has)
			}
			for _, k := range tc.missing {
				has, err := db.Has(k)
				assert.Nil(t, err)
				assert.Equal(t, false, has)
			}
		})
	}
}
