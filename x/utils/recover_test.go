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

type panicHandler struct{}

func (panicHandler) Check(vault.Context, vault.KVStore, vault.Tx) (*vault.CheckResult, error) {
	panic("check boom")
}

func (panicHandler) Deliver(vault.Context, vault.KVStore, vault.Tx) (*vault.DeliverResult, error) {
	panic("deliver boom")
}

func TestRecovery(t *testing.T) {
	ctx := context.Background()
	db := store.MemStore()
	h := vaulttest.Decorate(panicHandler{}, NewRecovery())

	_, err := h.Check(ctx, db, &vaulttest.Tx{})
	assert.IsErr(t, errors.ErrPanic, err)

	_, err = h.Deliver(ctx, db, &vaulttest.Tx{})
	assert.IsErr(t, errors.ErrPanic, err)
}
