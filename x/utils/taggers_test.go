package utils

import (
	"context"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
	"github.com/iov-one/vault/vaulttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/common"
)

// emitHandler publishes one event on every call
type emitHandler struct {
	err error
}

func (h emitHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	vault.EmitEvent(ctx, vault.NewEvent("esc_act", "escrow_id", 1))
	return &vault.CheckResult{}, h.err
}

func (h emitHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	vault.EmitEvent(ctx, vault.NewEvent("esc_act", "escrow_id", 1))
	if h.err != nil {
		return nil, h.err
	}
	return &vault.DeliverResult{}, nil
}

func TestEventTagger(t *testing.T) {
	ctx := context.Background()
	db := store.MemStore()

	h := vaulttest.Decorate(emitHandler{}, NewEventTagger())
	res, err := h.Deliver(ctx, db, &vaulttest.Tx{})
	require.NoError(t, err)
	assert.Equal(t, []common.KVPair{
		{Key: []byte("esc_act.escrow_id"), Value: []byte("1")},
	}, res.Tags)

	_, err = h.Check(ctx, db, &vaulttest.Tx{})
	require.NoError(t, err)

	failing := vaulttest.Decorate(emitHandler{err: errors.ErrUnauthorized}, NewEventTagger())
	_, err = failing.Deliver(ctx, db, &vaulttest.Tx{})
	assert.True(t, errors.ErrUnauthorized.Is(err))
}

func TestActionTagger(t *testing.T) {
	ctx := context.Background()
	db := store.MemStore()
	tx := &vaulttest.Tx{Msg: &vaulttest.Msg{RoutePath: "tradefin/create_escrow"}}

	h := vaulttest.Decorate(&vaulttest.Handler{}, NewActionTagger())
	res, err := h.Deliver(ctx, db, tx)
	require.NoError(t, err)
	assert.Equal(t, []common.KVPair{
		{Key: []byte(ActionKey), Value: []byte("tradefin/create_escrow")},
	}, res.Tags)

	_, err = h.Check(ctx, db, tx)
	require.NoError(t, err)

	// a broken transaction is reported before the handler runs
	inner := &vaulttest.Handler{}
	broken := vaulttest.Decorate(inner, NewActionTagger())
	_, err = broken.Deliver(ctx, db, &vaulttest.Tx{Err: errors.ErrMsg})
	assert.True(t, errors.ErrMsg.Is(err))
	assert.Equal(t, 0, inner.CallCount())
}
