package sigs

import (
	"context"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
	"github.com/iov-one/vault/vaulttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signersHandler records the conditions visible in the context
type signersHandler struct {
	vaulttest.Handler
	seen []vault.Condition
}

func (h *signersHandler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	h.seen = Authenticate{}.GetConditions(ctx)
	return h.Handler.Check(ctx, db, tx)
}

func (h *signersHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	h.seen = Authenticate{}.GetConditions(ctx)
	return h.Handler.Deliver(ctx, db, tx)
}

func TestDecorator(t *testing.T) {
	const chainID = "deco-test"
	ctx := vault.WithChainID(context.Background(), chainID)
	key := vaulttest.NewKey()
	db := store.MemStore()

	h := &signersHandler{}
	handler := vaulttest.Decorate(h, NewDecorator())

	// unsigned is rejected
	unsigned := NewStdTx([]byte("unsigned"))
	_, err := handler.Check(ctx, db, unsigned)
	assert.True(t, errors.ErrUnauthorized.Is(err))
	assert.Equal(t, 0, h.CallCount())

	signed := NewStdTx([]byte("signed"))
	sig, err := SignTx(key, signed, chainID, 0)
	require.NoError(t, err)
	signed.Signatures = []*StdSignature{sig}

	_, err = handler.Check(ctx, db, signed)
	require.NoError(t, err)
	assert.Equal(t, []vault.Condition{key.PublicKey().Condition()}, h.seen)
	assert.True(t, Authenticate{}.HasAddress(withSigners(ctx, h.seen), key.PublicKey().Address()))

	// the nonce was consumed by check
	_, err = handler.Deliver(ctx, db, signed)
	assert.True(t, ErrInvalidSequence.Is(err))

	// missing signatures may be allowed
	lenient := vaulttest.Decorate(h, NewDecorator().AllowMissingSigs())
	_, err = lenient.Deliver(ctx, db, unsigned)
	require.NoError(t, err)
	assert.Empty(t, h.seen)

	// transactions without signature support pass through
	_, err = handler.Deliver(ctx, db, &vaulttest.Tx{Msg: &vaulttest.Msg{RoutePath: "plain"}})
	require.NoError(t, err)
	assert.Equal(t, 3, h.CallCount())
}
