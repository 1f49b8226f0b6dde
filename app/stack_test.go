package app

import (
	"context"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/x/utils"
	"github.com/stretchr/testify/assert"
)

// panicAtHeight panics for every call made at or above given height.
type panicAtHeight int64

func (p panicAtHeight) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Checker) (*vault.CheckResult, error) {
	if h, _ := vault.GetHeight(ctx); h >= int64(p) {
		panic("too high")
	}
	return next.Check(ctx, db, tx)
}

func (p panicAtHeight) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Deliverer) (*vault.DeliverResult, error) {
	if h, _ := vault.GetHeight(ctx); h >= int64(p) {
		panic("too high")
	}
	return next.Deliver(ctx, db, tx)
}

func TestStack(t *testing.T) {
	outer := &vaulttest.Decorator{}
	middle := &vaulttest.Decorator{}
	inner := &vaulttest.Decorator{}
	h := &vaulttest.Handler{}

	var missing *vaulttest.Decorator
	stack := Stack(h,
		outer,
		utils.NewRecovery(),
		nil,
		missing,
		middle,
		panicAtHeight(6),
		inner,
	)

	bg := context.Background()
	_, err := stack.Check(vault.WithHeight(bg, 1), nil, &vaulttest.Tx{})
	assert.NoError(t, err)
	_, err = stack.Deliver(vault.WithHeight(bg, 4), nil, &vaulttest.Tx{})
	assert.NoError(t, err)

	for _, d := range []*vaulttest.Decorator{outer, middle, inner} {
		assert.Equal(t, 2, d.CallCount())
	}
	assert.Equal(t, 2, h.CallCount())

	ctx := vault.WithHeight(bg, 8)
	_, err = stack.Check(ctx, nil, &vaulttest.Tx{})
	assert.True(t, errors.ErrPanic.Is(err))
	_, err = stack.Deliver(ctx, nil, &vaulttest.Tx{})
	assert.True(t, errors.ErrPanic.Is(err))

	// the panic is recovered below outer and never reaches inner
	assert.Equal(t, 4, outer.CallCount())
	assert.Equal(t, 4, middle.CallCount())
	assert.Equal(t, 2, inner.CallCount())
	assert.Equal(t, 2, h.CallCount())
}

func TestStackWithoutDecorators(t *testing.T) {
	h := &vaulttest.Handler{}
	assert.Equal(t, vault.Handler(h), Stack(h))
	assert.Equal(t, vault.Handler(h), Stack(h, nil))
}
