package app

import (
	"context"
	"testing"

	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/vaulttest"
	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	r := NewRouter()

	counter := &vaulttest.Handler{}
	failing := &vaulttest.Handler{
		CheckErr:   errors.ErrAmount,
		DeliverErr: errors.ErrAmount,
	}
	r.Handle("tradefin/good", counter)
	r.Handle("tradefin/bad", failing)

	// make sure invalid registrations panic
	assert.Panics(t, func() { r.Handle("tradefin/good", counter) })
	assert.Panics(t, func() { r.Handle("l:7", counter) })

	ctx := context.Background()
	txFor := func(path string) *vaulttest.Tx {
		return &vaulttest.Tx{Msg: &vaulttest.Msg{RoutePath: path}}
	}

	_, err := r.Check(ctx, nil, txFor("tradefin/good"))
	assert.NoError(t, err)
	_, err = r.Deliver(ctx, nil, txFor("tradefin/good"))
	assert.NoError(t, err)
	assert.Equal(t, 2, counter.CallCount())

	_, err = r.Deliver(ctx, nil, txFor("tradefin/bad"))
	assert.True(t, errors.ErrAmount.Is(err))
	assert.Equal(t, 1, failing.CallCount())

	_, err = r.Deliver(ctx, nil, txFor("tradefin/missing"))
	assert.True(t, errors.ErrNotFound.Is(err))
	_, err = r.Check(ctx, nil, &vaulttest.Tx{})
	assert.True(t, errors.ErrNotFound.Is(err))
	assert.Equal(t, 2, counter.CallCount())
}
