package tradefin

import (
	"context"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/orm"
	"github.com/iov-one/vault/store"
	"github.com/iov-one/vault/vaulttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routes map[string]vault.Handler

func (r routes) Handle(path string, h vault.Handler) {
	r[path] = h
}

func (r routes) deliver(ctx vault.Context, db vault.KVStore, msg vault.Msg) (*vault.DeliverResult, error) {
	h := r[msg.Path()]
	tx := &vaulttest.Tx{Msg: msg}
	if _, err := h.Check(ctx, db, tx); err != nil {
		return nil, err
	}
	return h.Deliver(ctx, db, tx)
}

func TestReinitializeIgnoresArguments(t *testing.T) {
	r := make(routes)
	RegisterRoutes(r, &vaulttest.CtxAuth{Key: "handler"})
	db := store.MemStore()
	ctx := context.Background()

	// an invalid admin is rejected by the controller, not the message
	_, err := r.deliver(ctx, db, &InitializeMsg{})
	require.True(t, errors.ErrInput.Is(err), "%+v", err)

	_, err = r.deliver(ctx, db, &InitializeMsg{Admin: vaulttest.RandomAddr(t)})
	require.NoError(t, err)

	cases := map[string]*InitializeMsg{
		"empty admin":     {},
		"malformed admin": {Admin: vault.Address{0x01}},
		"valid admin":     {Admin: vaulttest.RandomAddr(t)},
	}
	for name, msg := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := r.deliver(ctx, db, msg)
			require.True(t, ErrUnauthorized.Is(err), "%+v", err)
		})
	}
}

func TestHandlers(t *testing.T) {
	owner := vaulttest.NewCondition()
	buyer := vaulttest.NewCondition()
	oracle := vaulttest.NewCondition()
	seller := vaulttest.RandomAddr(t)

	auth := &vaulttest.CtxAuth{Key: "handler"}
	r := make(routes)
	RegisterRoutes(r, auth)
	require.Len(t, r, 5)

	db := store.MemStore()
	ctx := vault.WithBlockTime(context.Background(), blockTime)

	_, err := r.deliver(ctx, db, &InitializeMsg{Admin: owner.Address()})
	require.NoError(t, err)
	_, err = r.deliver(ctx, db, &InitializeMsg{Admin: buyer.Address()})
	require.True(t, ErrUnauthorized.Is(err), "%+v", err)

	res, err := r.deliver(auth.SetConditions(ctx, owner), db, tokenizeMsg(owner.Address(), 1000))
	require.NoError(t, err)
	assert.Equal(t, orm.EncodeSequence(1), res.Data)

	res, err = r.deliver(auth.SetConditions(ctx, buyer), db,
		escrowMsg(buyer.Address(), seller, oracle.Address(), 1, 500))
	require.NoError(t, err)
	assert.Equal(t, orm.EncodeSequence(1), res.Data)

	tx := &vaulttest.Tx{Msg: &ReleaseEscrowMsg{EscrowID: 1}}
	_, err = r[pathReleaseEscrowMsg].Check(auth.SetConditions(ctx, oracle), db, tx)
	require.True(t, ErrEscrowAlreadyReleased.Is(err), "%+v", err)

	_, err = r.deliver(ctx, db, &ActivateEscrowMsg{EscrowID: 1})
	require.NoError(t, err)
	_, err = r.deliver(auth.SetConditions(ctx, buyer), db, &ReleaseEscrowMsg{EscrowID: 1})
	require.True(t, ErrUnauthorized.Is(err), "%+v", err)
	_, err = r.deliver(auth.SetConditions(ctx, oracle), db, &ReleaseEscrowMsg{EscrowID: 1})
	require.NoError(t, err)

	_, err = r.deliver(ctx, db, &ActivateEscrowMsg{EscrowID: 2})
	require.True(t, ErrEscrowNotFound.Is(err), "%+v", err)

	qr := vault.NewQueryRouter()
	RegisterQuery(qr)

	models, err := qr.Handler("/escrows/oracle").Query(db, vault.KeyQueryMod, oracle.Address())
	require.NoError(t, err)
	require.Len(t, models, 1)
	var escrow TradeEscrow
	require.NoError(t, escrow.Unmarshal(models[0].Value))
	assert.Equal(t, EscrowReleased, escrow.Status)
	assert.Equal(t, seller, escrow.Seller)

	models, err = qr.Handler("/collaterals").Query(db, vault.KeyQueryMod, orm.EncodeSequence(1))
	require.NoError(t, err)
	require.Len(t, models, 1)

	models, err = qr.Handler("/tradefin/admin").Query(db, vault.KeyQueryMod, []byte("admin"))
	require.NoError(t, err)
	require.Len(t, models, 1)
	var admin Admin
	require.NoError(t, admin.Unmarshal(models[0].Value))
	assert.Equal(t, owner.Address(), admin.Address)
}

func TestHandlerRejectsMalformedMessages(t *testing.T) {
	auth := &vaulttest.CtxAuth{Key: "handler"}
	r := make(routes)
	RegisterRoutes(r, auth)
	db := store.MemStore()
	ctx := vault.WithBlockTime(context.Background(), blockTime)

	_, err := r.deliver(ctx, db, &TokenizeCollateralMsg{})
	require.True(t, errors.ErrInput.Is(err), "%+v", err)

	_, err = r.deliver(ctx, db, &CreateEscrowMsg{Amount: NewInt128(1)})
	require.True(t, errors.ErrInput.Is(err), "%+v", err)

	// Nothing was allocated.
	peek, err := orm.NewSequence(collateralBucketName, orm.SeqID).Peek(db)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), peek)
}
