package tradefin

import (
	"context"
	"testing"
	"time"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/vaulttest/assert"
	"github.com/iov-one/vault/x"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/require"
)

var blockTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	auth   *vaulttest.CtxAuth
	ctrl   *Controller
	db     vault.KVStore
	events *vault.EventBuffer
}

func newFixture() *fixture {
	auth := &vaulttest.CtxAuth{Key: "tradefin"}
	return &fixture{
		auth:   auth,
		ctrl:   NewController(x.NewGate(auth)),
		db:     store.MemStore(),
		events: &vault.EventBuffer{},
	}
}

// as returns a context signed by given conditions.
func (f *fixture) as(signers ...vault.Condition) vault.Context {
	ctx := vault.WithBlockTime(context.Background(), blockTime)
	ctx = vault.WithEventSink(ctx, f.events)
	return f.auth.SetConditions(ctx, signers...)
}

func (f *fixture) topics() []string {
	var topics []string
	for _, e := range f.events.Events() {
		topics = append(topics, e.Topic)
	}
	return topics
}

func tokenizeMsg(owner vault.Address, value int64) *TokenizeCollateralMsg {
	return &TokenizeCollateralMsg{
		Owner:            owner,
		AssetType:        "invoice",
		AssetValue:       NewInt128(value),
		Metadata:         "INV_2024_001",
		FractionalShares: 100,
	}
}

func escrowMsg(buyer, seller, oracle vault.Address, tokenID uint64, amount int64) *CreateEscrowMsg {
	return &CreateEscrowMsg{
		Buyer:             buyer,
		Seller:            seller,
		CollateralTokenID: tokenID,
		Amount:            NewInt128(amount),
		OracleAddress:     oracle,
		ReleaseConditions: "bill_of_lading",
	}
}

func TestInitializeOnlyOnce(t *testing.T) {
	f := newFixture()
	first := vaulttest.NewCondition().Address()
	second := vaulttest.NewCondition().Address()

	_, err := f.ctrl.Admin(f.db)
	assert.IsErr(t, errors.ErrNotFound, err)

	assert.Nil(t, f.ctrl.Initialize(f.as(), f.db, first))
	admin, err := f.ctrl.Admin(f.db)
	assert.Nil(t, err)
	assert.Equal(t, first, admin)

	err = f.ctrl.Initialize(f.as(), f.db, second)
	assert.IsErr(t, ErrUnauthorized, err)
	admin, err = f.ctrl.Admin(f.db)
	assert.Nil(t, err)
	assert.Equal(t, first, admin)

	require.Equal(t, []string{"init"}, f.topics())
	got, ok := f.events.Events()[0].Get("admin")
	require.True(t, ok)
	require.Equal(t, first.String(), got)
}

func TestInitializeInvalidAdmin(t *testing.T) {
	f := newFixture()
	err := f.ctrl.Initialize(f.as(), f.db, vault.Address("short"))
	assert.FieldError(t, err, "Admin", errors.ErrInput)
	_, err = f.ctrl.Admin(f.db)
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestCollateralIDsAreSequential(t *testing.T) {
	f := newFixture()
	owner := vaulttest.NewCondition()

	for want := uint64(1); want <= 3; want++ {
		id, err := f.ctrl.TokenizeCollateral(f.as(owner), f.db, tokenizeMsg(owner.Address(), 1000))
		assert.Nil(t, err)
		assert.Equal(t, want, id)
	}

	token, err := f.ctrl.GetCollateral(f.db, 2)
	assert.Nil(t, err)
	require.NotNil(t, token)
	assert.Equal(t, owner.Address(), token.Owner)
	assert.Equal(t, "1000", token.AssetValue.Decimal())
	assert.Equal(t, uint32(100), token.FractionalShares)
	assert.Equal(t, vault.AsUnixTime(blockTime), token.CreatedAt)
}

func TestInitializeKeepsIDCounters(t *testing.T) {
	f := newFixture()
	owner := vaulttest.NewCondition()

	id, err := f.ctrl.TokenizeCollateral(f.as(owner), f.db, tokenizeMsg(owner.Address(), 1000))
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), id)

	assert.Nil(t, f.ctrl.Initialize(f.as(), f.db, vaulttest.NewCondition().Address()))

	id, err = f.ctrl.TokenizeCollateral(f.as(owner), f.db, tokenizeMsg(owner.Address(), 1000))
	assert.Nil(t, err)
	assert.Equal(t, uint64(2), id)
}

func TestFailedTokenizationAllocatesNoID(t *testing.T) {
	f := newFixture()
	owner := vaulttest.NewCondition()
	stranger := vaulttest.NewCondition()

	cases := map[string]struct {
		ctx     vault.Context
		msg     *TokenizeCollateralMsg
		wantErr *errors.Error
	}{
		"not signed by the owner": {
			ctx:     f.as(stranger),
			msg:     tokenizeMsg(owner.Address(), 1000),
			wantErr: ErrUnauthorized,
		},
		"not signed and zero value": {
			ctx:     f.as(),
			msg:     tokenizeMsg(owner.Address(), 0),
			wantErr: ErrUnauthorized,
		},
		"zero value": {
			ctx:     f.as(owner),
			msg:     tokenizeMsg(owner.Address(), 0),
			wantErr: ErrInvalidAmount,
		},
		"negative value": {
			ctx:     f.as(owner),
			msg:     tokenizeMsg(owner.Address(), -5),
			wantErr: ErrInvalidAmount,
		},
		"asset type is not a symbol": {
			ctx: f.as(owner),
			msg: &TokenizeCollateralMsg{
				Owner:      owner.Address(),
				AssetType:  "not a symbol",
				AssetValue: NewInt128(1),
			},
			wantErr: errors.ErrInput,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.ctrl.TokenizeCollateral(tc.ctx, f.db, tc.msg)
			assert.IsErr(t, tc.wantErr, err)
		})
	}

	id, err := f.ctrl.TokenizeCollateral(f.as(owner), f.db, tokenizeMsg(owner.Address(), 1))
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), id)
	assert.Equal(t, []string{"tokenize"}, f.topics())
}

func TestFailedEscrowCreationAllocatesNoID(t *testing.T) {
	f := newFixture()
	owner := vaulttest.NewCondition()
	buyer := vaulttest.NewCondition()
	seller := vaulttest.RandomAddr(t)
	oracle := vaulttest.RandomAddr(t)

	tokenID, err := f.ctrl.TokenizeCollateral(f.as(owner), f.db, tokenizeMsg(owner.Address(), 1000))
	require.NoError(t, err)

	cases := map[string]struct {
		ctx     vault.Context
		msg     *CreateEscrowMsg
		wantErr *errors.Error
	}{
		"not signed by the buyer": {
			ctx:     f.as(owner),
			msg:     escrowMsg(buyer.Address(), seller, oracle, tokenID, 500),
			wantErr: ErrUnauthorized,
		},
		"zero amount": {
			ctx:     f.as(buyer),
			msg:     escrowMsg(buyer.Address(), seller, oracle, tokenID, 0),
			wantErr: ErrInvalidAmount,
		},
		"negative amount": {
			ctx:     f.as(buyer),
			msg:     escrowMsg(buyer.Address(), seller, oracle, tokenID, -1),
			wantErr: ErrInvalidAmount,
		},
		"missing collateral": {
			ctx:     f.as(buyer),
			msg:     escrowMsg(buyer.Address(), seller, oracle, 99, 500),
			wantErr: ErrEscrowNotFound,
		},
		"collateral id zero": {
			ctx:     f.as(buyer),
			msg:     escrowMsg(buyer.Address(), seller, oracle, 0, 500),
			wantErr: ErrEscrowNotFound,
		},
		"invalid oracle": {
			ctx:     f.as(buyer),
			msg:     escrowMsg(buyer.Address(), seller, nil, tokenID, 500),
			wantErr: errors.ErrInput,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.ctrl.CreateEscrow(tc.ctx, f.db, tc.msg)
			assert.IsErr(t, tc.wantErr, err)
		})
	}

	id, err := f.ctrl.CreateEscrow(f.as(buyer), f.db, escrowMsg(buyer.Address(), seller, oracle, tokenID, 500))
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), id)
}

func TestGetMissingRecords(t *testing.T) {
	f := newFixture()

	token, err := f.ctrl.GetCollateral(f.db, 1)
	assert.Nil(t, err)
	assert.Nil(t, token)

	escrow, err := f.ctrl.GetEscrow(f.db, 1)
	assert.Nil(t, err)
	assert.Nil(t, escrow)

	assert.IsErr(t, ErrEscrowNotFound, f.ctrl.ActivateEscrow(f.as(), f.db, 1))
	assert.IsErr(t, ErrEscrowNotFound, f.ctrl.ReleaseEscrow(f.as(), f.db, 1))
}

func TestReleaseIsGatedBeforeStatus(t *testing.T) {
	f := newFixture()
	owner := vaulttest.NewCondition()
	oracle := vaulttest.NewCondition()
	buyer := vaulttest.NewCondition()

	tokenID, err := f.ctrl.TokenizeCollateral(f.as(owner), f.db, tokenizeMsg(owner.Address(), 10))
	require.NoError(t, err)
	escrowID, err := f.ctrl.CreateEscrow(f.as(buyer), f.db,
		escrowMsg(buyer.Address(), vaulttest.RandomAddr(t), oracle.Address(), tokenID, 5))
	require.NoError(t, err)

	// Pending escrow, wrong signer.
	assert.IsErr(t, ErrUnauthorized, f.ctrl.ReleaseEscrow(f.as(buyer), f.db, escrowID))
	// Pending escrow, the oracle.
	assert.IsErr(t, ErrEscrowAlreadyReleased, f.ctrl.ReleaseEscrow(f.as(oracle), f.db, escrowID))

	escrow, err := f.ctrl.GetEscrow(f.db, escrowID)
	require.NoError(t, err)
	assert.Equal(t, EscrowPending, escrow.Status)
}

func TestEscrowLifecycle(t *testing.T) {
	Convey("Given a tokenized collateral", t, func() {
		f := newFixture()
		owner := vaulttest.NewCondition()
		buyer := vaulttest.NewCondition()
		seller := vaulttest.NewCondition()
		oracle := vaulttest.NewCondition()

		tokenID, err := f.ctrl.TokenizeCollateral(f.as(owner), f.db, tokenizeMsg(owner.Address(), 1000))
		So(err, ShouldBeNil)
		So(tokenID, ShouldEqual, uint64(1))

		Convey("The buyer creates a pending escrow", func() {
			msg := escrowMsg(buyer.Address(), seller.Address(), oracle.Address(), tokenID, 500)
			escrowID, err := f.ctrl.CreateEscrow(f.as(buyer), f.db, msg)
			So(err, ShouldBeNil)
			So(escrowID, ShouldEqual, uint64(1))

			escrow, err := f.ctrl.GetEscrow(f.db, escrowID)
			So(err, ShouldBeNil)
			So(escrow.Status, ShouldEqual, EscrowPending)
			So(escrow.Amount.Decimal(), ShouldEqual, "500")
			So(escrow.CreatedAt, ShouldEqual, vault.AsUnixTime(blockTime))

			created := f.events.Events()[1]
			So(created.Topic, ShouldEqual, "esc_crtd")
			amount, _ := created.Get("amount")
			So(amount, ShouldEqual, "500")

			Convey("The oracle cannot release before activation", func() {
				err := f.ctrl.ReleaseEscrow(f.as(oracle), f.db, escrowID)
				So(ErrEscrowAlreadyReleased.Is(err), ShouldBeTrue)
			})

			Convey("Anyone can activate it", func() {
				So(f.ctrl.ActivateEscrow(f.as(), f.db, escrowID), ShouldBeNil)
				escrow, err := f.ctrl.GetEscrow(f.db, escrowID)
				So(err, ShouldBeNil)
				So(escrow.Status, ShouldEqual, EscrowActive)

				Convey("A second activation is refused", func() {
					err := f.ctrl.ActivateEscrow(f.as(), f.db, escrowID)
					So(ErrUnauthorized.Is(err), ShouldBeTrue)
				})

				Convey("Only the oracle can release it", func() {
					err := f.ctrl.ReleaseEscrow(f.as(buyer, seller), f.db, escrowID)
					So(ErrUnauthorized.Is(err), ShouldBeTrue)

					So(f.ctrl.ReleaseEscrow(f.as(oracle), f.db, escrowID), ShouldBeNil)
					escrow, err := f.ctrl.GetEscrow(f.db, escrowID)
					So(err, ShouldBeNil)
					So(escrow.Status, ShouldEqual, EscrowReleased)
					So(f.topics(), ShouldResemble, []string{"tokenize", "esc_crtd", "esc_act", "esc_rel"})

					Convey("Released is final", func() {
						err := f.ctrl.ReleaseEscrow(f.as(oracle), f.db, escrowID)
						So(ErrEscrowAlreadyReleased.Is(err), ShouldBeTrue)
						err = f.ctrl.ActivateEscrow(f.as(), f.db, escrowID)
						So(ErrUnauthorized.Is(err), ShouldBeTrue)
					})
				})
			})
		})
	})
}

func TestEscrowIndexes(t *testing.T) {
	f := newFixture()
	owner := vaulttest.NewCondition()
	buyer := vaulttest.NewCondition()
	oracle := vaulttest.RandomAddr(t)

	tokenID, err := f.ctrl.TokenizeCollateral(f.as(owner), f.db, tokenizeMsg(owner.Address(), 1000))
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, err := f.ctrl.CreateEscrow(f.as(buyer), f.db,
			escrowMsg(buyer.Address(), vaulttest.RandomAddr(t), oracle, tokenID, 100))
		require.NoError(t, err)
	}

	var escrows []*TradeEscrow
	keys, err := f.ctrl.escrows.ByIndex(f.db, "oracle", oracle, &escrows)
	require.NoError(t, err)
	require.Len(t, escrows, 2)
	require.Equal(t, [][]byte{vaulttest.SequenceID(1), vaulttest.SequenceID(2)}, keys)

	keys, err = f.ctrl.escrows.ByIndex(f.db, "collateral", vaulttest.SequenceID(tokenID), &escrows)
	require.NoError(t, err)
	require.Len(t, keys, 2)

	var tokens []*CollateralToken
	_, err = f.ctrl.collaterals.ByIndex(f.db, "owner", owner.Address(), &tokens)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
}

func TestEventAttributes(t *testing.T) {
	f := newFixture()
	admin := vaulttest.RandomAddr(t)
	owner := vaulttest.NewCondition()
	buyer := vaulttest.NewCondition()
	seller := vaulttest.NewCondition()
	oracle := vaulttest.NewCondition()

	require.NoError(t, f.ctrl.Initialize(f.as(), f.db, admin))
	tokenID, err := f.ctrl.TokenizeCollateral(f.as(owner), f.db, tokenizeMsg(owner.Address(), 1000))
	require.NoError(t, err)
	escrowID, err := f.ctrl.CreateEscrow(f.as(buyer), f.db,
		escrowMsg(buyer.Address(), seller.Address(), oracle.Address(), tokenID, 500))
	require.NoError(t, err)
	require.NoError(t, f.ctrl.ActivateEscrow(f.as(), f.db, escrowID))
	require.NoError(t, f.ctrl.ReleaseEscrow(f.as(oracle), f.db, escrowID))

	attr := func(key, value string) vault.Attribute {
		return vault.Attribute{Key: key, Value: value}
	}
	want := []vault.Event{
		{Topic: "init", Attributes: []vault.Attribute{
			attr("admin", admin.String()),
		}},
		{Topic: "tokenize", Attributes: []vault.Attribute{
			attr("token_id", "1"),
			attr("owner", owner.Address().String()),
			attr("asset_value", "1000"),
		}},
		{Topic: "esc_crtd", Attributes: []vault.Attribute{
			attr("escrow_id", "1"),
			attr("buyer", buyer.Address().String()),
			attr("seller", seller.Address().String()),
			attr("amount", "500"),
		}},
		{Topic: "esc_act", Attributes: []vault.Attribute{
			attr("escrow_id", "1"),
		}},
		{Topic: "esc_rel", Attributes: []vault.Attribute{
			attr("escrow_id", "1"),
		}},
	}
	assert.Equal(t, want, f.events.Events())
}
