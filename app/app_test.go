package app

import (
	"testing"
	"time"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store/iavl"
	"github.com/iov-one/vault/vaulttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
)

// rawQuery returns the value stored under the queried key.
type rawQuery struct{}

func (rawQuery) Query(db vault.ReadOnlyKVStore, mod string, data []byte) ([]vault.Model, error) {
	val, err := db.Get(data)
	if err != nil || val == nil {
		return nil, err
	}
	return []vault.Model{vault.Pair(data, val)}, nil
}

type initFunc func(vault.Options, vault.KVStore) error

func (fn initFunc) FromGenesis(opts vault.Options, kv vault.KVStore) error {
	return fn(opts, kv)
}

func decodeTestTx(raw []byte) (vault.Tx, error) {
	switch string(raw) {
	case "":
		return nil, errors.Wrap(errors.ErrInput, "empty transaction")
	case "boom":
		panic("cannot decode")
	}
	return &vaulttest.Tx{Msg: &vaulttest.Msg{RoutePath: string(raw)}}, nil
}

// blockTimeHandler stores the block time of every delivered transaction.
type blockTimeHandler struct {
	vaulttest.Handler
	seen []time.Time
}

func (h *blockTimeHandler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	now, err := vault.BlockTime(ctx)
	if err != nil {
		return nil, err
	}
	h.seen = append(h.seen, now)
	return h.Handler.Deliver(ctx, db, tx)
}

func TestAppLifecycle(t *testing.T) {
	qr := vault.NewQueryRouter()
	qr.Register("/raw", rawQuery{})

	clock := &blockTimeHandler{}
	router := NewRouter()
	router.Handle("tradefin/write", &vaulttest.Handler{
		Write: &vault.Model{Key: []byte("written"), Value: []byte("yes")},
	})
	router.Handle("tradefin/clock", clock)

	genesis := initFunc(func(opts vault.Options, kv vault.KVStore) error {
		var greeting string
		if err := opts.ReadOptions("greeting", &greeting); err != nil {
			return err
		}
		return kv.Set([]byte("greeting"), []byte(greeting))
	})

	app, err := New("vault-test", iavl.MemCommitStore(), decodeTestTx, router,
		WithQueries(qr), WithGenesis(genesis))
	require.NoError(t, err)
	assert.Equal(t, "", app.ChainID())

	app.InitChain(abci.RequestInitChain{
		ChainId:       "test-chain",
		AppStateBytes: []byte(`{"greeting": "hello"}`),
	})
	assert.Equal(t, "test-chain", app.ChainID())

	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	app.BeginBlock(abci.RequestBeginBlock{
		Header: abci.Header{Height: 1, Time: now},
	})

	dres := app.DeliverTx([]byte("tradefin/write"))
	require.Equal(t, uint32(0), dres.Code, dres.Log)
	dres = app.DeliverTx([]byte("tradefin/clock"))
	require.Equal(t, uint32(0), dres.Code, dres.Log)
	assert.Equal(t, []time.Time{now}, clock.seen)

	dres = app.DeliverTx(nil)
	assert.Equal(t, errors.ErrInput.ABCICode(), dres.Code)
	dres = app.DeliverTx([]byte("boom"))
	assert.Equal(t, errors.ErrPanic.ABCICode(), dres.Code)

	cres := app.CheckTx([]byte("tradefin/unknown"))
	assert.Equal(t, errors.ErrNotFound.ABCICode(), cres.Code)

	// nothing is visible before the commit
	qres := app.Query(abci.RequestQuery{Path: "/raw", Data: []byte("written")})
	require.Equal(t, uint32(0), qres.Code, qres.Log)
	assert.Equal(t, int64(0), qres.Height)
	var empty ResultSet
	require.NoError(t, empty.Unmarshal(qres.Value))
	assert.Len(t, empty.Results, 0)

	app.EndBlock(abci.RequestEndBlock{Height: 1})
	commit := app.Commit()
	assert.NotEmpty(t, commit.Data)

	info := app.Info(abci.RequestInfo{})
	assert.Equal(t, int64(1), info.LastBlockHeight)
	assert.Equal(t, commit.Data, info.LastBlockAppHash)

	for key, want := range map[string]string{"greeting": "hello", "written": "yes"} {
		qres := app.Query(abci.RequestQuery{Path: "/raw", Data: []byte(key)})
		require.Equal(t, uint32(0), qres.Code, qres.Log)
		assert.Equal(t, int64(1), qres.Height)

		keys, values := new(ResultSet), new(ResultSet)
		require.NoError(t, keys.Unmarshal(qres.Key))
		require.NoError(t, values.Unmarshal(qres.Value))
		models, err := JoinResults(keys, values)
		require.NoError(t, err)
		require.Len(t, models, 1)
		assert.Equal(t, want, string(models[0].Value))
	}

	qres = app.Query(abci.RequestQuery{Path: "/nothing"})
	assert.Equal(t, errors.ErrNotFound.ABCICode(), qres.Code)
	qres = app.Query(abci.RequestQuery{Path: "/raw?unknown", Data: []byte("written")})
	assert.Equal(t, uint32(0), qres.Code)

	// genesis can be loaded only once
	assert.Panics(t, func() {
		app.InitChain(abci.RequestInitChain{ChainId: "other-chain", AppStateBytes: []byte(`{}`)})
	})
}

func TestAppRestoresChainID(t *testing.T) {
	kv := iavl.MemCommitStore()
	app, err := New("vault-test", kv, decodeTestTx, NewRouter())
	require.NoError(t, err)
	app.InitChain(abci.RequestInitChain{ChainId: "test-chain", AppStateBytes: []byte(`{}`)})
	app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 1}})
	app.Commit()

	restarted, err := New("vault-test", kv, decodeTestTx, NewRouter())
	require.NoError(t, err)
	assert.Equal(t, "test-chain", restarted.ChainID())
	height, ok := vault.GetHeight(restarted.block)
	assert.True(t, ok)
	assert.Equal(t, int64(1), height)
}

func TestInitChainRequiresAppState(t *testing.T) {
	app, err := New("vault-test", iavl.MemCommitStore(), decodeTestTx, NewRouter())
	require.NoError(t, err)

	assert.True(t, errors.ErrState.Is(app.initChain("test-chain", nil)))
	assert.True(t, errors.ErrInput.Is(app.initChain("test-chain", []byte("{"))))
	assert.True(t, errors.ErrInput.Is(app.initChain("x", []byte("{}"))))
	assert.Equal(t, "", app.ChainID())
}

func TestStateDropsCheckCache(t *testing.T) {
	st, err := loadState(iavl.MemCommitStore())
	require.NoError(t, err)

	require.NoError(t, st.check.Set([]byte("check"), []byte("1")))
	require.NoError(t, st.deliver.Set([]byte("deliver"), []byte("1")))

	id, err := st.commit()
	require.NoError(t, err)
	assert.Equal(t, int64(1), id.Version)

	val, err := st.check.Get([]byte("deliver"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), val)
	val, err = st.check.Get([]byte("check"))
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestChainIDIsSavedOnce(t *testing.T) {
	st, err := loadState(iavl.MemCommitStore())
	require.NoError(t, err)

	id, err := loadChainID(st.deliver)
	require.NoError(t, err)
	assert.Equal(t, "", id)

	assert.True(t, errors.ErrInput.Is(saveChainID(st.deliver, "x")))
	require.NoError(t, saveChainID(st.deliver, "test-chain"))
	id, err = loadChainID(st.deliver)
	require.NoError(t, err)
	assert.Equal(t, "test-chain", id)
	assert.True(t, errors.ErrUnauthorized.Is(saveChainID(st.deliver, "other-chain")))
}

func TestResultsRoundTrip(t *testing.T) {
	models := []vault.Model{
		vault.Pair([]byte("a"), []byte("1")),
		vault.Pair([]byte("b"), []byte("2")),
	}
	got, err := JoinResults(SplitResults(models))
	require.NoError(t, err)
	assert.Equal(t, models, got)

	keys, _ := SplitResults(models)
	_, values := SplitResults(models[:1])
	_, err = JoinResults(keys, values)
	assert.True(t, errors.ErrState.Is(err))

	inner := &ResultSet{Results: [][]byte{[]byte("x")}}
	raw, err := inner.Marshal()
	require.NoError(t, err)
	_, values = SplitResults([]vault.Model{vault.Pair([]byte("k"), raw)})
	bz, err := values.Marshal()
	require.NoError(t, err)
	var dest ResultSet
	require.NoError(t, UnmarshalOneResult(bz, &dest))
	assert.Equal(t, inner.Results, dest.Results)

	var untouched ResultSet
	_, empty := SplitResults(nil)
	bz, err = empty.Marshal()
	require.NoError(t, err)
	require.NoError(t, UnmarshalOneResult(bz, &untouched))
	assert.Nil(t, untouched.Results)
}
