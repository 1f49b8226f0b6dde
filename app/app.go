/*
Package app turns a vault.Handler into a tendermint ABCI application.

An App keeps three views of the state. DeliverTx writes into a cache that
is flushed by Commit. CheckTx writes into a second cache that is dropped by
Commit, so the mempool checks of a block never leak into the chain.
Queries read the last committed version only.
*/
package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// App is an abci.Application dispatching decoded transactions to a
// handler.
//
// Info, InitChain and Commit take no user input. Their failures leave the
// node in an unknown state and are turned into panics.
type App struct {
	name    string
	debug   bool
	logger  log.Logger
	decoder vault.TxDecoder
	handler vault.Handler
	queries vault.QueryRouter
	genesis vault.Initializer

	state   *state
	chainID string
	// block is the context of the block being processed. Before the first
	// BeginBlock it only carries the last committed height.
	block vault.Context
}

var _ abci.Application = (*App)(nil)

// Option configures an App.
type Option func(*App)

// WithQueries sets the query handlers. Without them every query fails
// with ErrNotFound.
func WithQueries(qr vault.QueryRouter) Option {
	return func(a *App) { a.queries = qr }
}

// WithGenesis sets the initializer called with the app_state of the
// genesis file.
func WithGenesis(init vault.Initializer) Option {
	return func(a *App) { a.genesis = init }
}

// WithLogger sets the logger. It is also available to handlers through
// vault.GetLogger.
func WithLogger(logger log.Logger) Option {
	return func(a *App) { a.logger = logger }
}

// WithDebug makes failed transactions and queries return the full error
// information, including stack traces.
func WithDebug(debug bool) Option {
	return func(a *App) { a.debug = debug }
}

// New loads the latest version of kv and returns an application serving
// it.
func New(name string, kv vault.CommitKVStore, decoder vault.TxDecoder, h vault.Handler, opts ...Option) (*App, error) {
	a := &App{
		name:    name,
		logger:  log.NewNopLogger(),
		decoder: decoder,
		handler: h,
		queries: vault.NewQueryRouter(),
	}
	for _, fn := range opts {
		fn(a)
	}

	st, err := loadState(kv)
	if err != nil {
		return nil, err
	}
	a.state = st
	if a.chainID, err = loadChainID(st.deliver); err != nil {
		return nil, err
	}
	id, err := kv.LatestVersion()
	if err != nil {
		return nil, errors.Wrap(err, "latest version")
	}
	a.block = vault.WithHeight(a.baseContext(), id.Version)
	return a, nil
}

// ChainID returns the chain id recorded at genesis, or an empty string
// before InitChain.
func (a *App) ChainID() string {
	return a.chainID
}

// baseContext returns the context shared by all blocks.
func (a *App) baseContext() vault.Context {
	ctx := vault.WithLogger(context.Background(), a.logger)
	if a.chainID != "" {
		ctx = vault.WithChainID(ctx, a.chainID)
	}
	return ctx
}

// Info returns the last committed height and app hash.
func (a *App) Info(abci.RequestInfo) abci.ResponseInfo {
	id, err := a.state.committed.LatestVersion()
	if err != nil {
		panic(err)
	}
	a.logger.Info("State loaded", "height", id.Version, "hash", fmt.Sprintf("%X", id.Hash))
	return abci.ResponseInfo{
		Data:             a.name,
		Version:          vault.Version(),
		LastBlockHeight:  id.Version,
		LastBlockAppHash: id.Hash,
	}
}

// SetOption is not supported.
func (a *App) SetOption(abci.RequestSetOption) abci.ResponseSetOption {
	return abci.ResponseSetOption{Log: "not supported"}
}

// InitChain records the chain id and passes the app_state to the genesis
// initializer.
func (a *App) InitChain(req abci.RequestInitChain) abci.ResponseInitChain {
	if err := a.initChain(req.ChainId, req.AppStateBytes); err != nil {
		panic(err)
	}
	return abci.ResponseInitChain{}
}

func (a *App) initChain(chainID string, appState []byte) error {
	if a.chainID != "" {
		return errors.Wrapf(errors.ErrState, "genesis already loaded for chain %s", a.chainID)
	}
	if len(appState) == 0 {
		return errors.Wrap(errors.ErrState, "app_state missing in genesis, run init first")
	}
	var opts vault.Options
	if err := json.Unmarshal(appState, &opts); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := saveChainID(a.state.deliver, chainID); err != nil {
		return err
	}
	a.chainID = chainID
	if a.genesis == nil {
		return nil
	}
	return a.genesis.FromGenesis(opts, a.state.deliver)
}

// BeginBlock sets up the context of all transactions of the block.
func (a *App) BeginBlock(req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	ctx := vault.WithHeader(a.baseContext(), req.Header)
	ctx = vault.WithHeight(ctx, req.Header.GetHeight())
	a.block = vault.WithBlockTime(ctx, req.Header.GetTime())
	return abci.ResponseBeginBlock{}
}

// CheckTx runs the handler checks against the check cache.
func (a *App) CheckTx(raw []byte) abci.ResponseCheckTx {
	ctx, tx, err := a.prepare(raw, "check_tx")
	if err != nil {
		return checkFailed(err, a.debug)
	}
	res, err := a.handler.Check(ctx, a.state.check, tx)
	if err != nil {
		return checkFailed(err, a.debug)
	}
	return checkResponse(res)
}

// DeliverTx executes the transaction against the deliver cache.
func (a *App) DeliverTx(raw []byte) abci.ResponseDeliverTx {
	ctx, tx, err := a.prepare(raw, "deliver_tx")
	if err != nil {
		return deliverFailed(err, a.debug)
	}
	res, err := a.handler.Deliver(ctx, a.state.deliver, tx)
	if err != nil {
		return deliverFailed(err, a.debug)
	}
	return deliverResponse(res)
}

func (a *App) prepare(raw []byte, call string) (vault.Context, vault.Tx, error) {
	tx, err := a.decode(raw)
	if err != nil {
		return nil, nil, err
	}
	ctx := vault.WithLogInfo(a.block, "call", call, "path", vault.GetPath(tx))
	return ctx, tx, nil
}

// decode returns a decoder panic as ErrPanic.
func (a *App) decode(raw []byte) (tx vault.Tx, err error) {
	defer errors.Recover(&err)
	return a.decoder(raw)
}

// EndBlock does nothing, validators never change.
func (a *App) EndBlock(abci.RequestEndBlock) abci.ResponseEndBlock {
	return abci.ResponseEndBlock{}
}

// Commit persists the deliver cache and starts a new version.
func (a *App) Commit() abci.ResponseCommit {
	id, err := a.state.commit()
	if err != nil {
		panic(err)
	}
	a.logger.Debug("Block committed", "height", id.Version, "hash", fmt.Sprintf("%X", id.Hash))
	return abci.ResponseCommit{Data: id.Hash}
}
