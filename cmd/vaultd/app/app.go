/*
Package app links together all the various components
to construct the vaultd app.
*/
package app

import (
	"path/filepath"
	"strings"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/app"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store/iavl"
	"github.com/iov-one/vault/x"
	"github.com/iov-one/vault/x/sigs"
	"github.com/iov-one/vault/x/tradefin"
	"github.com/iov-one/vault/x/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tendermint/tendermint/libs/log"
)

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{})
}

// Router returns a default router, dispatching to the tradefin handlers.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()
	tradefin.RegisterRoutes(r, authFn)
	return r
}

// QueryRouter returns a default query router,
// allowing access to "/auth", "/collaterals", "/escrows" and
// "/tradefin/admin" together with their indexes.
func QueryRouter() vault.QueryRouter {
	r := vault.NewQueryRouter()
	r.RegisterAll(
		sigs.RegisterQuery,
		tradefin.RegisterQuery,
	)
	return r
}

// Initializers returns the genesis initializers of all extensions.
func Initializers() vault.Initializer {
	return vault.ChainInitializers(
		tradefin.Initializer{},
	)
}

// Stack returns the tradefin router wrapped in the decorators handling
// authentication, logging, metrics and recovery. Metrics may be nil.
func Stack(metrics *utils.Metrics) vault.Handler {
	return app.Stack(Router(Authenticator()),
		utils.NewLogging(),
		utils.NewRecovery(),
		metrics,
		utils.NewEventTagger(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		// initialization and activation are not signed
		sigs.NewDecorator().AllowMissingSigs(),
		utils.NewActionTagger(),
		// on DeliverTx, bad tx will increment nonce
		// even if the message fails
		utils.NewSavepoint().OnDeliver(),
	)
}

// GenerateApp opens the database named in cfg and returns the vaultd
// application. A nil registerer disables metrics.
func GenerateApp(cfg Config, reg prometheus.Registerer, logger log.Logger) (*app.App, error) {
	var metrics *utils.Metrics
	if reg != nil {
		m, err := utils.NewMetrics(reg)
		if err != nil {
			return nil, err
		}
		metrics = m
	}
	kv, err := CommitKVStore(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	return app.New("vaultd", kv, TxDecoder, Stack(metrics),
		app.WithQueries(QueryRouter()),
		app.WithGenesis(Initializers()),
		app.WithLogger(logger),
		app.WithDebug(cfg.Debug),
	)
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (vault.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.MemCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", dbPath)
	}

	// Some external calls accidently add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name)
}
