package app

import (
	"strings"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

/*
Query reads the last committed state.

The path selects the handler: "/<bucket>" or "/<bucket>/<index>",
optionally followed by "?prefix" for a prefix query. Data is the key, index
value or prefix.

Key and Value of the response are both a serialized ResultSet, holding the
keys and the values of all matching models in the same order.
*/
func (a *App) Query(req abci.RequestQuery) abci.ResponseQuery {
	path, mod := req.Path, vault.KeyQueryMod
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path, mod = path[:i], path[i+1:]
	}
	qh := a.queries.Handler(path)
	if qh == nil {
		return queryFailed(errors.Wrapf(errors.ErrNotFound, "query path %q", req.Path))
	}

	id, err := a.state.committed.LatestVersion()
	if err != nil {
		return queryFailed(err)
	}
	db := a.state.committed.CacheWrap()
	defer db.Discard()

	models, err := qh.Query(db, mod, req.Data)
	if err != nil {
		return queryFailed(err)
	}
	keys, values := SplitResults(models)
	res := abci.ResponseQuery{Height: id.Version}
	if res.Key, err = keys.Marshal(); err != nil {
		return queryFailed(err)
	}
	if res.Value, err = values.Marshal(); err != nil {
		return queryFailed(err)
	}
	return res
}

func queryFailed(err error) abci.ResponseQuery {
	code, log := errors.ABCIInfo(err, false)
	return abci.ResponseQuery{Code: code, Log: log}
}

// SplitResults returns the keys and the values of given models as two
// result sets.
func SplitResults(models []vault.Model) (keys, values *ResultSet) {
	keys = &ResultSet{Results: make([][]byte, len(models))}
	values = &ResultSet{Results: make([][]byte, len(models))}
	for i, m := range models {
		keys.Results[i] = m.Key
		values.Results[i] = m.Value
	}
	return keys, values
}

// JoinResults is the inverse of SplitResults.
func JoinResults(keys, values *ResultSet) ([]vault.Model, error) {
	if len(keys.Results) != len(values.Results) {
		return nil, errors.Wrapf(errors.ErrState,
			"%d keys and %d values", len(keys.Results), len(values.Results))
	}
	models := make([]vault.Model, len(keys.Results))
	for i, k := range keys.Results {
		models[i] = vault.Pair(k, values.Results[i])
	}
	return models, nil
}

// UnmarshalOneResult decodes the first value of a serialized ResultSet into
// dest. An empty set leaves dest untouched.
func UnmarshalOneResult(raw []byte, dest vault.Persistent) error {
	var set ResultSet
	if err := set.Unmarshal(raw); err != nil {
		return errors.Wrap(errors.ErrModel, err.Error())
	}
	if len(set.Results) == 0 {
		return nil
	}
	return dest.Unmarshal(set.Results[0])
}
