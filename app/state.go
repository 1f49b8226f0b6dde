package app

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// state holds the committed store and the caches written on top of it.
// ABCI calls are serialized by tendermint, so no locking is done.
type state struct {
	committed vault.CommitKVStore
	deliver   vault.KVCacheWrap
	check     vault.KVCacheWrap
}

func loadState(kv vault.CommitKVStore) (*state, error) {
	if err := kv.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "load latest version")
	}
	s := &state{committed: kv}
	s.reset()
	return s, nil
}

func (s *state) reset() {
	s.deliver = s.committed.CacheWrap()
	s.check = s.committed.CacheWrap()
}

// commit flushes the deliver cache, drops the check cache and persists a
// new version.
func (s *state) commit() (vault.CommitID, error) {
	if err := s.deliver.Write(); err != nil {
		return vault.CommitID{}, errors.Wrap(err, "flush deliver cache")
	}
	s.check.Discard()
	id, err := s.committed.Commit()
	if err != nil {
		return id, errors.Wrap(err, "commit")
	}
	s.reset()
	return id, nil
}

// Keys with the "_vt:" prefix are reserved for the application.
var chainIDKey = []byte("_vt:chainID")

func loadChainID(db vault.ReadOnlyKVStore) (string, error) {
	raw, err := db.Get(chainIDKey)
	if err != nil {
		return "", errors.Wrap(err, "load chain id")
	}
	return string(raw), nil
}

// saveChainID records the chain id. It can be done only once.
func saveChainID(db vault.KVStore, chainID string) error {
	if !vault.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id %q", chainID)
	}
	switch has, err := db.Has(chainIDKey); {
	case err != nil:
		return errors.Wrap(err, "load chain id")
	case has:
		return errors.Wrap(errors.ErrUnauthorized, "chain id cannot change after genesis")
	}
	return db.Set(chainIDKey, []byte(chainID))
}
