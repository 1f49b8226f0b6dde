package vault

// ReadOnlyKVStore gives read access to a key value store. Nil keys are not
// allowed. Get returns nil for a missing key.
type ReadOnlyKVStore interface {
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
	// Iterator walks [start, end) in ascending order. A nil bound is
	// open. The domain must not be written while the iterator is open.
	Iterator(start, end []byte) (Iterator, error)
	// ReverseIterator walks [start, end) in descending order.
	ReverseIterator(start, end []byte) (Iterator, error)
}

// SetDeleter is the write side shared by a KVStore and a Batch. Passed
// slices must not be modified afterwards.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// KVStore is the store handlers work with.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter
	NewBatch() Batch
}

// Batch collects writes applied together by Write.
type Batch interface {
	SetDeleter
	Write() error
}

/*
Iterator walks a range of keys:

  it, err := db.Iterator(start, end)
  if err != nil {
    return err
  }
  defer it.Close()
  for ; it.Valid(); err = it.Next() {
    key, value := it.Key(), it.Value()
  }

Key and Value panic once Valid is false. The returned slices must not be
modified.
*/
type Iterator interface {
	Valid() bool
	// Next returns ErrIteratorDone when called on an invalid iterator.
	Next() error
	Key() []byte
	Value() []byte
	Close()
}

// CacheableKVStore can stage writes in a cache wrap, similar to a SQL
// savepoint.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap is a scratch pad over a parent store. Reads see the staged
// writes. Write flushes them to the parent, Discard drops them.
type KVCacheWrap interface {
	CacheableKVStore
	Write() error
	Discard()
}

// CommitKVStore is the versioned root store. Changes are staged in a
// CacheWrap and persisted as a new version by Commit.
type CommitKVStore interface {
	// Get reads the last committed version.
	Get(key []byte) ([]byte, error)
	CacheWrap() KVCacheWrap
	Commit() (CommitID, error)
	// LoadLatestVersion restores the last complete version, even after
	// a crash during a commit.
	LoadLatestVersion() error
	LatestVersion() (CommitID, error)
}

// CommitID is the version of a commit and its merkle root hash.
type CommitID struct {
	Version int64
	Hash    []byte
}
