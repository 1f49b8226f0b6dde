package store

import (
	"bytes"

	"github.com/google/btree"
)

// Cache holds the writes made on top of a read only store in a btree.
// The writes are also recorded in a batch, replayed on Write.
type Cache struct {
	tree  *btree.BTree
	free  *btree.FreeList
	back  ReadOnlyKVStore
	batch Batch
}

var _ KVCacheWrap = (*Cache)(nil)

// NewCache returns an empty cache over back. Write replays the cached
// writes into batch.
func NewCache(back ReadOnlyKVStore, batch Batch) *Cache {
	return newCache(back, batch, btree.NewFreeList(btree.DefaultFreeListSize))
}

func newCache(back ReadOnlyKVStore, batch Batch, free *btree.FreeList) *Cache {
	return &Cache{
		tree:  btree.NewWithFreeList(2, free),
		free:  free,
		back:  back,
		batch: batch,
	}
}

// MemStore returns a store without persistence, for tests.
func MemStore() CacheableKVStore {
	var empty emptyStore
	return NewCache(empty, NewMemBatch(empty))
}

// CacheWrap returns a nested cache sharing the free list of c.
func (c *Cache) CacheWrap() KVCacheWrap {
	return newCache(c, c.NewBatch(), c.free)
}

func (c *Cache) NewBatch() Batch {
	return NewMemBatch(c)
}

// Write flushes the cached writes to the parent and empties the cache.
func (c *Cache) Write() error {
	err := c.batch.Write()
	c.Discard()
	return err
}

// Discard drops all cached writes.
func (c *Cache) Discard() {
	for c.tree.DeleteMin() != nil {
	}
}

func (c *Cache) Set(key, value []byte) error {
	c.tree.ReplaceOrInsert(&entry{key: key, value: value})
	return c.batch.Set(key, value)
}

func (c *Cache) Delete(key []byte) error {
	c.tree.ReplaceOrInsert(&entry{key: key, deleted: true})
	return c.batch.Delete(key)
}

func (c *Cache) Get(key []byte) ([]byte, error) {
	e := c.lookup(key)
	if e == nil {
		return c.back.Get(key)
	}
	return e.value, nil
}

func (c *Cache) Has(key []byte) (bool, error) {
	e := c.lookup(key)
	if e == nil {
		return c.back.Has(key)
	}
	return !e.deleted, nil
}

func (c *Cache) lookup(key []byte) *entry {
	if it := c.tree.Get(&entry{key: key}); it != nil {
		return it.(*entry)
	}
	return nil
}

func (c *Cache) Iterator(start, end []byte) (Iterator, error) {
	parent, err := c.back.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	return newMergeIterator(c.entries(start, end), parent, false), nil
}

func (c *Cache) ReverseIterator(start, end []byte) (Iterator, error) {
	parent, err := c.back.ReverseIterator(start, end)
	if err != nil {
		return nil, err
	}
	entries := c.entries(start, end)
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return newMergeIterator(entries, parent, true), nil
}

// entries returns the cached entries of [start, end) in ascending order.
// A nil bound is open.
func (c *Cache) entries(start, end []byte) []*entry {
	var res []*entry
	visit := func(it btree.Item) bool {
		res = append(res, it.(*entry))
		return true
	}
	switch {
	case start == nil && end == nil:
		c.tree.Ascend(visit)
	case start == nil:
		c.tree.AscendLessThan(&entry{key: end}, visit)
	case end == nil:
		c.tree.AscendGreaterOrEqual(&entry{key: start}, visit)
	default:
		c.tree.AscendRange(&entry{key: start}, &entry{key: end}, visit)
	}
	return res
}

// entry is a cached write. A deleted entry hides the parent value.
type entry struct {
	key     []byte
	value   []byte
	deleted bool
}

func (e *entry) Less(than btree.Item) bool {
	return bytes.Compare(e.key, than.(*entry).key) < 0
}

// emptyStore holds no data.
type emptyStore struct{}

func (emptyStore) Get([]byte) ([]byte, error) { return nil, nil }

func (emptyStore) Has([]byte) (bool, error) { return false, nil }

func (emptyStore) Set(_, _ []byte) error { return nil }

func (emptyStore) Delete([]byte) error { return nil }

func (emptyStore) Iterator(_, _ []byte) (Iterator, error) {
	return NewSliceIterator(nil), nil
}

func (emptyStore) ReverseIterator(_, _ []byte) (Iterator, error) {
	return NewSliceIterator(nil), nil
}
