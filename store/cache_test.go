package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStore(t *testing.T) {
	suite := NewTestSuite(MemStore)
	t.Run("get set", suite.GetSet)
	t.Run("cache conflicts", suite.CacheConflicts)
	t.Run("iterators", suite.Iterators)
}

func TestNestedCache(t *testing.T) {
	suite := NewTestSuite(func() CacheableKVStore {
		return MemStore().CacheWrap()
	})
	t.Run("get set", suite.GetSet)
	t.Run("cache conflicts", suite.CacheConflicts)
	t.Run("iterators", suite.Iterators)
}

func TestIteratorSkipsDeletedRuns(t *testing.T) {
	base := MemStore()
	for _, k := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, base.Set([]byte(k), []byte(k)))
	}
	cache := base.CacheWrap()
	for _, k := range []string{"b", "c", "d"} {
		require.NoError(t, cache.Delete([]byte(k)))
	}
	require.NoError(t, cache.Set([]byte("bb"), []byte("new")))

	it, err := cache.Iterator(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []Model{
		Pair([]byte("a"), []byte("a")),
		Pair([]byte("bb"), []byte("new")),
		Pair([]byte("e"), []byte("e")),
	}, consume(t, it))

	it, err = cache.ReverseIterator([]byte("b"), []byte("e"))
	require.NoError(t, err)
	assert.Equal(t, []Model{
		Pair([]byte("bb"), []byte("new")),
	}, consume(t, it))
}

func TestMemBatch(t *testing.T) {
	base := MemStore()
	batch := NewMemBatch(base)
	require.NoError(t, batch.Set([]byte("one"), []byte("1")))
	require.NoError(t, batch.Set([]byte("two"), []byte("2")))
	require.NoError(t, batch.Delete([]byte("one")))
	assert.Equal(t, 3, batch.Len())

	requireValue(t, base, []byte("two"), nil)
	require.NoError(t, batch.Write())
	assert.Equal(t, 0, batch.Len())
	requireValue(t, base, []byte("one"), nil)
	requireValue(t, base, []byte("two"), []byte("2"))
}

func TestSliceIteratorDone(t *testing.T) {
	it := NewSliceIterator([]Model{Pair([]byte("k"), []byte("v"))})
	require.True(t, it.Valid())
	require.NoError(t, it.Next())
	assert.False(t, it.Valid())
	assert.Error(t, it.Next())
	assert.Panics(t, func() { it.Key() })
}

func TestIteratorOverDeletedOnly(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("a"), []byte("a")))
	cache := base.CacheWrap()
	require.NoError(t, cache.Delete([]byte("a")))
	require.NoError(t, cache.Delete([]byte("z")))

	it, err := cache.Iterator(nil, nil)
	require.NoError(t, err)
	assert.False(t, it.Valid())
	assert.Error(t, it.Next())
	assert.Panics(t, func() { it.Value() })
	it.Close()

	has, err := cache.Has([]byte("a"))
	require.NoError(t, err)
	assert.False(t, has)
}
