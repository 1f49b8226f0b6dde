package store

import (
	"bytes"
	"crypto/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSuite runs the same set of behaviour checks against any
// CacheableKVStore. The iavl implementation reuses it.
type TestSuite struct {
	makeBase func() CacheableKVStore
}

// NewTestSuite returns a suite that creates a fresh base store for
// every test case with the given function.
func NewTestSuite(base func() CacheableKVStore) *TestSuite {
	return &TestSuite{makeBase: base}
}

// GetSet checks that values written to a store and its cache wraps
// are visible only where and when they should be.
func (s *TestSuite) GetSet(t *testing.T) {
	t.Helper()
	foo, bar, baz := []byte("foo"), []byte("bar"), []byte("baz")

	base := s.makeBase()
	require.NoError(t, base.Set(foo, bar))
	requireValue(t, base, foo, bar)

	cache := base.CacheWrap()
	requireValue(t, cache, foo, bar)
	require.NoError(t, cache.Set(baz, foo))
	require.NoError(t, cache.Delete(foo))
	requireValue(t, cache, foo, nil)
	requireValue(t, cache, baz, foo)

	// nothing visible in the parent until written
	requireValue(t, base, foo, bar)
	requireValue(t, base, baz, nil)

	require.NoError(t, cache.Write())
	requireValue(t, base, foo, nil)
	requireValue(t, base, baz, foo)

	// discarded writes never show up
	drop := base.CacheWrap()
	require.NoError(t, drop.Set(bar, bar))
	drop.Discard()
	requireValue(t, base, bar, nil)
}

// CacheConflicts checks that nested cache wraps shadow their parents
// and that writing them in order keeps the last value.
func (s *TestSuite) CacheConflicts(t *testing.T) {
	t.Helper()
	key := []byte("conflict")

	base := s.makeBase()
	require.NoError(t, base.Set(key, []byte("base")))

	outer := base.CacheWrap()
	require.NoError(t, outer.Set(key, []byte("outer")))
	inner := outer.CacheWrap()
	requireValue(t, inner, key, []byte("outer"))
	require.NoError(t, inner.Delete(key))
	requireValue(t, inner, key, nil)
	requireValue(t, outer, key, []byte("outer"))

	require.NoError(t, inner.Set(key, []byte("inner")))
	require.NoError(t, inner.Write())
	requireValue(t, outer, key, []byte("inner"))
	requireValue(t, base, key, []byte("base"))

	require.NoError(t, outer.Write())
	requireValue(t, base, key, []byte("inner"))
}

// Iterators checks ranges in both directions over data spread between
// the base store and a cache wrap with overwrites and deletes.
func (s *TestSuite) Iterators(t *testing.T) {
	t.Helper()
	base := s.makeBase()

	models := randModels(40, 8, 16)
	for _, m := range models[:20] {
		require.NoError(t, base.Set(m.Key, m.Value))
	}

	cache := base.CacheWrap()
	for _, m := range models[20:] {
		require.NoError(t, cache.Set(m.Key, m.Value))
	}
	// overwrite one of the parent values and delete another one
	models[3].Value = []byte("overwritten")
	require.NoError(t, cache.Set(models[3].Key, models[3].Value))
	require.NoError(t, cache.Delete(models[7].Key))

	expect := make([]Model, 0, len(models))
	for i, m := range models {
		if i != 7 {
			expect = append(expect, m)
		}
	}
	sortModels(expect)

	cases := map[string]struct {
		start, end []byte
		want       []Model
	}{
		"everything":   {nil, nil, expect},
		"lower bound":  {expect[10].Key, nil, expect[10:]},
		"upper bound":  {nil, expect[25].Key, expect[:25]},
		"both bounds":  {expect[5].Key, expect[30].Key, expect[5:30]},
		"empty domain": {expect[12].Key, expect[12].Key, nil},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			it, err := cache.Iterator(tc.start, tc.end)
			require.NoError(t, err)
			assert.Equal(t, tc.want, consume(t, it))

			rit, err := cache.ReverseIterator(tc.start, tc.end)
			require.NoError(t, err)
			assert.Equal(t, reverse(tc.want), consume(t, rit))
		})
	}
}

func requireValue(t testing.TB, kv ReadOnlyKVStore, key, want []byte) {
	t.Helper()
	got, err := kv.Get(key)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	has, err := kv.Has(key)
	require.NoError(t, err)
	assert.Equal(t, want != nil, has)
}

// consume reads all remaining items of the iterator and closes it
func consume(t testing.TB, it Iterator) []Model {
	t.Helper()
	defer it.Close()

	var res []Model
	for it.Valid() {
		res = append(res, Pair(it.Key(), it.Value()))
		require.NoError(t, it.Next())
	}
	return res
}

func randModels(count, keySize, valSize int) []Model {
	models := make([]Model, count)
	for i := range models {
		models[i] = Pair(randBytes(keySize), randBytes(valSize))
	}
	return models
}

func randBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

func sortModels(models []Model) {
	sort.Slice(models, func(i, j int) bool {
		return bytes.Compare(models[i].Key, models[j].Key) < 0
	})
}

func reverse(models []Model) []Model {
	if models == nil {
		return nil
	}
	res := make([]Model, len(models))
	for i, m := range models {
		res[len(models)-1-i] = m
	}
	return res
}
