package orm

import (
	"math"
	"testing"

	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
	"github.com/iov-one/vault/vaulttest/assert"
)

func TestSequenceStartsAtOne(t *testing.T) {
	db := store.MemStore()
	seq := NewSequence("escrow", SeqID)

	next, err := seq.Peek(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), next)

	for want := uint64(1); want <= 5; want++ {
		got, err := seq.NextInt(db)
		assert.Nil(t, err)
		assert.Equal(t, want, got)
	}

	latest, err := seq.Latest(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(5), latest)

	raw, err := seq.NextVal(db)
	assert.Nil(t, err)
	assert.Equal(t, EncodeSequence(6), raw)
}

func TestSequencesAreIndependent(t *testing.T) {
	db := store.MemStore()
	a := NewSequence("collateral", SeqID)
	b := NewSequence("escrow", SeqID)

	for i := 0; i < 3; i++ {
		_, err := a.NextInt(db)
		assert.Nil(t, err)
	}
	got, err := b.NextInt(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), got)
}

func TestSequenceOverflow(t *testing.T) {
	db := store.MemStore()
	seq := NewSequence("escrow", SeqID)
	assert.Nil(t, db.Set(seq.id, EncodeSequence(math.MaxUint64)))

	_, err := seq.NextInt(db)
	assert.IsErr(t, errors.ErrOverflow, err)
}

func TestDecodeSequence(t *testing.T) {
	v, err := DecodeSequence(nil)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), v)

	v, err = DecodeSequence(EncodeSequence(258))
	assert.Nil(t, err)
	assert.Equal(t, uint64(258), v)

	_, err = DecodeSequence([]byte{1, 2})
	assert.IsErr(t, errors.ErrInput, err)
}
