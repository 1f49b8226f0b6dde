package orm

import (
	"encoding/binary"
	"math"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// Sequence maintains a counter, and generates a
// series of keys. Each key is greater than the last,
// both NextInt() as well as bytes.Compare() on NextVal().
//
// The first value ever returned is 1. The database holds the value that
// was returned last, so a sequence that was never used needs no setup.
type Sequence struct {
	id []byte
}

// NewSequence returns a sequence counter. Sequence is using following pattern
// to construct a key:
//    _s.<bucket>:<name>
func NewSequence(bucket, name string) Sequence {
	id := "_s." + bucket + ":" + name
	return Sequence{
		id: []byte(id),
	}
}

// NextVal increments the sequence and returns its state as 8 bytes.
func (s Sequence) NextVal(db vault.KVStore) ([]byte, error) {
	val, err := s.NextInt(db)
	if err != nil {
		return nil, err
	}
	return EncodeSequence(val), nil
}

// NextInt increments the sequence and returns its state as int.
func (s Sequence) NextInt(db vault.KVStore) (uint64, error) {
	val, err := s.Peek(db)
	if err != nil {
		return 0, err
	}
	if err := db.Set(s.id, EncodeSequence(val)); err != nil {
		return 0, errors.Wrap(err, "cannot store sequence")
	}
	return val, nil
}

// Peek returns the value that the next call to NextInt is going to return.
// This method does not modify the sequence state.
func (s Sequence) Peek(db vault.ReadOnlyKVStore) (uint64, error) {
	last, err := s.Latest(db)
	if err != nil {
		return 0, err
	}
	if last == math.MaxUint64 {
		return 0, errors.Wrapf(errors.ErrOverflow, "sequence %s exhausted", s.id)
	}
	return last + 1, nil
}

// Latest returns the recently returned value of the sequence or zero if no
// value was returned yet.
func (s Sequence) Latest(db vault.ReadOnlyKVStore) (uint64, error) {
	raw, err := db.Get(s.id)
	if err != nil {
		return 0, errors.Wrap(err, "cannot load sequence")
	}
	return DecodeSequence(raw)
}

// DecodeSequence converts a key created by a sequence into its numeric value.
// An empty key decodes to zero.
func DecodeSequence(bz []byte) (uint64, error) {
	if bz == nil {
		return 0, nil
	}
	if err := ValidateSequence(bz); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(bz), nil
}

// EncodeSequence returns the 8 byte big endian representation of a value.
func EncodeSequence(val uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, val)
	return bz
}

// ValidateSequence returns an error if this is not an 8-byte
// as expected for sequence generated keys
func ValidateSequence(id []byte) error {
	if len(id) == 0 {
		return errors.Wrap(errors.ErrEmpty, "sequence missing")
	}
	if len(id) != 8 {
		return errors.Wrap(errors.ErrInput, "sequence is invalid length (expect 8 bytes)")
	}
	return nil
}
