package orm

import (
	"bytes"
	"sort"

	"github.com/iov-one/vault/errors"
)

var _ Model = (*MultiRef)(nil)

// decodeRefs reads a serialized MultiRef. Nil raw data gives an empty set.
func decodeRefs(raw []byte) (*MultiRef, error) {
	var m MultiRef
	if raw == nil {
		return &m, nil
	}
	if err := m.Unmarshal(raw); err != nil {
		return nil, errors.Wrap(errors.ErrModel, err.Error())
	}
	return &m, nil
}

// Add inserts ref keeping the references sorted. A reference can be added
// only once.
func (m *MultiRef) Add(ref []byte) error {
	i, found := m.search(ref)
	if found {
		return errors.Wrap(errors.ErrDuplicate, "ref already in set")
	}
	m.Refs = append(m.Refs, nil)
	copy(m.Refs[i+1:], m.Refs[i:])
	m.Refs[i] = ref
	return nil
}

// Remove deletes ref from the set.
func (m *MultiRef) Remove(ref []byte) error {
	i, found := m.search(ref)
	if !found {
		return errors.Wrap(errors.ErrNotFound, "ref not in set")
	}
	m.Refs = append(m.Refs[:i], m.Refs[i+1:]...)
	return nil
}

// search returns the position of ref, or the position it would be
// inserted at.
func (m *MultiRef) search(ref []byte) (int, bool) {
	i := sort.Search(len(m.Refs), func(n int) bool {
		return bytes.Compare(m.Refs[n], ref) >= 0
	})
	return i, i < len(m.Refs) && bytes.Equal(m.Refs[i], ref)
}

// Validate fails for an empty set.
func (m *MultiRef) Validate() error {
	if len(m.GetRefs()) == 0 {
		return errors.Wrap(errors.ErrEmpty, "no references")
	}
	return nil
}
