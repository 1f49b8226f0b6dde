package store

import "github.com/iov-one/vault/errors"

// SliceIterator iterates over models loaded in memory.
type SliceIterator struct {
	models []Model
}

var _ Iterator = (*SliceIterator)(nil)

func NewSliceIterator(models []Model) *SliceIterator {
	return &SliceIterator{models: models}
}

func (s *SliceIterator) Valid() bool {
	return len(s.models) > 0
}

func (s *SliceIterator) Next() error {
	if len(s.models) == 0 {
		return errors.ErrIteratorDone
	}
	s.models = s.models[1:]
	return nil
}

// Key panics when the iterator is done.
func (s *SliceIterator) Key() []byte {
	return s.current().Key
}

// Value panics when the iterator is done.
func (s *SliceIterator) Value() []byte {
	return s.current().Value
}

func (s *SliceIterator) current() Model {
	if len(s.models) == 0 {
		panic("iterator done")
	}
	return s.models[0]
}

func (s *SliceIterator) Close() {
	s.models = nil
}
