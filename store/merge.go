package store

import (
	"bytes"

	"github.com/iov-one/vault/errors"
)

// mergeIterator walks the cached entries and the parent iterator side by
// side. On equal keys the cached entry wins and deleted entries are
// skipped.
type mergeIterator struct {
	entries []*entry
	parent  Iterator
	desc    bool
}

var _ Iterator = (*mergeIterator)(nil)

func newMergeIterator(entries []*entry, parent Iterator, desc bool) *mergeIterator {
	it := &mergeIterator{entries: entries, parent: parent, desc: desc}
	it.skipDeleted()
	return it
}

// next returns which side holds the current key. Both are true when the
// keys are equal.
func (it *mergeIterator) next() (cached, parent bool) {
	hasCached := len(it.entries) > 0
	hasParent := it.parent != nil && it.parent.Valid()
	if !hasCached || !hasParent {
		return hasCached, hasParent
	}
	cmp := bytes.Compare(it.entries[0].key, it.parent.Key())
	if it.desc {
		cmp = -cmp
	}
	return cmp <= 0, cmp >= 0
}

func (it *mergeIterator) skipDeleted() {
	for {
		cached, parent := it.next()
		if !cached || !it.entries[0].deleted {
			return
		}
		it.entries = it.entries[1:]
		if parent {
			// parent is valid, Next cannot fail
			_ = it.parent.Next()
		}
	}
}

func (it *mergeIterator) Valid() bool {
	cached, parent := it.next()
	return cached || parent
}

func (it *mergeIterator) Next() error {
	cached, parent := it.next()
	if !cached && !parent {
		return errors.ErrIteratorDone
	}
	if cached {
		it.entries = it.entries[1:]
	}
	if parent {
		if err := it.parent.Next(); err != nil {
			return err
		}
	}
	it.skipDeleted()
	return nil
}

func (it *mergeIterator) Key() []byte {
	if cached, parent := it.next(); cached {
		return it.entries[0].key
	} else if parent {
		return it.parent.Key()
	}
	panic("iterator done")
}

func (it *mergeIterator) Value() []byte {
	if cached, parent := it.next(); cached {
		return it.entries[0].value
	} else if parent {
		return it.parent.Value()
	}
	panic("iterator done")
}

func (it *mergeIterator) Close() {
	if it.parent != nil {
		it.parent.Close()
	}
	it.entries = nil
}
