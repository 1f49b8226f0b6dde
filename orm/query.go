package orm

import (
	"github.com/iov-one/vault"
)

// ConsumeIterator reads all remaining models and closes the iterator.
func ConsumeIterator(it vault.Iterator) ([]vault.Model, error) {
	defer it.Close()
	var models []vault.Model
	for it.Valid() {
		models = append(models, vault.Pair(it.Key(), it.Value()))
		if err := it.Next(); err != nil {
			return nil, err
		}
	}
	return models, nil
}

func queryPrefix(db vault.ReadOnlyKVStore, prefix []byte) ([]vault.Model, error) {
	it, err := db.Iterator(prefixRange(prefix))
	if err != nil {
		return nil, err
	}
	return ConsumeIterator(it)
}

// prefixRange returns the [start, end) range of all keys starting with
// prefix. End is nil when no key is greater than the prefix, for example
// for 0xFFFF.
func prefixRange(prefix []byte) (start, end []byte) {
	if len(prefix) == 0 {
		return nil, nil
	}
	end = append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xFF {
			end[i]++
			return prefix, end[:i+1]
		}
	}
	return prefix, nil
}
