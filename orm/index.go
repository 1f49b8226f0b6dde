package orm

import (
	"bytes"
	"regexp"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

var isIndexName = regexp.MustCompile(`^[a-z_]{3,32}$`).MatchString

// Indexer returns the index value of an object. Objects with a nil value
// are not indexed.
type Indexer func(Object) ([]byte, error)

// compactIndex keeps all references of an index value under one key,
// "_i.<bucket>_<index>:<value>". A unique index stores the primary key
// itself, others a sorted MultiRef. It suits small reference sets only.
type compactIndex struct {
	name   string
	prefix string
	unique bool
	index  Indexer
	// refKey returns the db key of a primary key.
	refKey func([]byte) []byte
}

var _ vault.QueryHandler = compactIndex{}

func newCompactIndex(bucket, name string, indexer Indexer, unique bool, refKey func([]byte) []byte) compactIndex {
	if !isIndexName(name) {
		panic("illegal index name: " + name)
	}
	return compactIndex{
		name:   name,
		prefix: "_i." + bucket + "_" + name + ":",
		index:  indexer,
		unique: unique,
		refKey: refKey,
	}
}

// indexKey returns a new slice holding the db key of an index value.
func (i compactIndex) indexKey(value []byte) []byte {
	return append([]byte(i.prefix), value...)
}

// Update moves the references of an object after it changed. A nil prev
// is an insert, a nil save a delete. The primary key cannot change.
func (i compactIndex) Update(db vault.KVStore, prev, save Object) error {
	if prev == nil && save == nil {
		return errors.Wrap(errors.ErrHuman, "update requires at least one non-nil object")
	}
	if prev != nil && save != nil && !bytes.Equal(prev.Key(), save.Key()) {
		return errors.Wrapf(errors.ErrHuman, "cannot modify the primary key of an object in index %s", i.name)
	}
	oldVal, err := i.value(prev)
	if err != nil {
		return err
	}
	newVal, err := i.value(save)
	if err != nil {
		return err
	}
	if prev != nil && save != nil && bytes.Equal(oldVal, newVal) {
		return nil
	}
	if oldVal != nil {
		if err := i.remove(db, oldVal, prev.Key()); err != nil {
			return err
		}
	}
	if newVal != nil {
		return i.insert(db, newVal, save.Key())
	}
	return nil
}

// value returns the index value of obj, nil for a nil obj.
func (i compactIndex) value(obj Object) ([]byte, error) {
	if obj == nil {
		return nil, nil
	}
	return i.index(obj)
}

func (i compactIndex) insert(db vault.KVStore, key, pk []byte) error {
	dbkey := i.indexKey(key)
	cur, err := db.Get(dbkey)
	if err != nil {
		return err
	}
	if i.unique {
		if cur != nil {
			return errors.Wrapf(errors.ErrDuplicate, "index %s: %X", i.name, key)
		}
		return db.Set(dbkey, pk)
	}
	return i.editRefs(db, dbkey, cur, func(refs *MultiRef) error { return refs.Add(pk) })
}

func (i compactIndex) remove(db vault.KVStore, key, pk []byte) error {
	dbkey := i.indexKey(key)
	cur, err := db.Get(dbkey)
	switch {
	case err != nil:
		return err
	case cur == nil:
		return errors.Wrapf(errors.ErrNotFound, "index %s: %X", i.name, key)
	case i.unique && !bytes.Equal(cur, pk):
		return errors.Wrapf(errors.ErrState, "index %s points to another object", i.name)
	case i.unique:
		return db.Delete(dbkey)
	}
	return i.editRefs(db, dbkey, cur, func(refs *MultiRef) error { return refs.Remove(pk) })
}

// editRefs applies fn to the reference set stored under dbkey. An emptied
// set is deleted.
func (i compactIndex) editRefs(db vault.KVStore, dbkey, cur []byte, fn func(*MultiRef) error) error {
	refs, err := decodeRefs(cur)
	if err != nil {
		return errors.Wrapf(err, "index %s", i.name)
	}
	if err := fn(refs); err != nil {
		return err
	}
	if len(refs.Refs) == 0 {
		return db.Delete(dbkey)
	}
	raw, err := refs.Marshal()
	if err != nil {
		return err
	}
	return db.Set(dbkey, raw)
}

// GetAt returns a list of all primary keys indexed under the given value,
// nil when there are none.
func (i compactIndex) GetAt(db vault.ReadOnlyKVStore, value []byte) ([][]byte, error) {
	raw, err := db.Get(i.indexKey(value))
	if err != nil || raw == nil {
		return nil, err
	}
	return i.refs(raw)
}

func (i compactIndex) refs(raw []byte) ([][]byte, error) {
	if i.unique {
		return [][]byte{raw}, nil
	}
	refs, err := decodeRefs(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "index %s", i.name)
	}
	return refs.Refs, nil
}

// getPrefix returns all references that have an index that
// begins with a given prefix
func (i compactIndex) getPrefix(db vault.ReadOnlyKVStore, prefix []byte) ([][]byte, error) {
	models, err := queryPrefix(db, i.indexKey(prefix))
	if err != nil {
		return nil, err
	}
	var res [][]byte
	for _, m := range models {
		refs, err := i.refs(m.Value)
		if err != nil {
			return nil, err
		}
		res = append(res, refs...)
	}
	return res, nil
}

// Query handles queries from the QueryRouter
func (i compactIndex) Query(db vault.ReadOnlyKVStore, mod string, data []byte) ([]vault.Model, error) {
	var (
		refs [][]byte
		err  error
	)
	switch mod {
	case vault.KeyQueryMod:
		refs, err = i.GetAt(db, data)
	case vault.PrefixQueryMod:
		refs, err = i.getPrefix(db, data)
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
	if err != nil {
		return nil, err
	}
	return i.loadRefs(db, refs)
}

func (i compactIndex) loadRefs(db vault.ReadOnlyKVStore, refs [][]byte) ([]vault.Model, error) {
	if len(refs) == 0 {
		return nil, nil
	}
	res := make([]vault.Model, len(refs))
	for j, ref := range refs {
		key := i.refKey(ref)
		val, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		res[j] = vault.Pair(key, val)
	}
	return res, nil
}
