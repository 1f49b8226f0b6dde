package orm

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// ModelBucket stores models of a single type together with their
// secondary indexes.
type ModelBucket interface {
	// One loads the model stored under key into dest. It fails with
	// ErrNotFound for a missing key.
	One(db vault.ReadOnlyKVStore, key []byte, dest Model) error
	// Has fails with ErrNotFound for a missing key.
	Has(db vault.ReadOnlyKVStore, key []byte) error
	// ByIndex loads all models indexed under key into dest, a pointer to
	// a slice of model pointers, and returns their keys in the same
	// order.
	ByIndex(db vault.ReadOnlyKVStore, indexName string, key []byte, dest interface{}) ([][]byte, error)
	// Put validates and stores m. A nil key is allocated from the id
	// sequence. The used key is returned.
	Put(db vault.KVStore, key []byte, m Model) ([]byte, error)
	// Register exposes the bucket and its indexes to queries.
	Register(name string, r vault.QueryRouter)
}

// SeqID is the name of the default id sequence of a bucket.
const SeqID = "id"

var isBucketName = regexp.MustCompile(`^[a-z_]{3,16}$`).MatchString

// ModelBucketOption configures a ModelBucket on creation.
type ModelBucketOption func(mb *modelBucket)

// WithIndex adds a secondary index, computed for every stored model by
// indexer. Index names must be unique within a bucket.
func WithIndex(name string, indexer Indexer, unique bool) ModelBucketOption {
	return func(mb *modelBucket) {
		if _, ok := mb.indexes[name]; ok {
			panic(fmt.Sprintf("index %s registered twice", name))
		}
		mb.indexes[name] = newCompactIndex(mb.name, name, indexer, unique, mb.dbKey)
	}
}

// WithIDSequence sets the sequence allocating keys of models stored
// without one.
func WithIDSequence(s Sequence) ModelBucketOption {
	return func(mb *modelBucket) {
		mb.idSeq = &s
	}
}

// NewModelBucket returns a bucket storing models of the type of m under
// the "<name>:" prefix. m must be a pointer and is used only to learn the
// type.
func NewModelBucket(name string, m Model, opts ...ModelBucketOption) ModelBucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("illegal bucket name: %s", name))
	}
	tp := reflect.TypeOf(m)
	if tp == nil || tp.Kind() != reflect.Ptr {
		panic(fmt.Sprintf("bucket %s model must be a pointer, got %T", name, m))
	}
	mb := &modelBucket{
		name:    name,
		prefix:  name + ":",
		model:   tp,
		indexes: make(map[string]compactIndex),
	}
	for _, fn := range opts {
		fn(mb)
	}
	return mb
}

type modelBucket struct {
	name    string
	prefix  string
	model   reflect.Type // pointer to the model struct
	indexes map[string]compactIndex
	idSeq   *Sequence
}

var _ ModelBucket = (*modelBucket)(nil)
var _ vault.QueryHandler = (*modelBucket)(nil)

// dbKey returns a new slice holding the prefixed key.
func (mb *modelBucket) dbKey(key []byte) []byte {
	return append([]byte(mb.prefix), key...)
}

// load returns the model stored under key, nil if there is none.
func (mb *modelBucket) load(db vault.ReadOnlyKVStore, key []byte) (Model, error) {
	raw, err := db.Get(mb.dbKey(key))
	if err != nil || raw == nil {
		return nil, err
	}
	m := reflect.New(mb.model.Elem()).Interface().(Model)
	if err := m.Unmarshal(raw); err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "%s: %s", mb.name, err)
	}
	return m, nil
}

func (mb *modelBucket) One(db vault.ReadOnlyKVStore, key []byte, dest Model) error {
	if reflect.TypeOf(dest) != mb.model {
		return errors.Wrapf(errors.ErrType, "%s cannot be represented as %T", mb.model.Elem(), dest)
	}
	raw, err := db.Get(mb.dbKey(key))
	switch {
	case err != nil:
		return err
	case raw == nil:
		return errors.Wrapf(errors.ErrNotFound, "%s %X", mb.name, key)
	}
	if r, ok := dest.(interface{ Reset() }); ok {
		r.Reset()
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(errors.ErrModel, "%s: %s", mb.name, err)
	}
	return nil
}

func (mb *modelBucket) Has(db vault.ReadOnlyKVStore, key []byte) error {
	ok, err := db.Has(mb.dbKey(key))
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "%s %X", mb.name, key)
	}
	return nil
}

func (mb *modelBucket) ByIndex(db vault.ReadOnlyKVStore, indexName string, key []byte, dest interface{}) ([][]byte, error) {
	idx, ok := mb.indexes[indexName]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidIndex, "%s has no index %s", mb.name, indexName)
	}
	out := reflect.ValueOf(dest)
	if out.Kind() != reflect.Ptr || out.Elem().Kind() != reflect.Slice || out.Elem().Type().Elem() != mb.model {
		return nil, errors.Wrapf(errors.ErrType, "want *[]%s destination, got %T", mb.model, dest)
	}
	keys, err := idx.GetAt(db, key)
	if err != nil {
		return nil, err
	}
	models := reflect.MakeSlice(out.Elem().Type(), 0, len(keys))
	for _, k := range keys {
		m, err := mb.load(db, k)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, errors.Wrapf(errors.ErrState, "index %s points to missing %X", indexName, k)
		}
		models = reflect.Append(models, reflect.ValueOf(m))
	}
	out.Elem().Set(models)
	return keys, nil
}

func (mb *modelBucket) Put(db vault.KVStore, key []byte, m Model) ([]byte, error) {
	if reflect.TypeOf(m) != mb.model {
		return nil, errors.Wrapf(errors.ErrType, "bucket %s cannot store %T", mb.name, m)
	}
	if err := m.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid model")
	}
	if len(key) == 0 {
		if mb.idSeq == nil {
			return nil, errors.Wrap(errors.ErrHuman, "bucket has no sequence to allocate a key")
		}
		next, err := mb.idSeq.NextVal(db)
		if err != nil {
			return nil, errors.Wrap(err, "id sequence")
		}
		key = next
	}
	raw, err := m.Marshal()
	if err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "%s: %s", mb.name, err)
	}
	if err := mb.updateIndexes(db, key, m); err != nil {
		return nil, err
	}
	if err := db.Set(mb.dbKey(key), raw); err != nil {
		return nil, errors.Wrap(err, "cannot store in the database")
	}
	return key, nil
}

func (mb *modelBucket) updateIndexes(db vault.KVStore, key []byte, m Model) error {
	if len(mb.indexes) == 0 {
		return nil
	}
	prev, err := mb.load(db, key)
	if err != nil {
		return err
	}
	var prevObj Object
	if prev != nil {
		prevObj = NewObject(key, prev)
	}
	for _, idx := range mb.indexes {
		if err := idx.Update(db, prevObj, NewObject(key, m)); err != nil {
			return err
		}
	}
	return nil
}

// Register exposes the bucket under "/<name>" and every index under
// "/<name>/<index>". An empty name defaults to the bucket name.
func (mb *modelBucket) Register(name string, r vault.QueryRouter) {
	if name == "" {
		name = mb.name
	}
	r.Register("/"+name, mb)
	names := make([]string, 0, len(mb.indexes))
	for n := range mb.indexes {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		r.Register("/"+name+"/"+n, mb.indexes[n])
	}
}

// Query returns the model stored under data, or with the prefix mod, all
// models whose key starts with data.
func (mb *modelBucket) Query(db vault.ReadOnlyKVStore, mod string, data []byte) ([]vault.Model, error) {
	switch mod {
	case vault.KeyQueryMod:
		key := mb.dbKey(data)
		value, err := db.Get(key)
		if err != nil || value == nil {
			return nil, err
		}
		return []vault.Model{vault.Pair(key, value)}, nil
	case vault.PrefixQueryMod:
		return queryPrefix(db, mb.dbKey(data))
	}
	return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
}
