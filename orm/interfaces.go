package orm

import (
	"github.com/iov-one/vault"
)

// Model is implemented by any entity that can be stored using ModelBucket.
type Model interface {
	vault.Persistent
	Validate() error
}

// Object is a model together with the primary key it is stored under.
// It is what indexers are given to compute the index value.
type Object interface {
	Key() []byte
	Value() Model
}

type simpleObj struct {
	key   []byte
	value Model
}

// NewObject will combine a key and value into an object
func NewObject(key []byte, value Model) Object {
	return simpleObj{key: key, value: value}
}

func (o simpleObj) Key() []byte  { return o.key }
func (o simpleObj) Value() Model { return o.value }
