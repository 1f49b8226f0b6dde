/*
Package store provides the key value stores used by the application.

A Cache keeps all writes of a savepoint in a btree. Writes become visible
in the parent store only after Write is called, Discard drops them. This is
what makes every transaction atomic: a failed transaction never leaves partial
writes behind. MemStore is a cache over an empty store and is the store
of choice in tests. Persistent, merkle committed storage is implemented by
the iavl subpackage.
*/
package store
