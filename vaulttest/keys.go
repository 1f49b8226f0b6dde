package vaulttest

import (
	"crypto/rand"
	"encoding/binary"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/crypto"
)

// NewKey returns a new, randomly generated signing key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the signature condition of a new random key.
func NewCondition() vault.Condition {
	return NewKey().PublicKey().Condition()
}

// RandomAddr returns a valid random address generated on the fly.
func RandomAddr(t testing.TB) vault.Address {
	raw := make([]byte, vault.AddressLength)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("cannot generate a random address: %s", err)
	}
	return vault.Address(raw)
}

// SequenceID returns the binary representation of a sequence value, as used
// by orm.Sequence for the keys of created entities.
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}
