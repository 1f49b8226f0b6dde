package vaulttest

import "github.com/iov-one/vault"

// Tx wraps a single message. When Err is set GetMsg fails with it.
type Tx struct {
	Msg vault.Msg
	Err error
}

var _ vault.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (vault.Msg, error) {
	return tx.Msg, tx.Err
}

// Marshal and Unmarshal are not used by the handlers under test.
func (tx *Tx) Marshal() ([]byte, error) {
	panic("vaulttest.Tx cannot be serialized")
}

func (tx *Tx) Unmarshal([]byte) error {
	panic("vaulttest.Tx cannot be serialized")
}

// Msg is routed by RoutePath and serializes to Serialized. Validate and
// the codec methods fail with Err when it is set.
type Msg struct {
	RoutePath  string
	Serialized []byte
	Err        error
}

var _ vault.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

func (m *Msg) Marshal() ([]byte, error) {
	return m.Serialized, m.Err
}

func (m *Msg) Unmarshal(raw []byte) error {
	m.Serialized = raw
	return m.Err
}
