package sigs

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/vaulttest"
)

// StdTx is a signed transaction used in tests.
type StdTx struct {
	vaulttest.Tx
	Signatures []*StdSignature
}

var _ SignedTx = (*StdTx)(nil)
var _ vault.Tx = (*StdTx)(nil)

func NewStdTx(payload []byte) *StdTx {
	return &StdTx{
		Tx: vaulttest.Tx{Msg: &vaulttest.Msg{RoutePath: "test/sigs", Serialized: payload}},
	}
}

func (tx *StdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

func (tx *StdTx) GetSignBytes() ([]byte, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	return msg.Marshal()
}
