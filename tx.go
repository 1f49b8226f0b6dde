package vault

import (
	"reflect"

	"github.com/iov-one/vault/errors"
)

// Marshaller is implemented by values with a binary form.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent values can also be decoded again. Unmarshal usually needs a
// pointer receiver.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Msg requests one state transition. It carries no authentication, the
// signatures travel in the Tx around it.
type Msg interface {
	Persistent

	// Path selects the handler in the Router. It must match
	// [0-9A-Za-z_/]+ and several message types may share one.
	Path() string

	// Validate checks the message without looking at the state.
	Validate() error
}

// Tx is what a client submits: one message plus whatever the decorators
// need, such as signatures.
type Tx interface {
	Persistent

	GetMsg() (Msg, error)
}

// TxDecoder parses raw transaction bytes.
type TxDecoder func(txBytes []byte) (Tx, error)

// GetPath returns the path of the message in tx, or "(missing)".
func GetPath(tx Tx) string {
	if msg, err := tx.GetMsg(); err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// LoadMsg validates the message of tx and copies it into dest, which must
// point to a value of the message type.
func LoadMsg(tx Tx, dest interface{}) error {
	msg, err := tx.GetMsg()
	switch {
	case err != nil:
		return errors.Wrap(err, "cannot get message")
	case msg == nil:
		return errors.Wrap(errors.ErrMsg, "no message")
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}

	dst := reflect.ValueOf(dest)
	if dst.Kind() != reflect.Ptr {
		return errors.Wrap(errors.ErrType, "destination must be a pointer")
	}
	src := reflect.Indirect(reflect.ValueOf(msg))
	if src.Type() != dst.Elem().Type() {
		return errors.Wrapf(errors.ErrType, "want %T message, got %T", dest, msg)
	}
	dst.Elem().Set(src)
	return nil
}
