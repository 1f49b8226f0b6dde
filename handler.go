package vault

import (
	"encoding/json"

	"github.com/iov-one/vault/errors"
	"github.com/tendermint/tendermint/libs/common"
)

// Handler processes the messages routed to it, for example the
// tokenization of collateral or the release of an escrow.
type Handler interface {
	Checker
	Deliverer
}

// Checker validates a transaction against the state without persisting
// anything.
type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer executes a transaction.
type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// CheckResult is returned by a successful check. Failures are reported
// with an error only.
type CheckResult struct {
	Data []byte
	Log  string
	// GasAllocated is the maximum amount of gas the transaction may use.
	GasAllocated int64
}

// DeliverResult is returned by a successful delivery. Data usually holds
// the id of a created entity.
type DeliverResult struct {
	Data []byte
	Log  string
	// Tags index the transaction in the tendermint history.
	Tags    []common.KVPair
	GasUsed int64
}

// Decorator runs around the rest of the stack. It may change the context
// or the store seen by next, or skip next altogether.
type Decorator interface {
	Check(ctx Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry is the setup side of a Router.
type Registry interface {
	Handle(path string, h Handler)
}

// Options is the app_state of the genesis file, one JSON document per
// extension.
type Options map[string]json.RawMessage

// ReadOptions decodes the document stored under key into obj. A missing
// key leaves obj untouched.
func (o Options) ReadOptions(key string, obj interface{}) error {
	raw, ok := o[key]
	if !ok || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, obj); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot parse %q options: %s", key, err)
	}
	return nil
}

// Initializer loads the genesis state of one extension.
type Initializer interface {
	FromGenesis(Options, KVStore) error
}

// ChainInitializers runs inits in order and stops at the first error.
func ChainInitializers(inits ...Initializer) Initializer {
	return initializers(inits)
}

type initializers []Initializer

func (all initializers) FromGenesis(opts Options, kv KVStore) error {
	for _, i := range all {
		if err := i.FromGenesis(opts, kv); err != nil {
			return err
		}
	}
	return nil
}
