package vaulttest

import "github.com/iov-one/vault"

// Handler is a vault.Handler returning the configured results.
type Handler struct {
	calls int

	CheckResult   vault.CheckResult
	CheckErr      error
	DeliverResult vault.DeliverResult
	DeliverErr    error

	// Write is stored on every call, before the result is returned.
	Write *vault.Model
}

var _ vault.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	if err := h.call(db); err != nil {
		return nil, err
	}
	res := h.CheckResult
	return &res, h.CheckErr
}

func (h *Handler) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	if err := h.call(db); err != nil {
		return nil, err
	}
	res := h.DeliverResult
	return &res, h.DeliverErr
}

func (h *Handler) call(db vault.KVStore) error {
	h.calls++
	if h.Write == nil {
		return nil
	}
	return db.Set(h.Write.Key, h.Write.Value)
}

// CallCount returns the number of Check and Deliver calls.
func (h *Handler) CallCount() int {
	return h.calls
}

// Decorator is a vault.Decorator passing every call to the next handler,
// unless an error is configured.
type Decorator struct {
	calls int

	CheckErr   error
	DeliverErr error
}

var _ vault.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Checker) (*vault.CheckResult, error) {
	d.calls++
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx, next vault.Deliverer) (*vault.DeliverResult, error) {
	d.calls++
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

// CallCount returns the number of Check and Deliver calls.
func (d *Decorator) CallCount() int {
	return d.calls
}

// Decorate returns h wrapped with a single decorator.
func Decorate(h vault.Handler, d vault.Decorator) vault.Handler {
	return decorated{d: d, h: h}
}

type decorated struct {
	d vault.Decorator
	h vault.Handler
}

func (w decorated) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	return w.d.Check(ctx, db, tx, w.h)
}

func (w decorated) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	return w.d.Deliver(ctx, db, tx, w.h)
}
