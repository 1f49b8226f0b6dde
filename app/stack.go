package app

import (
	"reflect"

	"github.com/iov-one/vault"
)

/*
Stack wraps h with the decorators. The first decorator is the outermost
one, it runs first and sees the final result. Nil decorators, including
typed nil pointers, are skipped so optional ones can be listed inline:

  app.Stack(router,
    utils.NewLogging(),
    utils.NewRecovery(),
    metrics, // may be nil
    utils.NewSavepoint().OnDeliver(),
  )
*/
func Stack(h vault.Handler, decorators ...vault.Decorator) vault.Handler {
	for i := len(decorators) - 1; i >= 0; i-- {
		if d := decorators[i]; !isNil(d) {
			h = decorated{decorator: d, next: h}
		}
	}
	return h
}

func isNil(d vault.Decorator) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// decorated is a handler running one decorator around the next handler.
type decorated struct {
	decorator vault.Decorator
	next      vault.Handler
}

func (d decorated) Check(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.CheckResult, error) {
	return d.decorator.Check(ctx, db, tx, d.next)
}

func (d decorated) Deliver(ctx vault.Context, db vault.KVStore, tx vault.Tx) (*vault.DeliverResult, error) {
	return d.decorator.Deliver(ctx, db, tx, d.next)
}
