package vaulttest

import (
	"context"

	"github.com/iov-one/vault"
)

// CtxAuth authenticates the conditions stored in the context under its
// key. Two instances with different keys do not see each other's
// conditions.
type CtxAuth struct {
	Key string
}

type authKey string

// SetConditions returns a context in which given conditions are
// authenticated. Previously set conditions are replaced.
func (a *CtxAuth) SetConditions(ctx vault.Context, conds ...vault.Condition) vault.Context {
	return context.WithValue(ctx, authKey(a.Key), conds)
}

func (a *CtxAuth) GetConditions(ctx vault.Context) []vault.Condition {
	conds, _ := ctx.Value(authKey(a.Key)).([]vault.Condition)
	return conds
}

func (a *CtxAuth) HasAddress(ctx vault.Context, addr vault.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if c.Address().Equals(addr) {
			return true
		}
	}
	return false
}
