package x

import (
	"github.com/iov-one/vault"
)

// Authenticator tells which conditions authorized the current invocation.
// Handlers receive one in their constructor, so the signature scheme is
// not hard coded in the extensions.
type Authenticator interface {
	GetConditions(vault.Context) []vault.Condition
	HasAddress(vault.Context, vault.Address) bool
}

// ChainAuth returns an Authenticator accepting the conditions of every
// given authenticator.
func ChainAuth(impls ...Authenticator) Authenticator {
	return authChain(impls)
}

type authChain []Authenticator

func (ac authChain) GetConditions(ctx vault.Context) []vault.Condition {
	var conds []vault.Condition
	for _, a := range ac {
		conds = append(conds, a.GetConditions(ctx)...)
	}
	return conds
}

func (ac authChain) HasAddress(ctx vault.Context, addr vault.Address) bool {
	for _, a := range ac {
		if a.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}
