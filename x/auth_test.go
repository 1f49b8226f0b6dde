package x

import (
	"context"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/vaulttest/assert"
)

func TestChainAuth(t *testing.T) {
	a := vaulttest.NewCondition()
	b := vaulttest.NewCondition()
	c := vaulttest.NewCondition()

	first := &vaulttest.CtxAuth{Key: "first"}
	second := &vaulttest.CtxAuth{Key: "second"}
	ctx := first.SetConditions(context.Background(), a)
	ctx = second.SetConditions(ctx, b)

	cases := map[string]struct {
		ctx       vault.Context
		auth      Authenticator
		wantAll   []vault.Condition
		wantIn    []vault.Condition
		wantNotIn []vault.Condition
	}{
		"empty context": {
			ctx:       context.Background(),
			auth:      ChainAuth(first, second),
			wantNotIn: []vault.Condition{a, b},
		},
		"single authenticator": {
			ctx:       ctx,
			auth:      ChainAuth(second),
			wantAll:   []vault.Condition{b},
			wantIn:    []vault.Condition{b},
			wantNotIn: []vault.Condition{a, c},
		},
		"chained authenticators keep the order": {
			ctx:       ctx,
			auth:      ChainAuth(second, first),
			wantAll:   []vault.Condition{b, a},
			wantIn:    []vault.Condition{a, b},
			wantNotIn: []vault.Condition{c},
		},
		"no authenticators": {
			ctx:       ctx,
			auth:      ChainAuth(),
			wantNotIn: []vault.Condition{a, b},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.wantAll, tc.auth.GetConditions(tc.ctx))
			for _, cond := range tc.wantIn {
				if !tc.auth.HasAddress(tc.ctx, cond.Address()) {
					t.Fatalf("%s not authenticated", cond.Address())
				}
			}
			for _, cond := range tc.wantNotIn {
				if tc.auth.HasAddress(tc.ctx, cond.Address()) {
					t.Fatalf("%s unexpectedly authenticated", cond.Address())
				}
			}
		})
	}
}
