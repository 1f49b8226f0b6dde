package tradefin

import (
	"strings"
	"testing"

	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/vaulttest/assert"
)

func TestTokenizeCollateralMsgValidation(t *testing.T) {
	owner := vaulttest.RandomAddr(t)

	cases := map[string]struct {
		msg       *TokenizeCollateralMsg
		wantField string
		wantErr   *errors.Error
	}{
		"valid": {
			msg: tokenizeMsg(owner, 1),
		},
		"negative value is checked later": {
			msg: tokenizeMsg(owner, -1),
		},
		"missing owner": {
			msg:       tokenizeMsg(nil, 1),
			wantField: "Owner",
			wantErr:   errors.ErrInput,
		},
		"missing value": {
			msg:       &TokenizeCollateralMsg{Owner: owner},
			wantField: "AssetValue",
			wantErr:   errors.ErrEmpty,
		},
		"metadata too long": {
			msg: &TokenizeCollateralMsg{
				Owner:      owner,
				AssetValue: NewInt128(1),
				Metadata:   strings.Repeat("x", 33),
			},
			wantField: "Metadata",
			wantErr:   errors.ErrInput,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
				return
			}
			assert.FieldError(t, err, tc.wantField, tc.wantErr)
		})
	}
}

func TestCreateEscrowMsgValidation(t *testing.T) {
	a, b, c := vaulttest.RandomAddr(t), vaulttest.RandomAddr(t), vaulttest.RandomAddr(t)

	assert.Nil(t, escrowMsg(a, b, c, 1, 10).Validate())

	msg := escrowMsg(a, b, c, 1, 10)
	msg.ReleaseConditions = "on-delivery"
	assert.FieldError(t, msg.Validate(), "ReleaseConditions", errors.ErrInput)

	msg = escrowMsg(a, nil, c, 1, 10)
	assert.FieldError(t, msg.Validate(), "Seller", errors.ErrInput)
	assert.FieldError(t, msg.Validate(), "Buyer", nil)
}
