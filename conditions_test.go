package vault_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressPrinting(t *testing.T) {
	Convey("test hexadecimal address printing", t, func() {
		b := []byte("ABCD123456LHB")
		addr := vault.Address(b)

		So(addr.String(), ShouldEqual, fmt.Sprintf("%X", b))
		So(vault.Address(nil).String(), ShouldEqual, "(nil)")
	})

	Convey("test hexadecimal condition printing", t, func() {
		cond := vault.NewCondition("sigs", "ed25519", []byte("ABCD123456LHB"))

		So(cond.String(), ShouldEqual, fmt.Sprintf("sigs/ed25519/%X", []byte("ABCD123456LHB")))
		So(vault.Condition("no-slashes").String(), ShouldStartWith, "Invalid Condition")
	})
}

func TestAddressUnmarshalJSON(t *testing.T) {
	addr := vault.Address("twenty-bytes-address")
	cond := vault.NewCondition("foo", "bar", []byte("conditiondata"))
	b32, err := addr.Bech32("vault")
	require.NoError(t, err)

	cases := map[string]struct {
		json     string
		wantErr  *errors.Error
		wantAddr vault.Address
	}{
		"default decoding": {
			json:     fmt.Sprintf(`"%X"`, []byte(addr)),
			wantAddr: addr,
		},
		"hex decoding": {
			json:     fmt.Sprintf(`"hex:%x"`, []byte(addr)),
			wantAddr: addr,
		},
		"cond decoding": {
			json:     `"cond:foo/bar/636f6e646974696f6e64617461"`,
			wantAddr: cond.Address(),
		},
		"bech32 decoding": {
			json:     fmt.Sprintf(`"bech32:%s"`, b32),
			wantAddr: addr,
		},
		"too short address": {
			json:    `"6865782d61646472"`,
			wantErr: errors.ErrInput,
		},
		"invalid condition format": {
			json:    `"cond:foo/636f6e646974696f6e64617461"`,
			wantErr: errors.ErrInput,
		},
		"invalid condition data": {
			json:    `"cond:foo/bar/zzzzz"`,
			wantErr: errors.ErrInput,
		},
		"unknown format": {
			json:    `"foobar:xxx"`,
			wantErr: errors.ErrType,
		},
		"zero address": {
			json:     `""`,
			wantAddr: nil,
		},
		"zero cond address": {
			json:     `"cond:"`,
			wantAddr: nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var a vault.Address
			err := json.Unmarshal([]byte(tc.json), &a)
			if !tc.wantErr.Is(err) {
				t.Fatalf("got error: %+v", err)
			}
			if err == nil {
				assert.Equal(t, tc.wantAddr, a)
			}
		})
	}
}

func TestAddressMarshalJSON(t *testing.T) {
	addr := vault.NewCondition("sigs", "ed25519", []byte{1, 2, 3}).Address()
	raw, err := json.Marshal(addr)
	require.NoError(t, err)

	var back vault.Address
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, addr, back)
	assert.Len(t, []byte(addr), vault.AddressLength)
}

func TestConditionJSON(t *testing.T) {
	cond := vault.NewCondition("sigs", "ed25519", []byte{0xAB, 0xCD})
	raw, err := json.Marshal(cond)
	require.NoError(t, err)
	assert.Equal(t, `"sigs/ed25519/ABCD"`, string(raw))

	var back vault.Condition
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, cond.Equals(back))

	ext, typ, data, err := back.Parse()
	require.NoError(t, err)
	assert.Equal(t, "sigs", ext)
	assert.Equal(t, "ed25519", typ)
	assert.Equal(t, []byte{0xAB, 0xCD}, data)
}

func TestConditionValidate(t *testing.T) {
	cases := map[string]struct {
		cond    vault.Condition
		wantErr *errors.Error
	}{
		"valid": {
			cond:    vault.NewCondition("sigs", "ed25519", []byte{1}),
			wantErr: nil,
		},
		"extension too short": {
			cond:    vault.NewCondition("a", "ed25519", []byte{1}),
			wantErr: errors.ErrInput,
		},
		"missing data": {
			cond:    vault.Condition("sigs/ed25519/"),
			wantErr: errors.ErrInput,
		},
		"empty": {
			cond:    nil,
			wantErr: errors.ErrInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.cond.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}
