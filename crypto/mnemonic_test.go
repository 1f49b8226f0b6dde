package crypto

import (
	"strings"
	"testing"

	"github.com/iov-one/vault/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMnemonic(t *testing.T) {
	mnemonic, err := GenerateMnemonic()
	require.NoError(t, err)
	assert.Len(t, strings.Fields(mnemonic), 24)

	key, err := KeyFromMnemonic(mnemonic, "", DefaultDerivationPath)
	require.NoError(t, err)

	// Whitespace is not significant.
	again, err := KeyFromMnemonic("  "+strings.Replace(mnemonic, " ", "\n", 3), "", DefaultDerivationPath)
	require.NoError(t, err)
	assert.Equal(t, key.PublicKey(), again.PublicKey())

	other, err := KeyFromMnemonic(mnemonic, "secret", DefaultDerivationPath)
	require.NoError(t, err)
	assert.NotEqual(t, key.PublicKey(), other.PublicKey())
}

func TestKeyFromInvalidMnemonic(t *testing.T) {
	_, err := KeyFromMnemonic("not a valid recovery phrase", "", DefaultDerivationPath)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestDeriveKeyPaths(t *testing.T) {
	seed := []byte("000102030405060708090a0b0c0d0e0f")

	a, err := DeriveKey(seed, "m/44'/234'/0'")
	require.NoError(t, err)
	b, err := DeriveKey(seed, "m/44'/234'/1'")
	require.NoError(t, err)
	assert.NotEqual(t, a.PublicKey(), b.PublicKey())

	_, err = DeriveKey(seed, "not a path")
	assert.True(t, errors.ErrInput.Is(err))
}
