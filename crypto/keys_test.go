package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerify(t *testing.T) {
	priv := GenPrivKeyEd25519()
	pub := priv.PublicKey()
	require.NoError(t, pub.Validate())

	msg := []byte("release escrow 7")
	sig, err := priv.Sign(msg)
	require.NoError(t, err)

	assert.True(t, pub.Verify(msg, sig))
	assert.False(t, pub.Verify([]byte("release escrow 8"), sig))

	other := GenPrivKeyEd25519().PublicKey()
	assert.False(t, other.Verify(msg, sig))
	assert.False(t, pub.Verify(msg, &Signature{Ed25519: []byte{1, 2, 3}}))
	assert.False(t, pub.Verify(msg, nil))
}

func TestKeyCondition(t *testing.T) {
	pub := PrivKeyEd25519FromSeed(bytes.Repeat([]byte{7}, 32)).PublicKey()

	cond := pub.Condition()
	ext, typ, data, err := cond.Parse()
	require.NoError(t, err)
	assert.Equal(t, ExtensionName, ext)
	assert.Equal(t, "ed25519", typ)
	assert.Equal(t, pub.Ed25519, data)
	assert.Equal(t, cond.Address(), pub.Address())
}

func TestKeySerialization(t *testing.T) {
	priv := GenPrivKeyEd25519()
	raw, err := priv.Marshal()
	require.NoError(t, err)

	var back PrivateKey
	require.NoError(t, back.Unmarshal(raw))
	assert.Equal(t, priv.Ed25519, back.Ed25519)
	assert.Equal(t, priv.PublicKey(), back.PublicKey())
}

func TestDeterministicKeys(t *testing.T) {
	seed := bytes.Repeat([]byte{42}, 32)
	a := PrivKeyEd25519FromSeed(seed)
	b := PrivKeyEd25519FromSeed(seed)
	assert.Equal(t, a.PublicKey(), b.PublicKey())
}
