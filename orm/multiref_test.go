package orm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiRefKeepsOrder(t *testing.T) {
	m, err := decodeRefs(nil)
	require.NoError(t, err)
	assert.Error(t, m.Validate())
	for _, ref := range []string{"c", "a", "b"} {
		require.NoError(t, m.Add([]byte(ref)))
	}
	assert.Equal(t, [][]byte{[]byte("a"), []byte("b"), []byte("c")}, m.Refs)

	assert.Error(t, m.Add([]byte("b")))
	require.NoError(t, m.Remove([]byte("a")))
	assert.Error(t, m.Remove([]byte("a")))
	assert.Equal(t, [][]byte{[]byte("b"), []byte("c")}, m.Refs)

	require.NoError(t, m.Remove([]byte("b")))
	require.NoError(t, m.Remove([]byte("c")))
	assert.Error(t, m.Validate())

	raw, err := (&MultiRef{Refs: [][]byte{[]byte("x")}}).Marshal()
	require.NoError(t, err)
	m, err = decodeRefs(raw)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("x")}, m.Refs)

	_, err = decodeRefs([]byte{0xff})
	assert.Error(t, err)
}

func TestPrefixRange(t *testing.T) {
	cases := map[string]struct {
		prefix, start, end []byte
	}{
		"empty":    {nil, nil, nil},
		"simple":   {[]byte("esc"), []byte("esc"), []byte("esd")},
		"overflow": {[]byte{1, 255}, []byte{1, 255}, []byte{2}},
		"no end":   {[]byte{255, 255}, []byte{255, 255}, nil},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			start, end := prefixRange(tc.prefix)
			assert.Equal(t, tc.start, start)
			assert.Equal(t, tc.end, end)
		})
	}
}
