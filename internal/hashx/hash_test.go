package hashx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashIsSaltedPerCall(t *testing.T) {
	h1, err := Hash("p1")
	require.NoError(t, err)
	h2, err := Hash("p1")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "two hashes of the same password must differ")

	for _, h := range []string{h1, h2} {
		ok, err := Verify("p1", h)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = Verify("p2", h)
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestHashFormat(t *testing.T) {
	h, err := Hash("secret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(h, "$argon2id$v=19$m=65536,t=1,p=4$"), h)
}

func TestVerifyMalformed(t *testing.T) {
	cases := []string{
		"",
		"not-a-hash",
		"$argon2i$v=19$m=65536,t=1,p=4$AAAA$BBBB",
		"$argon2id$v=18$m=65536,t=1,p=4$AAAA$BBBB",
		"$argon2id$v=19$m=65536,t=1,p=4$!!!$BBBB",
	}
	for _, c := range cases {
		_, err := Verify("p", c)
		assert.ErrorIs(t, err, ErrMalformedHash, c)
	}
}

func TestVerifyEmptyPassword(t *testing.T) {
	h, err := Hash("")
	require.NoError(t, err)

	ok, err := Verify("", h)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Verify("x", h)
	require.NoError(t, err)
	assert.False(t, ok)
}
