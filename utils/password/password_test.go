package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_RoundTrip(t *testing.T) {
	h := NewHasher()

	for _, plain := range []string{"ab", "password123", "пароль", "with spaces and symbols !@#"} {
		hash, err := h.Hash(plain)
		require.NoError(t, err)
		assert.NotEqual(t, plain, hash)
		assert.True(t, h.Verify(plain, hash))
		assert.False(t, h.Verify(plain+"x", hash))
	}
}

func TestHasher_Salted(t *testing.T) {
	h := NewHasher()

	a, err := h.Hash("secret")
	require.NoError(t, err)
	b, err := h.Hash("secret")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)

	cost, err := bcrypt.Cost([]byte(a))
	require.NoError(t, err)
	assert.Equal(t, Cost, cost)
}

func TestHasher_Empty(t *testing.T) {
	h := NewHasher()

	_, err := h.Hash("")
	assert.Error(t, err)
	assert.False(t, h.Verify("x", ""))
}

func TestHasher_TooLong(t *testing.T) {
	h := NewHasher()

	_, err := h.Hash(strings.Repeat("a", MaxLength))
	require.NoError(t, err)

	_, err = h.Hash(strings.Repeat("a", MaxLength+1))
	assert.True(t, IsTooLong(err))
	assert.False(t, IsTooLong(nil))
}
