package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hash)
	require.True(t, VerifyPassword("secret1", hash))
	require.False(t, VerifyPassword("secret2", hash))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("secret1")
	require.NoError(t, err)
	second, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	require.False(t, VerifyPassword("secret1", "not-a-bcrypt-hash"))
	require.False(t, VerifyPassword("secret1", ""))
}

func TestHashPassword_TruncatesAt72Bytes(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 80)
	hash, err := HashPassword(long)
	require.NoError(t, err)

	// bcrypt only sees the first 72 bytes, so the truncated form verifies too.
	require.True(t, VerifyPassword(long, hash))
	require.True(t, VerifyPassword(strings.Repeat("a", 72), hash))
	require.False(t, VerifyPassword(strings.Repeat("a", 71), hash))
}
