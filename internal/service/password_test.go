package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("Testpass123")
	require.NoError(t, err)
	require.NotEqual(t, "Testpass123", hash)

	require.NoError(t, ComparePassword(hash, "Testpass123"))
	require.Error(t, ComparePassword(hash, "wrongpass"))
	require.Error(t, ComparePassword(hash, ""))
}

func TestHashPasswordTooLong(t *testing.T) {
	// bcrypt 上限 72 bytes
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'a'
	}
	_, err := HashPassword(string(long))
	require.Error(t, err)
}
