package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	samples := [][2]string{
		{"test1@EXAMPLE.com", "test1@example.com"},
		{"Test2@Example.com", "Test2@example.com"},
		{"TEST3@EXAMPLE.COM", "TEST3@example.com"},
		{"test4@example.COM", "test4@example.com"},
	}
	for _, s := range samples {
		got, err := NormalizeEmail(s[0])
		require.NoError(t, err)
		require.Equal(t, s[1], got)
	}
}

func TestNormalizeEmailTrimsSpace(t *testing.T) {
	got, err := NormalizeEmail("  alice@Example.com  ")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", got)
}

func TestNormalizeEmailInvalid(t *testing.T) {
	for _, raw := range []string{
		"",
		"not-an-email",
		"@example.com",
		"Alice <alice@example.com>",
		"alice@example.com (comment)",
	} {
		_, err := NormalizeEmail(raw)
		require.ErrorIs(t, err, ErrInvalidEmail, "input %q", raw)
	}
}
