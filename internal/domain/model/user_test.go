package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetPasswordNeverStoresPlaintext(t *testing.T) {
	u := &User{Email: "a@b.com"}
	require.NoError(t, u.SetPassword("longenough1"))

	require.NotEmpty(t, u.PasswordHash)
	require.NotEqual(t, "longenough1", u.PasswordHash)
	require.True(t, u.ComparePassword("longenough1"))
	require.False(t, u.ComparePassword("wrongpassword"))
}

func TestUnrelatedUpdateKeepsHash(t *testing.T) {
	u := &User{Email: "a@b.com"}
	require.NoError(t, u.SetPassword("longenough1"))
	hash := u.PasswordHash

	// Touching other fields must not re-hash.
	u.Email = "renamed@b.com"
	require.Equal(t, hash, u.PasswordHash)
	require.True(t, u.ComparePassword("longenough1"))
}
