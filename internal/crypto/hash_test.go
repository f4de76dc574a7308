package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAuthKey(t *testing.T) {
	_, err := HashAuthKey(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth key cannot be empty")

	h1, err := HashAuthKey([]byte("key"))
	require.NoError(t, err)
	h2, err := HashAuthKey([]byte("key"))
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
}

func TestHashAuthKey_KnownVector(t *testing.T) {
	expectedHash := "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08" // SHA256("test")

	hash, err := HashAuthKey([]byte("test"))
	require.NoError(t, err)
	assert.Equal(t, expectedHash, hash)
}

func TestHashPassword_CheckPassword(t *testing.T) {
	stored, err := HashPassword("client-hash")
	require.NoError(t, err)
	assert.NotEqual(t, "client-hash", stored)

	tests := []struct {
		want  error
		name  string
		input string
		hash  string
	}{
		{name: "match", input: "client-hash", hash: stored},
		{name: "mismatch", input: "other", hash: stored, want: ErrMismatch},
		{name: "empty input", input: "", hash: stored, want: ErrMismatch},
		{name: "empty stored", input: "client-hash", hash: "", want: ErrMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPassword(tt.input, tt.hash)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	require.Error(t, err)
}
