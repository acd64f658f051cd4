package vault

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, ErrNotConfigured)

	v, err := New("secret")
	require.NoError(t, err)
	assert.Len(t, v.key, 32)
}

func TestVault_RoundTrip(t *testing.T) {
	v, err := New("server-secret")
	require.NoError(t, err)

	tests := []struct {
		name  string
		plain string
	}{
		{name: "Gateway secret", plain: "rzp_test_secret_0123456789"},
		{name: "Empty string", plain: ""},
		{name: "Unicode", plain: "ключ-秘密"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := v.Encrypt(tt.plain)
			require.NoError(t, err)

			got, err := v.Decrypt(token)
			require.NoError(t, err)
			assert.Equal(t, tt.plain, got)
		})
	}
}

func TestVault_NonceIsRandom(t *testing.T) {
	v, err := New("server-secret")
	require.NoError(t, err)

	a, err := v.Encrypt("same")
	require.NoError(t, err)
	b, err := v.Encrypt("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestVault_DecryptFailures(t *testing.T) {
	v, err := New("server-secret")
	require.NoError(t, err)
	other, err := New("another-secret")
	require.NoError(t, err)

	token, err := v.Encrypt("rzp_secret")
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)
	raw[len(raw)/2] ^= 0xff
	tampered := base64.RawURLEncoding.EncodeToString(raw)

	tests := []struct {
		name  string
		vault *Vault
		token string
	}{
		{name: "Wrong key", vault: other, token: token},
		{name: "Not base64", vault: v, token: "%%%"},
		{name: "Too short", vault: v, token: "AAAA"},
		{name: "Tampered", vault: v, token: tampered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.vault.Decrypt(tt.token)
			assert.ErrorIs(t, err, ErrDecryption)
		})
	}
}
