package loader

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeJWT(t *testing.T) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"1234567890","name":"John Doe"}`))
	signature := base64.RawURLEncoding.EncodeToString([]byte("sig"))
	return header + "." + payload + "." + signature
}

func TestIsJWT(t *testing.T) {
	token := makeJWT(t)

	assert.True(t, IsJWT(token))
	assert.True(t, IsJWT("Bearer "+token))
	assert.False(t, IsJWT("a.b"))
	assert.False(t, IsJWT("not-a-token"))
	assert.False(t, IsJWT("x.y.z"))
}

func TestDecodeJWT(t *testing.T) {
	token := makeJWT(t)

	decoded, err := DecodeJWT(token)
	require.NoError(t, err)

	header := decoded["header"].(map[string]any)
	assert.Equal(t, "HS256", header["alg"])
	payload := decoded["payload"].(map[string]any)
	assert.Equal(t, "John Doe", payload["name"])
	assert.NotEmpty(t, decoded["signature"])
}

func TestLoadDataDetectsJWT(t *testing.T) {
	got, err := LoadData(makeJWT(t))
	require.NoError(t, err)
	require.Len(t, got, 1)

	doc := got[0].(map[string]any)
	assert.Contains(t, doc, "header")
	assert.Contains(t, doc, "payload")
}
