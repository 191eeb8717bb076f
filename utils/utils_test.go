package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	// sha256 hex digest, stable across runs
	assert.Equal(t,
		"54bb80d4476d7b805cd1b91330d4e6f269e60848438b11c890dbb2e0c87cd93b",
		HashPassword("Gedo1999"))
	assert.Len(t, HashPassword("anything"), 64)
	assert.NotEqual(t, HashPassword("a"), HashPassword("b"))
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/public/testimonials", nil)
	r.RemoteAddr = "10.0.0.9:4242"
	assert.Equal(t, "10.0.0.9", ClientIP(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.7")
	assert.Equal(t, "203.0.113.7", ClientIP(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", ClientIP(r))
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "escape.txt", SanitizeFilename("../escape.txt"))
	assert.Equal(t, "a_b.png", SanitizeFilename("a b.png"))
	assert.Equal(t, "evil_name.png", SanitizeFilename("evil name.png"))
}

func TestGenerateRandomString(t *testing.T) {
	s := GenerateRandomString(14)
	assert.Len(t, s, 14)
	assert.NotEqual(t, s, GenerateRandomString(14))
}

func TestNewUUID(t *testing.T) {
	id := NewUUID()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.NotEqual(t, id, NewUUID())
}
