package middleware

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gedo/models"
	"gedo/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func newAuthenticator(stored *models.AdminAuth, sourceErr error) *Authenticator {
	return NewAuthenticator(
		func(ctx context.Context) (*models.AdminAuth, error) {
			return stored, sourceErr
		},
		"Gedo", "Gedo1999", testSecret,
	)
}

func basicHeader(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

func doRequest(a *Authenticator, authHeader string) *httptest.ResponseRecorder {
	called := false
	handler := a.Require(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	r := httptest.NewRequest(http.MethodPost, "/api/dishes", nil)
	if authHeader != "" {
		r.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	handler(w, r, nil)

	if w.Code == http.StatusOK && !called {
		panic("handler reported OK without invoking next")
	}
	return w
}

func TestBasicAuthStoredCredential(t *testing.T) {
	stored := &models.AdminAuth{
		Username:     "chef",
		PasswordHash: utils.HashPassword("secret-pass"),
	}
	a := newAuthenticator(stored, nil)

	w := doRequest(a, basicHeader("chef", "secret-pass"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBasicAuthWrongPassword(t *testing.T) {
	stored := &models.AdminAuth{
		Username:     "chef",
		PasswordHash: utils.HashPassword("secret-pass"),
	}
	a := newAuthenticator(stored, nil)

	w := doRequest(a, basicHeader("chef", "wrong"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	// generic message, never naming the failing field
	assert.Contains(t, w.Body.String(), "Invalid basic credentials")
	assert.NotContains(t, w.Body.String(), "password")
}

func TestBasicAuthFallbackWhenNothingStored(t *testing.T) {
	a := newAuthenticator(nil, nil)

	w := doRequest(a, basicHeader("Gedo", "Gedo1999"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBasicAuthFallbackWhenSourceFails(t *testing.T) {
	a := newAuthenticator(nil, errors.New("store down"))

	w := doRequest(a, basicHeader("Gedo", "Gedo1999"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBasicAuthFallbackWrongPair(t *testing.T) {
	a := newAuthenticator(nil, nil)

	w := doRequest(a, basicHeader("Gedo", "nope"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBasicAuthMalformedPayload(t *testing.T) {
	a := newAuthenticator(nil, nil)

	w := doRequest(a, "Basic not-base64!!")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBearerValidToken(t *testing.T) {
	a := newAuthenticator(nil, nil)

	claims := &Claims{
		Username: "chef",
		UserID:   "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	w := doRequest(a, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBearerGarbageToken(t *testing.T) {
	a := newAuthenticator(nil, nil)

	w := doRequest(a, "Bearer not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestBearerWrongKey(t *testing.T) {
	a := newAuthenticator(nil, nil)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	w := doRequest(a, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMissingAuthorization(t *testing.T) {
	a := newAuthenticator(nil, nil)

	w := doRequest(a, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Missing Authorization")
}

func TestUnknownScheme(t *testing.T) {
	a := newAuthenticator(nil, nil)

	w := doRequest(a, "Digest abcdef")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Missing Authorization")
}

func TestSchemeMatchingIsCaseInsensitive(t *testing.T) {
	stored := &models.AdminAuth{
		Username:     "chef",
		PasswordHash: utils.HashPassword("pw"),
	}
	a := newAuthenticator(stored, nil)

	header := "basic " + base64.StdEncoding.EncodeToString([]byte("chef:pw"))
	w := doRequest(a, header)
	assert.Equal(t, http.StatusOK, w.Code)
}
