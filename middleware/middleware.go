package middleware

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"strings"

	"gedo/globals"
	"gedo/models"
	"gedo/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

// JWT claims
type Claims struct {
	Username string `json:"username"`
	UserID   string `json:"userId"`
	jwt.RegisteredClaims
}

// AdminAuthSource fetches the stored admin credential pair. A nil result
// with nil error means no credential is stored yet.
type AdminAuthSource func(ctx context.Context) (*models.AdminAuth, error)

// Authenticator gates mutating routes. Basic credentials are checked against
// the stored admin pair (unsalted SHA-256, kept for compatibility with the
// existing stored hashes — a known hardening gap), then against the env
// fallback pair. Bearer tokens are verified as signed JWTs. Stateless: every
// request re-authenticates.
type Authenticator struct {
	StoredAuth   AdminAuthSource
	FallbackUser string
	FallbackPass string
	JwtSecret    []byte
}

func NewAuthenticator(source AdminAuthSource, fallbackUser, fallbackPass string, secret []byte) *Authenticator {
	return &Authenticator{
		StoredAuth:   source,
		FallbackUser: fallbackUser,
		FallbackPass: fallbackPass,
		JwtSecret:    secret,
	}
}

func (a *Authenticator) Require(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		header := r.Header.Get("Authorization")

		if payload, ok := stripScheme(header, "Basic"); ok {
			username, authed := a.checkBasic(r.Context(), payload)
			if !authed {
				utils.RespondWithError(w, http.StatusUnauthorized, "Invalid basic credentials")
				return
			}
			ctx := context.WithValue(r.Context(), globals.UsernameKey, username)
			next(w, r.WithContext(ctx), ps)
			return
		}

		if token, ok := stripScheme(header, "Bearer"); ok {
			claims, err := a.verifyToken(token)
			if err != nil {
				log.Printf("auth error: %v", err)
				utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}
			ctx := context.WithValue(r.Context(), globals.UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, globals.UsernameKey, claims.Username)
			next(w, r.WithContext(ctx), ps)
			return
		}

		utils.RespondWithError(w, http.StatusUnauthorized, "Missing Authorization")
	}
}

// checkBasic reports the supplied username and whether the pair matched the
// stored credential or the fallback. A generic failure never reveals which
// field was wrong. Store errors fall through to the fallback pair.
func (a *Authenticator) checkBasic(ctx context.Context, payload string) (string, bool) {
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", false
	}
	username, password, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return "", false
	}

	if stored, err := a.StoredAuth(ctx); err == nil && stored != nil &&
		stored.Username != "" && stored.PasswordHash != "" {
		if username == stored.Username && utils.HashPassword(password) == stored.PasswordHash {
			return username, true
		}
	}

	// Legacy env pair, kept for compatibility.
	if username == a.FallbackUser && password == a.FallbackPass {
		return username, true
	}
	return "", false
}

func (a *Authenticator) verifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.JwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// stripScheme matches `<scheme> <payload>` case-insensitively on the scheme.
func stripScheme(header, scheme string) (string, bool) {
	if len(header) <= len(scheme)+1 {
		return "", false
	}
	if !strings.EqualFold(header[:len(scheme)], scheme) || header[len(scheme)] != ' ' {
		return "", false
	}
	return strings.TrimSpace(header[len(scheme)+1:]), true
}
