// Package auth checks the shared admin secret carried on each request.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	HeaderAdminPassword = "admin-password"
	bearerPrefix        = "Bearer "
)

var ErrNoSecret = errors.New("auth: an admin password or bcrypt hash is required")

// Gate authorizes admin requests against one configured secret. When a
// bcrypt hash is configured the plaintext password is ignored.
type Gate struct {
	hash   []byte
	digest [sha256.Size]byte
}

func NewGate(password, passwordHash string) (*Gate, error) {
	switch {
	case passwordHash != "":
		if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
			return nil, err
		}
		return &Gate{hash: []byte(passwordHash)}, nil
	case password != "":
		return &Gate{digest: sha256.Sum256([]byte(password))}, nil
	default:
		return nil, ErrNoSecret
	}
}

// Authorize reports whether secret matches. An empty secret never does.
func (g *Gate) Authorize(secret string) bool {
	if secret == "" {
		return false
	}
	if g.hash != nil {
		return bcrypt.CompareHashAndPassword(g.hash, []byte(secret)) == nil
	}
	sum := sha256.Sum256([]byte(secret))
	return subtle.ConstantTimeCompare(sum[:], g.digest[:]) == 1
}

// Credential extracts the secret from the admin-password header or an
// Authorization bearer token.
func Credential(r *http.Request) string {
	if v := strings.TrimSpace(r.Header.Get(HeaderAdminPassword)); v != "" {
		return v
	}
	if v := r.Header.Get("Authorization"); len(v) > len(bearerPrefix) && strings.EqualFold(v[:len(bearerPrefix)], bearerPrefix) {
		return strings.TrimSpace(v[len(bearerPrefix):])
	}
	return ""
}

// HashPassword returns a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrNoSecret
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
