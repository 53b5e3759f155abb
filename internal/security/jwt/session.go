// Package jwtutil signs and verifies the HS256 session tokens that carry
// role membership for the admin gate.
package jwtutil

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type SessionClaims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

type Signer struct {
	secret []byte
	skew   time.Duration
}

func NewSigner(secret string, clockSkew time.Duration) *Signer {
	return &Signer{secret: []byte(secret), skew: clockSkew}
}

// SignSession returns a token string for userID with its role set baked in.
func (s *Signer) SignSession(userID string, roles []string, ttl time.Duration) (string, error) {
	jti, err := randJTI()
	if err != nil {
		return "", err
	}
	now := time.Now()
	claims := SessionClaims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// ParseSession verifies signature and expiry (with leeway) and returns claims.
func (s *Signer) ParseSession(tokenStr string) (*SessionClaims, error) {
	parser := jwt.NewParser(jwt.WithLeeway(s.skew), jwt.WithValidMethods([]string{"HS256"}))
	token, err := parser.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func randJTI() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(b[:]), nil
}
