package jwtutil_test

import (
	"testing"
	"time"

	jwtutil "github.com/bookhaven/bookhaven/internal/security/jwt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestSignParseRoundTrip(t *testing.T) {
	s := jwtutil.NewSigner(testSecret, time.Minute)

	tok, err := s.SignSession("user-1", []string{"Admin", "Client"}, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := s.ParseSession(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Errorf("subject = %q", claims.Subject)
	}
	if len(claims.Roles) != 2 || claims.Roles[0] != "Admin" {
		t.Errorf("roles = %v", claims.Roles)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tok, err := jwtutil.NewSigner(testSecret, 0).SignSession("u", nil, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	other := jwtutil.NewSigner("ffffffffffffffffffffffffffffffff", 0)
	if _, err := other.ParseSession(tok); err == nil {
		t.Fatal("expected signature error")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	s := jwtutil.NewSigner(testSecret, 0)
	tok, err := s.SignSession("u", nil, -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.ParseSession(tok); err == nil {
		t.Fatal("expected expiry error")
	}
}
