package auth

import (
	"testing"
	"time"
)

// TestTokenRoundTrip проверяет выпуск и разбор токена.
func TestTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", "odyssey-api", time.Hour)

	token, expiresAt, err := manager.NewToken("user-123", "traveler@example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}
	if time.Until(expiresAt) > time.Hour || time.Until(expiresAt) < 55*time.Minute {
		t.Fatalf("unexpected expiry: %v", expiresAt)
	}

	claims, err := manager.ParseToken(token)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if claims.Subject != "user-123" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.Email != "traveler@example.com" {
		t.Fatalf("unexpected email: %s", claims.Email)
	}
}

// TestParseTokenExpired проверяет отказ для истекшего токена.
func TestParseTokenExpired(t *testing.T) {
	manager := NewTokenManager("test-secret", "odyssey-api", -time.Minute)

	token, _, err := manager.NewToken("user-123", "traveler@example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := manager.ParseToken(token); err == nil {
		t.Fatal("expected an error for an expired token")
	}
}

// TestParseTokenWrongSecret проверяет отказ при подписи другим секретом.
func TestParseTokenWrongSecret(t *testing.T) {
	issuing := NewTokenManager("secret-a", "odyssey-api", time.Hour)
	verifying := NewTokenManager("secret-b", "odyssey-api", time.Hour)

	token, _, err := issuing.NewToken("user-123", "traveler@example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := verifying.ParseToken(token); err == nil {
		t.Fatal("expected an error for a token signed with another secret")
	}
}

// TestParseTokenWrongIssuer проверяет сверку издателя.
func TestParseTokenWrongIssuer(t *testing.T) {
	issuing := NewTokenManager("test-secret", "someone-else", time.Hour)
	verifying := NewTokenManager("test-secret", "odyssey-api", time.Hour)

	token, _, err := issuing.NewToken("user-123", "traveler@example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := verifying.ParseToken(token); err == nil {
		t.Fatal("expected an error for a foreign issuer")
	}
}

// TestParseTokenGarbage проверяет отказ на произвольной строке.
func TestParseTokenGarbage(t *testing.T) {
	manager := NewTokenManager("test-secret", "odyssey-api", time.Hour)

	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := manager.ParseToken(input); err == nil {
			t.Fatalf("expected an error for %q", input)
		}
	}
}
