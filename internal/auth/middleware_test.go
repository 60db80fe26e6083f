package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func invokeMiddleware(t *testing.T, manager *TokenManager, authHeader string) (int, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/trips/my-trips", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	handler := JWTMiddleware(manager)(func(c echo.Context) error {
		nextCalled = true
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)
	if err == nil {
		return rec.Code, nextCalled
	}

	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	return httpErr.Code, nextCalled
}

// TestJWTMiddlewareMissingHeader проверяет 403 без заголовка Authorization.
func TestJWTMiddlewareMissingHeader(t *testing.T) {
	manager := NewTokenManager("test-secret", "odyssey-api", time.Hour)

	code, nextCalled := invokeMiddleware(t, manager, "")
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
	if nextCalled {
		t.Fatal("next handler must not run without a token")
	}
}

// TestJWTMiddlewareBadToken проверяет 401 для испорченных токенов.
func TestJWTMiddlewareBadToken(t *testing.T) {
	manager := NewTokenManager("test-secret", "odyssey-api", time.Hour)

	for _, header := range []string{
		"Bearer garbage",
		"Bearer ",
		"Basic dXNlcjpwYXNz",
		"garbage-without-scheme",
	} {
		code, nextCalled := invokeMiddleware(t, manager, header)
		if code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, code)
		}
		if nextCalled {
			t.Fatalf("header %q: next handler must not run", header)
		}
	}
}

// TestJWTMiddlewareExpiredToken проверяет 401 для истекшего токена.
func TestJWTMiddlewareExpiredToken(t *testing.T) {
	manager := NewTokenManager("test-secret", "odyssey-api", time.Hour)
	expired := NewTokenManager("test-secret", "odyssey-api", -time.Minute)

	token, _, err := expired.NewToken("user-123", "traveler@example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	code, nextCalled := invokeMiddleware(t, manager, "Bearer "+token)
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if nextCalled {
		t.Fatal("next handler must not run with an expired token")
	}
}

// TestJWTMiddlewareValidToken проверяет пропуск запроса и заполнение
// контекста.
func TestJWTMiddlewareValidToken(t *testing.T) {
	manager := NewTokenManager("test-secret", "odyssey-api", time.Hour)

	token, _, err := manager.NewToken("user-123", "traveler@example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/trips/my-trips", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := JWTMiddleware(manager)(func(c echo.Context) error {
		userID, ok := UserIDFromContext(c)
		if !ok || userID != "user-123" {
			t.Fatalf("unexpected user id in context: %q", userID)
		}
		email, ok := EmailFromContext(c)
		if !ok || email != "traveler@example.com" {
			t.Fatalf("unexpected email in context: %q", email)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
