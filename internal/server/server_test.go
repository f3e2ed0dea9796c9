package server

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/studyabroadscholarships/interest-api/internal/config"
)

func testServer(t *testing.T, audience string) *Server {
	t.Helper()
	return &Server{
		logger: log.New(io.Discard, "", 0),
		jwtConfigs: []config.JWTConfig{
			{Issuer: "interest-api-admin", Secret: []byte("test-secret")},
		},
		jwtAudience: audience,
	}
}

func signToken(t *testing.T, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func validClaims() jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		Subject:   "maintainer-1",
		Issuer:    "interest-api-admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
}

func TestParseAuthTokenValid(t *testing.T) {
	srv := testServer(t, "")
	tokenString := signToken(t, "test-secret", validClaims())

	claims, err := srv.parseAuthToken(tokenString)
	if err != nil {
		t.Fatalf("parseAuthToken: %v", err)
	}
	if claims.Subject != "maintainer-1" {
		t.Errorf("Subject = %q", claims.Subject)
	}
}

func TestParseAuthTokenWrongSecret(t *testing.T) {
	srv := testServer(t, "")
	tokenString := signToken(t, "other-secret", validClaims())

	if _, err := srv.parseAuthToken(tokenString); err == nil {
		t.Fatal("token signed with an unknown secret must be rejected")
	}
}

func TestParseAuthTokenWrongIssuer(t *testing.T) {
	srv := testServer(t, "")
	claims := validClaims()
	claims.Issuer = "someone-else"
	tokenString := signToken(t, "test-secret", claims)

	if _, err := srv.parseAuthToken(tokenString); err == nil {
		t.Fatal("token from an unknown issuer must be rejected")
	}
}

func TestParseAuthTokenExpired(t *testing.T) {
	srv := testServer(t, "")
	claims := validClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-2 * time.Minute))
	tokenString := signToken(t, "test-secret", claims)

	if _, err := srv.parseAuthToken(tokenString); err == nil {
		t.Fatal("expired token must be rejected")
	}
}

func TestParseAuthTokenAudience(t *testing.T) {
	srv := testServer(t, "interest-api")

	claims := validClaims()
	claims.Audience = jwt.ClaimStrings{"interest-api"}
	if _, err := srv.parseAuthToken(signToken(t, "test-secret", claims)); err != nil {
		t.Errorf("matching audience rejected: %v", err)
	}

	claims.Audience = jwt.ClaimStrings{"other-api"}
	if _, err := srv.parseAuthToken(signToken(t, "test-secret", claims)); err == nil {
		t.Error("mismatched audience must be rejected")
	}
}

func TestAuthMiddleware(t *testing.T) {
	srv := testServer(t, "")
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := srv.authMiddleware(next)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not a bearer token", "Basic abc", http.StatusUnauthorized},
		{"empty bearer", "Bearer ", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"valid token", "Bearer " + signToken(t, "test-secret", validClaims()), http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/contacts-for-districts/5370", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestWithCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := withCORS([]string{"https://studyabroadscholarships.org"})(next)

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/interest-form-entry", nil)
		req.Header.Set("Origin", "https://studyabroadscholarships.org")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://studyabroadscholarships.org" {
			t.Errorf("Allow-Origin = %q", got)
		}
	})

	t.Run("preflight from allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/interest-form-entry", nil)
		req.Header.Set("Origin", "https://studyabroadscholarships.org")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Errorf("preflight status = %d", rec.Code)
		}
	})

	t.Run("unknown origin gets no CORS headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/interest-form-entry", nil)
		req.Header.Set("Origin", "https://evil.example.org")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Allow-Origin = %q, want empty", got)
		}
	})
}
