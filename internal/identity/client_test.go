package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amirphiladam2/Actionable-sub001/internal/authcallback"
	"github.com/amirphiladam2/Actionable-sub001/internal/config"
)

// fakeProvider is a minimal GoTrue stand-in
func fakeProvider(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Query().Get("grant_type") != "pkce" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"msg": "unsupported grant"})
			return
		}
		if r.Header.Get("apikey") != "anon-key" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"msg": "missing apikey"})
			return
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if body["auth_code"] != "good-code" || body["code_verifier"] != "verifier" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{
				"error":             "invalid_grant",
				"error_description": "invalid auth code",
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "access-1",
			"refresh_token": "refresh-1",
			"token_type":    "bearer",
			"expires_at":    1741800000,
			"user":          map[string]string{"id": "user-1", "email": "ada@example.com"},
		})
	})

	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access-2" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"msg": "invalid JWT"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"id": "user-2", "email": "grace@example.com"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(baseURL string) *Client {
	return NewClient(config.IdentityConfig{
		BaseURL:      baseURL + "/",
		APIKey:       "anon-key",
		CodeVerifier: "verifier",
		Timeout:      2 * time.Second,
	})
}

func TestClientImplementsAllCapabilities(t *testing.T) {
	caps := authcallback.DetectCapabilities(NewClient(config.IdentityConfig{}))
	if caps.Exchanger == nil || caps.URLResolver == nil || caps.Setter == nil {
		t.Errorf("Expected all capabilities, got %+v", caps)
	}
}

func TestExchangeCodeForSession(t *testing.T) {
	srv := fakeProvider(t)
	c := newTestClient(srv.URL)

	s, err := c.ExchangeCodeForSession(context.Background(), "myapp://auth/callback?code=good-code&state=xyz")
	if err != nil {
		t.Fatalf("ExchangeCodeForSession failed: %v", err)
	}
	if s.AccessToken != "access-1" || s.RefreshToken != "refresh-1" {
		t.Errorf("Unexpected tokens: %+v", s)
	}
	if s.UserID != "user-1" || s.Email != "ada@example.com" {
		t.Errorf("Unexpected user: %+v", s)
	}
	if !s.ExpiresAt.Equal(time.Unix(1741800000, 0)) {
		t.Errorf("Unexpected expiry: %v", s.ExpiresAt)
	}
}

func TestExchangeCodeErrors(t *testing.T) {
	srv := fakeProvider(t)
	c := newTestClient(srv.URL)

	tests := []struct {
		name    string
		url     string
		wantErr string
	}{
		{"rejected code", "myapp://cb?code=bad-code", "invalid auth code"},
		{"no code", "myapp://cb?state=xyz", "no authorization code"},
		{"provider error in URL", "myapp://cb?code=x&error_description=access+denied", "access denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.ExchangeCodeForSession(context.Background(), tt.url)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestExchangeWithoutAPIKeyIsUnauthorized(t *testing.T) {
	srv := fakeProvider(t)
	c := NewClient(config.IdentityConfig{BaseURL: srv.URL, CodeVerifier: "verifier"})

	_, err := c.ExchangeCodeForSession(context.Background(), "myapp://cb?code=good-code")
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("Expected ErrUnauthorized, got %v", err)
	}
}

func TestGetSessionFromURL(t *testing.T) {
	srv := fakeProvider(t)
	c := newTestClient(srv.URL)

	s, err := c.GetSessionFromURL(context.Background(),
		"myapp://cb#access_token=access-2&refresh_token=refresh-2&token_type=bearer&expires_in=3600")
	if err != nil {
		t.Fatalf("GetSessionFromURL failed: %v", err)
	}
	if s.AccessToken != "access-2" || s.RefreshToken != "refresh-2" || s.UserID != "user-2" {
		t.Errorf("Unexpected session: %+v", s)
	}
	if s.ExpiresAt.IsZero() {
		t.Error("Expected expiry derived from expires_in")
	}
}

func TestGetSessionFromURLErrors(t *testing.T) {
	srv := fakeProvider(t)
	c := newTestClient(srv.URL)

	tests := []struct {
		name         string
		url          string
		unauthorized bool
	}{
		{"no tokens", "myapp://cb#state=xyz", false},
		{"fragment error", "myapp://cb#error=access_denied&error_description=denied", false},
		{"revoked token", "myapp://cb#access_token=stale&refresh_token=r", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.GetSessionFromURL(context.Background(), tt.url)
			if err == nil {
				t.Fatal("Expected error")
			}
			if errors.Is(err, ErrUnauthorized) != tt.unauthorized {
				t.Errorf("ErrUnauthorized = %v, want %v (err: %v)", errors.Is(err, ErrUnauthorized), tt.unauthorized, err)
			}
		})
	}
}

func TestSetSession(t *testing.T) {
	srv := fakeProvider(t)
	c := newTestClient(srv.URL)

	s, err := c.SetSession(context.Background(), authcallback.Tokens{AccessToken: "access-2", RefreshToken: "refresh-2"})
	if err != nil {
		t.Fatalf("SetSession failed: %v", err)
	}
	if s.Email != "grace@example.com" || s.RefreshToken != "refresh-2" {
		t.Errorf("Unexpected session: %+v", s)
	}

	if _, err := c.SetSession(context.Background(), authcallback.Tokens{}); err == nil {
		t.Error("Expected error for empty access token")
	}
}

func TestUnconfiguredBaseURL(t *testing.T) {
	c := NewClient(config.IdentityConfig{})
	_, err := c.SetSession(context.Background(), authcallback.Tokens{AccessToken: "a"})
	if err == nil || !strings.Contains(err.Error(), "base_url") {
		t.Errorf("Expected base_url error, got %v", err)
	}
}

func TestResolverWithClient(t *testing.T) {
	srv := fakeProvider(t)
	r := authcallback.NewResolverFor(newTestClient(srv.URL), nil)

	got := r.Resolve(context.Background(), "myapp://cb?code=good-code")
	if !got.Success || got.Session.AccessToken != "access-1" {
		t.Errorf("Expected code exchange success, got %+v", got)
	}

	got = r.Resolve(context.Background(), "myapp://cb?code=bad-code")
	if got.Success || got.Error != "invalid auth code" {
		t.Errorf("Expected provider error surfaced, got %+v", got)
	}
}
