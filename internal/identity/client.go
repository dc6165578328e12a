// Package identity is an HTTP client for a GoTrue-compatible auth API.
// It implements every optional capability the auth callback resolver can use.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/amirphiladam2/Actionable-sub001/internal/authcallback"
	"github.com/amirphiladam2/Actionable-sub001/internal/config"
)

// ErrUnauthorized is returned when the provider rejects a token or grant
var ErrUnauthorized = errors.New("unauthorized")

const defaultTimeout = 10 * time.Second

// Client talks to the identity provider
type Client struct {
	baseURL      string
	apiKey       string
	codeVerifier string
	client       *http.Client
}

// NewClient creates a client from configuration
func NewClient(cfg config.IdentityConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:       cfg.APIKey,
		codeVerifier: cfg.CodeVerifier,
		client:       &http.Client{Timeout: timeout},
	}
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at"`
	RefreshToken string `json:"refresh_token"`
	User         user   `json:"user"`
}

type user struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type apiError struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (e apiError) text() string {
	for _, s := range []string{e.Msg, e.Message, e.ErrorDescription, e.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

// ExchangeCodeForSession exchanges the code in callbackURL's query for a
// session using the PKCE grant
func (c *Client) ExchangeCodeForSession(ctx context.Context, callbackURL string) (*authcallback.Session, error) {
	u, err := url.Parse(callbackURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse callback URL: %w", err)
	}
	q := u.Query()
	if desc := q.Get("error_description"); desc != "" {
		return nil, errors.New(desc)
	}
	code := q.Get("code")
	if code == "" {
		return nil, fmt.Errorf("callback URL has no authorization code")
	}

	body, err := json.Marshal(map[string]string{
		"auth_code":     code,
		"code_verifier": c.codeVerifier,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var tok tokenResponse
	if err := c.do(ctx, http.MethodPost, "/token?grant_type=pkce", "", body, &tok); err != nil {
		return nil, err
	}
	if tok.AccessToken == "" {
		return nil, fmt.Errorf("token response has no access_token")
	}
	return tok.session(time.Now()), nil
}

// GetSessionFromURL builds a session from the implicit-flow tokens in
// callbackURL's fragment and validates it against the provider
func (c *Client) GetSessionFromURL(ctx context.Context, callbackURL string) (*authcallback.Session, error) {
	u, err := url.Parse(callbackURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse callback URL: %w", err)
	}
	params, _ := url.ParseQuery(u.EscapedFragment())
	if desc := params.Get("error_description"); desc != "" {
		return nil, errors.New(desc)
	}
	if params.Get("access_token") == "" {
		return nil, fmt.Errorf("callback URL has no access_token")
	}

	tok := tokenResponse{
		AccessToken:  params.Get("access_token"),
		RefreshToken: params.Get("refresh_token"),
		TokenType:    params.Get("token_type"),
	}
	tok.ExpiresIn, _ = strconv.ParseInt(params.Get("expires_in"), 10, 64)
	tok.ExpiresAt, _ = strconv.ParseInt(params.Get("expires_at"), 10, 64)

	usr, err := c.getUser(ctx, tok.AccessToken)
	if err != nil {
		return nil, err
	}
	tok.User = *usr
	return tok.session(time.Now()), nil
}

// SetSession validates an explicit token pair and returns the session
func (c *Client) SetSession(ctx context.Context, tokens authcallback.Tokens) (*authcallback.Session, error) {
	if tokens.AccessToken == "" {
		return nil, fmt.Errorf("access token is required")
	}
	usr, err := c.getUser(ctx, tokens.AccessToken)
	if err != nil {
		return nil, err
	}
	return &authcallback.Session{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		TokenType:    "bearer",
		UserID:       usr.ID,
		Email:        usr.Email,
	}, nil
}

func (c *Client) getUser(ctx context.Context, accessToken string) (*user, error) {
	var usr user
	if err := c.do(ctx, http.MethodGet, "/user", accessToken, nil, &usr); err != nil {
		return nil, err
	}
	return &usr, nil
}

func (c *Client) do(ctx context.Context, method, path, bearer string, body []byte, out any) error {
	if c.baseURL == "" {
		return fmt.Errorf("identity base_url not configured")
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("identity request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		_ = json.Unmarshal(respBody, &apiErr)
		msg := apiErr.text()
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return fmt.Errorf("%s: %w", msg, ErrUnauthorized)
		}
		return errors.New(msg)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (t tokenResponse) session(now time.Time) *authcallback.Session {
	s := &authcallback.Session{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		TokenType:    t.TokenType,
		UserID:       t.User.ID,
		Email:        t.User.Email,
	}
	switch {
	case t.ExpiresAt > 0:
		s.ExpiresAt = time.Unix(t.ExpiresAt, 0).UTC()
	case t.ExpiresIn > 0:
		s.ExpiresAt = now.Add(time.Duration(t.ExpiresIn) * time.Second).UTC()
	}
	return s
}
