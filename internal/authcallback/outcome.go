package authcallback

import (
	"context"
	"time"
)

// Failure messages carried by Outcome.Error
const (
	MsgNoSession         = "no session found in URL"
	MsgNoSessionReturned = "no session returned"
	MsgUnexpected        = "unexpected error resolving auth callback"
	MsgTimeout           = "timed out waiting for callback URL"
)

// Session is an authenticated session issued by the identity provider
type Session struct {
	AccessToken  string    `json:"access_token" yaml:"access_token"`
	RefreshToken string    `json:"refresh_token" yaml:"refresh_token"`
	TokenType    string    `json:"token_type,omitempty" yaml:"token_type,omitempty"`
	UserID       string    `json:"user_id,omitempty" yaml:"user_id,omitempty"`
	Email        string    `json:"email,omitempty" yaml:"email,omitempty"`
	ExpiresAt    time.Time `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
}

// Tokens is the token pair extracted from an implicit-flow fragment
type Tokens struct {
	AccessToken  string
	RefreshToken string
}

// Outcome is the result of resolving one callback URL
type Outcome struct {
	Success bool     `json:"success"`
	Session *Session `json:"session,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// Succeeded builds a successful outcome
func Succeeded(s *Session) Outcome {
	return Outcome{Success: true, Session: s}
}

// Failed builds a failed outcome
func Failed(reason string) Outcome {
	return Outcome{Success: false, Error: reason}
}

// CodeExchanger exchanges an authorization-code callback URL for a session
type CodeExchanger interface {
	ExchangeCodeForSession(ctx context.Context, callbackURL string) (*Session, error)
}

// URLSessionResolver resolves a session from the fragment of a callback URL
type URLSessionResolver interface {
	GetSessionFromURL(ctx context.Context, callbackURL string) (*Session, error)
}

// SessionSetter installs an explicit token pair as the current session
type SessionSetter interface {
	SetSession(ctx context.Context, tokens Tokens) (*Session, error)
}

// Capabilities lists which optional identity operations are available.
// A nil field means the operation is unsupported.
type Capabilities struct {
	Exchanger   CodeExchanger
	URLResolver URLSessionResolver
	Setter      SessionSetter
}

// DetectCapabilities inspects client once and records the optional
// interfaces it implements
func DetectCapabilities(client any) Capabilities {
	var caps Capabilities
	if x, ok := client.(CodeExchanger); ok {
		caps.Exchanger = x
	}
	if x, ok := client.(URLSessionResolver); ok {
		caps.URLResolver = x
	}
	if x, ok := client.(SessionSetter); ok {
		caps.Setter = x
	}
	return caps
}
