package authcallback

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// Strategy identifies how a callback URL is turned into a session
type Strategy int

const (
	StrategyNone Strategy = iota
	StrategyCodeExchange
	StrategyImplicitHash
	StrategyManualTokens
)

func (s Strategy) String() string {
	switch s {
	case StrategyCodeExchange:
		return "code_exchange"
	case StrategyImplicitHash:
		return "implicit_hash"
	case StrategyManualTokens:
		return "manual_tokens"
	default:
		return "none"
	}
}

// Resolver turns OAuth redirect URLs into session outcomes.
// It makes at most one collaborator call per Resolve and never retries.
type Resolver struct {
	caps   Capabilities
	logger *zap.Logger
}

// NewResolver creates a resolver over the given capabilities
func NewResolver(caps Capabilities, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{caps: caps, logger: logger}
}

// NewResolverFor detects the capabilities of an identity client and
// creates a resolver over them
func NewResolverFor(client any, logger *zap.Logger) *Resolver {
	return NewResolver(DetectCapabilities(client), logger)
}

// callback is a parsed callback URL
type callback struct {
	raw      string
	query    url.Values
	fragment string
	hash     url.Values
}

func parseCallback(raw string) (*callback, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse callback URL: %w", err)
	}
	fragment := u.EscapedFragment()
	// Partial values are kept when the fragment has a bad escape
	hash, _ := url.ParseQuery(fragment)
	return &callback{
		raw:      raw,
		query:    u.Query(),
		fragment: fragment,
		hash:     hash,
	}, nil
}

// Strategy reports which strategy Resolve would run for rawURL
func (r *Resolver) Strategy(rawURL string) Strategy {
	cb, err := parseCallback(rawURL)
	if err != nil {
		return StrategyNone
	}
	return r.selectStrategy(cb)
}

func (r *Resolver) selectStrategy(cb *callback) Strategy {
	if (cb.query.Get("code") != "" || cb.query.Get("state") != "") && r.caps.Exchanger != nil {
		return StrategyCodeExchange
	}
	if (cb.fragment != "" || strings.Contains(cb.raw, "access_token=")) && r.caps.URLResolver != nil {
		return StrategyImplicitHash
	}
	if cb.hash.Get("access_token") != "" && r.caps.Setter != nil {
		return StrategyManualTokens
	}
	return StrategyNone
}

// Resolve runs the first applicable strategy for rawURL. The result of the
// selected strategy is final; later strategies are not tried on failure.
// Resolve never panics and never returns an error: every fault becomes a
// failed Outcome.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) (out Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("auth callback resolution panicked", zap.Any("panic", rec))
			out = Failed(MsgUnexpected)
		}
	}()

	cb, err := parseCallback(rawURL)
	if err != nil {
		r.logger.Warn("malformed auth callback URL", zap.Error(err))
		return Failed(MsgUnexpected)
	}

	strategy := r.selectStrategy(cb)
	r.logger.Debug("resolving auth callback", zap.Stringer("strategy", strategy))

	var session *Session
	switch strategy {
	case StrategyCodeExchange:
		session, err = r.caps.Exchanger.ExchangeCodeForSession(ctx, cb.raw)
	case StrategyImplicitHash:
		session, err = r.caps.URLResolver.GetSessionFromURL(ctx, cb.raw)
	case StrategyManualTokens:
		session, err = r.caps.Setter.SetSession(ctx, Tokens{
			AccessToken:  cb.hash.Get("access_token"),
			RefreshToken: cb.hash.Get("refresh_token"),
		})
	default:
		r.logger.Info("auth callback carried no session parameters")
		return Failed(MsgNoSession)
	}

	if err != nil {
		r.logger.Warn("auth callback failed", zap.Stringer("strategy", strategy), zap.Error(err))
		return Failed(err.Error())
	}
	if session == nil {
		r.logger.Warn("auth callback returned no session", zap.Stringer("strategy", strategy))
		return Failed(MsgNoSessionReturned)
	}
	r.logger.Info("auth callback resolved", zap.Stringer("strategy", strategy), zap.String("user_id", session.UserID))
	return Succeeded(session)
}
