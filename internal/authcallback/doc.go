// Package authcallback resolves OAuth redirect URLs into sessions.
//
// A callback URL is matched against four strategies in order, and only the
// first applicable one runs:
//
//   - Code exchange: the query carries code or state.
//   - Implicit hash: the URL has a fragment or contains access_token=.
//   - Manual tokens: the fragment carries access_token; the access and
//     refresh tokens are installed directly.
//   - No match: the outcome fails with "no session found in URL".
//
// A strategy is only applicable when the identity client supports the
// operation it needs. Support is detected once by DetectCapabilities.
//
// Every fault, including panics in the identity client, is reported as a
// failed Outcome so callers can route to the signed-out entry point.
package authcallback
