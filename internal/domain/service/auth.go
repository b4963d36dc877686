package service

import "context"

type authTokenKey struct{}

// WithAuthToken returns a context carrying the caller's bearer token. The
// delivery layer stores the inbound Authorization credential here and the
// cart API client forwards it; nothing in between inspects it.
func WithAuthToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, authTokenKey{}, token)
}

// AuthTokenFromContext extracts the bearer token, or "" when absent.
func AuthTokenFromContext(ctx context.Context) string {
	if token, ok := ctx.Value(authTokenKey{}).(string); ok {
		return token
	}

	return ""
}
