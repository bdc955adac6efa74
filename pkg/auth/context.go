package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	// ContextKeySubject is the context key for the token subject
	ContextKeySubject contextKey = "subject"
)

// WithClaims stores the subject of the validated claims in ctx.
func WithClaims(ctx context.Context, claims jwt.MapClaims) context.Context {
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		ctx = context.WithValue(ctx, ContextKeySubject, sub)
	}
	return ctx
}

// SubjectFromContext retrieves the authenticated subject from the context
func SubjectFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(ContextKeySubject).(string)
	return sub, ok
}
