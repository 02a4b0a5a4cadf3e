package middleware

import (
	"context"
	"net/http"

	"ridgeline.build/ridgeline-web/internal/i18n"
)

// context keys are unexported to avoid collisions
type ctxKey string

const ctxKeyRequestID ctxKey = "req_id"

// WithRequestID stores request id in context
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

// RequestID gets request id from context
func RequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKeyRequestID).(string)
	return v, ok
}

// Lang returns the language resolved by Locale, or fallback.
func Lang(r *http.Request, fallback string) string {
	if l, ok := i18n.LangFromContext(r.Context()); ok {
		return l
	}
	return fallback
}
