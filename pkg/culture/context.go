package culture

import (
	"context"
	"log/slog"

	"github.com/plblum/jTAC-sub002/pkg/logger"
)

type cultureContextKey struct{}

// WithCulture stores the culture name in the context.
func WithCulture(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, cultureContextKey{}, name)
}

// FromContext returns the culture name stored in the context, or an empty
// string which selects the provider's default culture.
func FromContext(ctx context.Context) string {
	name, _ := ctx.Value(cultureContextKey{}).(string)
	return name
}

// ContextAttr is a logger.ContextExtractor that logs the culture stored
// with WithCulture.
func ContextAttr(ctx context.Context) (slog.Attr, bool) {
	name, ok := ctx.Value(cultureContextKey{}).(string)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.Culture(name), true
}
