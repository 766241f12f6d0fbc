package cli

import (
	"context"

	"github.com/thenoetrevino/plano/internal/app"
)

type contextKey struct{}

// appKey carries an already running App through a command context
var appKey = contextKey{}

// WithApp returns a context that makes GetCLIFromContext reuse a
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns a CLI around the App stored in ctx, or opens a
// new one. Closing a CLI built from an injected App leaves the App open.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx != nil {
		if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
			return &CLI{App: a}, nil
		}
	} else {
		ctx = context.Background()
	}
	return NewCLI(ctx)
}
