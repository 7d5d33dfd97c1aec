package context

import (
	"context"

	"github.com/labstack/echo/v4"
)

// KeyIdentity is the key for storing the authenticated caller.
const KeyIdentity ContextKey = "identity"

// Identity is the caller derived from a verified access token. It lives for one request.
type Identity struct {
	ID int64 `json:"id"`
}

// SetIdentity stores the identity on both the echo.Context and the request's context.Context.
func SetIdentity(c echo.Context, identity Identity) {
	c.Set(string(KeyIdentity), identity)

	req := c.Request()
	c.SetRequest(req.WithContext(WithIdentity(req.Context(), identity)))
}

// GetIdentity returns the identity attached by the auth middleware.
func GetIdentity(c echo.Context) (Identity, bool) {
	identity, ok := c.Get(string(KeyIdentity)).(Identity)

	return identity, ok
}

// WithIdentity returns a new context with the identity.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// IdentityFromContext extracts the identity from standard context.Context.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(KeyIdentity).(Identity)

	return identity, ok
}
