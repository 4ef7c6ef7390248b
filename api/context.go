package api

import (
	"context"

	"github.com/rpupo63/electronics-site-backend/auth"
)

type keyType string

const identityKey keyType = "identity"

// ctxWithIdentity adds the verified caller to the context
func ctxWithIdentity(ctx context.Context, id *auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// ctxGetIdentity returns the caller attached by the auth middleware, or nil
func ctxGetIdentity(ctx context.Context) *auth.Identity {
	id, _ := ctx.Value(identityKey).(*auth.Identity)
	return id
}
