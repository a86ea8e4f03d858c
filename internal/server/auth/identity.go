package auth

import "context"

// Identity is the authenticated principal attached to a request.
type Identity interface {
	UserID() string
}

type userIdentity string

func (u userIdentity) UserID() string { return string(u) }

// NewIdentity returns the Identity for a verified user id.
func NewIdentity(userID string) Identity {
	return userIdentity(userID)
}

type ctxKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	if !ok || id == nil || id.UserID() == "" {
		return nil, false
	}
	return id, true
}
