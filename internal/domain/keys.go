package domain

import "context"

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyIdentity  CtxKey = "Identity"
	KeyRequestID CtxKey = "RequestID"
)

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, KeyRequestID, id)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)
	return id
}

// Identity is the authenticated principal of the current session.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// IdentityResolver answers "who is signed in" for the current request.
type IdentityResolver interface {
	CurrentIdentity(ctx context.Context) (*Identity, bool)
}

func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, id)
}

// ContextIdentity resolves the identity the auth middleware stored on the request context.
type ContextIdentity struct{}

func (ContextIdentity) CurrentIdentity(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(KeyIdentity).(*Identity)
	if !ok || id == nil || id.UserID == "" {
		return nil, false
	}
	return id, true
}
