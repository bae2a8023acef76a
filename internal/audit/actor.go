package audit

import "context"

type actorKey struct{}

// WithActor records the authenticated account performing the request.
func WithActor(ctx context.Context, accountID uint) context.Context {
	return context.WithValue(ctx, actorKey{}, accountID)
}

// ActorFrom returns the account stored by WithActor, or nil.
func ActorFrom(ctx context.Context) *uint {
	id, ok := ctx.Value(actorKey{}).(uint)
	if !ok {
		return nil
	}
	return &id
}
