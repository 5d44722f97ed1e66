package http

import "context"

type contextKey string

const actorIDKey contextKey = "actor-id"

// WithActorID returns a context carrying the authenticated user's id.
func WithActorID(ctx context.Context, userID int32) context.Context {
	return context.WithValue(ctx, actorIDKey, userID)
}

// ActorIDFromContext extracts the authenticated user's id from the context.
// Zero means unauthenticated.
func ActorIDFromContext(ctx context.Context) int32 {
	if id, ok := ctx.Value(actorIDKey).(int32); ok {
		return id
	}
	return 0
}
