package userctx

import "context"

// Context key type
type contextKey string

const actorIDKey contextKey = "actor_id"

// WithActorID adds the acting user's ID to the context
func WithActorID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, actorIDKey, id)
}

// ActorID retrieves the acting user's ID from the context, or nil when no actor is known
func ActorID(ctx context.Context) *int {
	if id, ok := ctx.Value(actorIDKey).(int); ok {
		return &id
	}
	return nil
}
