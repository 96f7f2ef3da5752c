package middleware

import (
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/blogem/useradmin/userctx"
)

// ActorSessionKey is the session key holding the acting user's ID
const ActorSessionKey = "actor_id"

// Actor copies the acting user's ID from the session into the request context,
// where the user service picks it up for the audit log. Requests without one
// pass through unchanged.
func Actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)
		if sess != nil {
			if id, ok := sess.Get(ActorSessionKey).(int); ok {
				r = r.WithContext(userctx.WithActorID(r.Context(), id))
			}
		}

		next.ServeHTTP(w, r)
	})
}
