package auth

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/srbhuyan/shoppingList/pkg/httpx"
	"github.com/srbhuyan/shoppingList/pkg/logger"
)

const sessionName = "shoppinglist_session"
const sessionUsernameKey = "username"

// RequireAuth is a chi middleware that enforces authentication via session
// cookies. It reads the session, extracts the username, and injects it into
// the request context. Returns 401 if the session is missing or invalid.
//
// After this middleware, handlers can safely call auth.UsernameFromCtx(r.Context()).
func RequireAuth(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			username, ok := session.Values[sessionUsernameKey].(string)
			if !ok || username == "" {
				log.WarnContext(r.Context(), "session missing username")
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			ctx := WithUsername(r.Context(), username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
