package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	authapp "github.com/ShohjahonSohibov/Aberno/application/auth"
	"github.com/ShohjahonSohibov/Aberno/constant"
	utilsContext "github.com/ShohjahonSohibov/Aberno/utils/context"
	"github.com/ShohjahonSohibov/Aberno/utils/errors"
)

// AuthMiddleware resolves the bearer token and stores the caller identity on the request context.
func AuthMiddleware(authApp authapp.AuthApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))

			subjectID, role, err := authApp.Authenticate(r.Context(), token)
			if err != nil {
				writeError(w, err)
				return
			}

			ctx := utilsContext.WithIdentity(r.Context(), subjectID, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminMiddleware must run after AuthMiddleware.
func AdminMiddleware(authApp authapp.AuthApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subjectID, ok := utilsContext.GetUserID(r.Context())
			if !ok {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			if err := authApp.RequireAdmin(r.Context(), subjectID); err != nil {
				writeError(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
