package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/student-marketplace/application/user"
	"github.com/muhammadheryan/student-marketplace/constant"
	utilsContext "github.com/muhammadheryan/student-marketplace/utils/context"
	"github.com/muhammadheryan/student-marketplace/utils/errors"
)

// AuthMiddleware validates JWT sessions using UserApp. Public paths pass
// without a token, but a valid token on them still identifies the caller.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// internal routes carry the worker key, checked by InternalMiddleware
			if strings.HasPrefix(r.URL.Path, "/internal/") {
				next.ServeHTTP(w, r)
				return
			}
			public := isPublicPath(r.URL.Path)

			token, ok := bearerToken(r)
			if !ok {
				if public {
					next.ServeHTTP(w, r)
					return
				}
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			userID, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				if public {
					next.ServeHTTP(w, r)
					return
				}
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			next.ServeHTTP(w, r.WithContext(utilsContext.WithUserID(r.Context(), userID)))
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") {
		return true
	}
	if path == "/products" || strings.HasPrefix(path, "/products/") {
		return true
	}
	switch path {
	case "/login", "/register", "/chat":
		return true
	}
	return false
}
