package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	handlers "github.com/faaaroooqi/Feedstagram-app/internal/handler"
	"github.com/faaaroooqi/Feedstagram-app/internal/service"
)

type Middleware func(http.Handler) http.Handler

// AuthMiddleware verifies the bearer token and adds the caller's identity
// to the context. Signup, login, the public feed and the health check pass
// through untouched.
func AuthMiddleware(authService service.AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublic(r) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				handlers.WriteError(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			// expecting "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				handlers.WriteError(w, "Invalid token format", http.StatusUnauthorized)
				return
			}

			identity, err := authService.VerifyToken(parts[1])
			if err != nil {
				handlers.WriteError(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, handlers.UserIDKey, identity.UserID)
			ctx = context.WithValue(ctx, handlers.UsernameKey, identity.Username)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func isPublic(r *http.Request) bool {
	switch r.URL.Path {
	case "/", "/health", "/api/auth/signup", "/api/auth/login":
		return true
	}

	// the feed itself is readable without an account
	if r.URL.Path == "/api/posts" && r.Method == http.MethodGet {
		return true
	}

	if r.Method == http.MethodOptions {
		return true
	}

	return false
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s %s", r.Method, r.RequestURI, r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
