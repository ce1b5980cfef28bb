package server

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/coliride/backend/internal/auth"
	"github.com/coliride/backend/internal/metrics"
	"github.com/coliride/backend/internal/repository"
)

type contextKey string

const claimsContextKey contextKey = "authClaims"

// protectedPagePrefixes are browser-facing paths that require a session; an
// unauthenticated hit is redirected to the login page with a callback.
var protectedPagePrefixes = []string{"/profile", "/dashboard", "/settings"}

// authPages redirect an already-authenticated browser to the profile page.
var authPages = map[string]bool{"/login": true, "/register": true}

// ClaimsFromContext returns the verified token claims attached by the auth
// middleware, or nil for unauthenticated requests.
func ClaimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsContextKey).(*auth.Claims)
	return claims
}

func (s *Server) observeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrw := newResponseWriterWrapper(w)

		next.ServeHTTP(wrw, r)

		elapsed := time.Since(start)
		status := wrw.GetStatusCode()
		metrics.HTTPRequestDuration.
			WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(status)).
			Observe(elapsed.Seconds())
		zap.L().Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Duration("duration", elapsed),
		)
	})
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	origins := s.corsOrigins
	if len(origins) == 0 {
		origins = []string{"http://*", "https://*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})(next)
}

// authMiddleware gates the whole surface: browser pages get redirects, API
// routes get JSON errors, and dashboard aggregates additionally require the
// ADMIN role.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		var claims *auth.Claims
		if token := auth.TokenFromRequest(r); token != "" {
			claims, _ = auth.VerifyToken(token, s.jwtSecret)
		}

		if authPages[path] {
			if claims != nil {
				http.Redirect(w, r, "/profile", http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		for _, prefix := range protectedPagePrefixes {
			if path == prefix || strings.HasPrefix(path, prefix+"/") {
				if claims == nil {
					http.Redirect(w, r, "/login?callbackUrl="+url.QueryEscape(path), http.StatusFound)
					return
				}
				break
			}
		}

		if strings.HasPrefix(path, "/api/") && !strings.HasPrefix(path, "/api/auth/") {
			if claims == nil {
				respondError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if strings.HasPrefix(path, "/api/dashboard") && claims.Role != repository.RoleAdmin {
				respondError(w, http.StatusForbidden, "admin access required")
				return
			}
		}

		if claims != nil {
			r = r.WithContext(context.WithValue(r.Context(), claimsContextKey, claims))
		}
		next.ServeHTTP(w, r)
	})
}
