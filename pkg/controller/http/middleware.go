package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/orgshift/pkg/domain/model"
)

// adminTokenSkew is the clock skew tolerated when checking token expiry
const adminTokenSkew = 30 * time.Second

// RequireAdmin checks the bearer JWT of admin requests. The token subject is
// recorded as the requester of runs started by the request. An empty secret
// disables the check.
func RequireAdmin(secret []byte) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if len(secret) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := jwt.ParseRequest(r,
				jwt.WithKey(jwa.HS256, secret),
				jwt.WithValidate(false),
			)
			if err == nil {
				err = jwt.Validate(token, jwt.WithAcceptableSkew(adminTokenSkew))
			}
			if err != nil {
				ctxlog.From(r.Context()).Debug("Admin token rejected", "error", err)
				writeError(w, r, "Unauthorized: invalid admin token", http.StatusUnauthorized)
				return
			}

			ctx := model.WithRunContext(r.Context(), &model.RunContext{
				Requester: token.Subject(),
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoggingMiddleware creates a chi-compatible logging middleware
func LoggingMiddleware(ctx context.Context) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Embed logger from the initial context into request context
			logger := ctxlog.From(ctx)
			if reqID := middleware.GetReqID(r.Context()); reqID != "" {
				logger = logger.With("requestID", reqID)
			}
			r = r.WithContext(ctxlog.With(r.Context(), logger))

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"query", r.URL.Query(),
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		})
	}
}
