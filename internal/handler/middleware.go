package handler

import (
	"net/http"
	"time"

	"travel-backoffice/internal/service"
	"travel-backoffice/internal/session"
	"travel-backoffice/pkg/logger"
	"travel-backoffice/pkg/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger tags each request with an id and logs it once it completes.
func RequestLogger() gin.HandlerFunc {
	log := logger.WithComponent("http")
	return func(c *gin.Context) {
		start := time.Now()
		id, err := uuid.Parse(c.GetHeader(requestIDHeader))
		if err != nil {
			id = uuid.New()
		}
		c.Header(requestIDHeader, id.String())
		c.Request = c.Request.WithContext(service.WithRequestID(c.Request.Context(), id))

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("request_id", id.String()),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
		}
		switch {
		case status >= http.StatusInternalServerError:
			log.Error("Request failed", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("Request rejected", fields...)
		default:
			log.Info("Request served", fields...)
		}
	}
}

// Tracing opens a server span per request, continuing any incoming trace.
func Tracing(name string) gin.HandlerFunc {
	tracer := telemetry.Tracer(name)
	return func(c *gin.Context) {
		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		ctx, span := tracer.Start(ctx, c.Request.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.request.method", c.Request.Method),
				attribute.String("http.route", route),
			))
		defer span.End()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(attribute.Int("http.response.status_code", status))
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	}
}

// Sessions resolves the caller's workspace from the session cookie.
type Sessions struct {
	registry   *session.Registry
	auth       service.AuthService
	cookieName string
}

func NewSessions(registry *session.Registry, auth service.AuthService, cookieName string) *Sessions {
	return &Sessions{registry: registry, auth: auth, cookieName: cookieName}
}

// Require rejects requests without a live session and attaches the
// workspace, with a probed principal, to the gin context.
func (s *Sessions) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(s.cookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not logged in", "redirect": "/"})
			return
		}
		ctx := c.Request.Context()
		ws, err := s.registry.Resolve(ctx, token)
		if err != nil {
			handleError(c, err, "RequireSession", "Session")
			c.Abort()
			return
		}
		if _, err := s.auth.Principal(ctx, ws); err != nil {
			handleError(c, err, "RequireSession", "Session")
			c.Abort()
			return
		}
		c.Set(workspaceKey, ws)
		c.Next()
	}
}

// RequirePermission lets the request through only if the session principal
// holds permission.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws := currentWorkspace(c)
		if ws == nil || !ws.Principal().HasPermission(permission) {
			logger.WithComponent("handler").Warn("Permission denied",
				zap.String("permission", permission),
				zap.String("path", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to do this."})
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ws := currentWorkspace(c)
		if ws == nil || !ws.Principal().IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admins only."})
			return
		}
		c.Next()
	}
}
