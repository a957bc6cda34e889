package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RouteRegistrar mounts a handler's routes on the session-guarded API group.
type RouteRegistrar interface {
	RegisterRoutes(r *gin.RouterGroup)
}

// NewRouter builds the gateway engine. Every registrar except auth sits
// behind the session middleware.
func NewRouter(serviceName string, sessions *Sessions, auth *AuthHandler, handlers ...RouteRegistrar) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), Tracing(serviceName), RequestLogger())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	api := r.Group("/api/v1")
	auth.RegisterRoutes(api)

	private := api.Group("", sessions.Require())
	for _, h := range handlers {
		h.RegisterRoutes(private)
	}
	return r
}
