package handler

import (
	"net/http"
	"time"

	"travel-backoffice/config"
	"travel-backoffice/internal/model"
	"travel-backoffice/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service  service.AuthService
	sessions *Sessions
	cookie   string
	secure   bool
}

func NewAuthHandler(service service.AuthService, sessions *Sessions, upstreamCfg config.UpstreamConfig, sessionCfg config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		service:  service,
		sessions: sessions,
		cookie:   upstreamCfg.CookieName,
		secure:   sessionCfg.SecureCookie,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	{
		r.POST("auth/login", h.Login)
		r.POST("auth/logout", h.sessions.Require(), h.Logout)
		r.GET("auth/me", h.sessions.Require(), h.Me)
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in model.LoginInput
	if err := BindJson(c, &in); err != nil {
		return
	}
	ws, err := h.service.Login(c.Request.Context(), &in)
	if err != nil {
		handleError(c, err, "Login", "User")
		return
	}
	maxAge := int(time.Until(ws.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie, ws.Token(), maxAge, "/", "", h.secure, true)
	handleSuccess(c, gin.H{"user": ws.Principal()}, http.StatusOK)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), currentWorkspace(c)); err != nil {
		handleError(c, err, "Logout", "Session")
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie, "", -1, "/", "", h.secure, true)
	handleSuccess(c, gin.H{"message": "Logged out"}, http.StatusOK)
}

// Me returns the session principal. With ?module= it also reports whether
// that dashboard module is open to them.
func (h *AuthHandler) Me(c *gin.Context) {
	principal := currentWorkspace(c).Principal()
	body := gin.H{"user": principal}
	if module := c.Query("module"); module != "" {
		body["canAccess"] = principal.CanAccessModule(module)
	}
	handleSuccess(c, body, http.StatusOK)
}
