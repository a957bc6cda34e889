package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-backoffice/config"
	"travel-backoffice/internal/model"
	"travel-backoffice/internal/service/mocks"
	"travel-backoffice/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	InvalidJSON = `{"invalid": json}`
)

const testToken = "tok-1"

// create JSON request body
func createJSONRequest(data interface{}) *bytes.Buffer {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return bytes.NewBuffer([]byte(""))
	}
	return bytes.NewBuffer(jsonData)
}

// create HTTP request with JSON body
func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	req, err := http.NewRequest(method, url, createJSONRequest(data))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

// testGateway is a logged-in session on a real registry, with the session
// probe answered by a mock.
type testGateway struct {
	cfg       *config.Config
	registry  *session.Registry
	auth      *mocks.MockAuthService
	deletions *Deletions
	ws        *session.Workspace
	principal *model.Principal
}

func newTestGateway(t *testing.T, role model.Role, permissions ...string) *testGateway {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()
	cfg := config.LoadTestConfig()

	registry := session.NewRegistry(session.NewMemoryStore(), cfg.Session, cfg.Cache)
	t.Cleanup(registry.CloseAll)
	principal := &model.Principal{
		Ref:         "u1",
		Name:        "Sara Khan",
		Username:    "sara",
		Role:        role,
		IsActive:    true,
		Permissions: permissions,
	}
	ws, err := registry.Open(ctx, testToken)
	require.NoError(t, err)
	require.NoError(t, registry.Remember(ctx, ws, principal))

	auth := mocks.NewMockAuthService(t)
	auth.EXPECT().Principal(mock.Anything, mock.Anything).Return(principal, nil).Maybe()

	return &testGateway{
		cfg:       cfg,
		registry:  registry,
		auth:      auth,
		deletions: NewDeletions(session.NewConfirmationGate(session.NewMemoryConfirmationStore(), cfg.Session.ConfirmationTTL)),
		ws:        ws,
		principal: principal,
	}
}

func (g *testGateway) router(handlers ...RouteRegistrar) *gin.Engine {
	sessions := NewSessions(g.registry, g.auth, g.cfg.Upstream.CookieName)
	authHandler := NewAuthHandler(g.auth, sessions, g.cfg.Upstream, g.cfg.Session)
	return NewRouter("handler-test", sessions, authHandler, append(handlers, g.deletions)...)
}

// serve sends req with the session cookie.
func (g *testGateway) serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	req.AddCookie(&http.Cookie{Name: g.cfg.Upstream.CookieName, Value: testToken})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
