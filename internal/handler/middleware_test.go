package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-backoffice/internal/model"
	"travel-backoffice/internal/service/mocks"
	apperrors "travel-backoffice/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRequireSession(t *testing.T) {
	t.Run("Failed - no cookie", func(t *testing.T) {
		gw := newTestGateway(t, model.RoleUser, model.PermReadAgent)
		agents := mocks.NewMockCatalog[model.Agent, model.PartyInput](t)
		router := gw.router(NewCatalogHandler(agents, gw.deletions, AgentRoutes))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/agents", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "/", decodeBody(t, w)["redirect"])
		agents.AssertNotCalled(t, "List")
	})

	t.Run("Failed - token unknown to the session store", func(t *testing.T) {
		gw := newTestGateway(t, model.RoleUser, model.PermReadAgent)
		agents := mocks.NewMockCatalog[model.Agent, model.PartyInput](t)
		router := gw.router(NewCatalogHandler(agents, gw.deletions, AgentRoutes))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/agents", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: "stale-token"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "/", decodeBody(t, w)["redirect"])
		agents.AssertNotCalled(t, "List")
	})

	t.Run("Failed - session probe rejected", func(t *testing.T) {
		gw := newTestGateway(t, model.RoleUser, model.PermReadAgent)
		gw.auth = mocks.NewMockAuthService(t)
		gw.auth.EXPECT().Principal(mock.Anything, mock.Anything).Return(nil, apperrors.ErrSessionExpired).Once()
		agents := mocks.NewMockCatalog[model.Agent, model.PartyInput](t)
		router := gw.router(NewCatalogHandler(agents, gw.deletions, AgentRoutes))

		w := gw.serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/agents", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		agents.AssertNotCalled(t, "List")
	})
}

func TestRequirePermission(t *testing.T) {
	t.Run("Failed - missing permission", func(t *testing.T) {
		gw := newTestGateway(t, model.RoleAdmin, model.PermReadTicket)
		agents := mocks.NewMockCatalog[model.Agent, model.PartyInput](t)
		router := gw.router(NewCatalogHandler(agents, gw.deletions, AgentRoutes))

		w := gw.serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/agents", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		agents.AssertNotCalled(t, "List")
	})

	t.Run("Failed - activity is admin only", func(t *testing.T) {
		gw := newTestGateway(t, model.RoleUser, model.PermReadUser)
		activity := mocks.NewMockActivityService(t)
		router := gw.router(NewActivityHandler(activity))

		w := gw.serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/activity", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		activity.AssertNotCalled(t, "List")
	})
}

func TestRequestLogger_requestID(t *testing.T) {
	gw := newTestGateway(t, model.RoleUser)
	router := gw.router()

	t.Run("Success - echoes a valid id", func(t *testing.T) {
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(requestIDHeader, id)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, id, w.Header().Get(requestIDHeader))
	})

	t.Run("Success - replaces a malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(requestIDHeader, "not-a-uuid")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		_, err := uuid.Parse(w.Header().Get(requestIDHeader))
		assert.NoError(t, err)
	})
}
