package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-backoffice/internal/model"
	"travel-backoffice/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestActivityHandler_List(t *testing.T) {
	gw := newTestGateway(t, model.RoleAdmin)
	mockService := mocks.NewMockActivityService(t)
	router := gw.router(NewActivityHandler(mockService))
	mockService.EXPECT().List(mock.Anything, model.ActivityFilter{Resource: "tickets", Limit: 20}).Return([]*model.Activity{
		{ID: 1, Actor: "sara", Mutation: "createTicket", Resource: "tickets", Succeeded: true},
	}, nil).Once()

	w := gw.serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/activity?resource=tickets&limit=20", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"mutation":"createTicket"`)
}
