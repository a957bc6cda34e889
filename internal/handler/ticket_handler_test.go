package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-backoffice/internal/model"
	"travel-backoffice/internal/service/mocks"
	"travel-backoffice/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTicketTestRouter(t *testing.T, permissions ...string) (*testGateway, *mocks.MockTicketService, *gin.Engine) {
	gw := newTestGateway(t, model.RoleUser, permissions...)
	mockService := mocks.NewMockTicketService(t)
	router := gw.router(NewTicketHandler(mockService, gw.deletions))
	return gw, mockService, router
}

func TestTicketHandler_List(t *testing.T) {
	gw, mockService, router := setupTicketTestRouter(t, model.PermReadTicket)
	mockService.EXPECT().List(mock.Anything, gw.ws, mock.MatchedBy(func(f model.TicketFilter) bool {
		return f.Airline == "QR" && f.MinAmount == "100" && f.Page == 3
	})).Return(&model.Page[model.Ticket]{Items: []model.Ticket{{Ref: "t1", OperationType: model.OperationIssue}}}, nil).Once()

	w := gw.serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/tickets?airline=QR&minAmount=100&page=3", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTicketHandler_Create(t *testing.T) {
	form := map[string]any{
		"operationType":             "Issue",
		"provider":                  "p1",
		"paymentType":               "Full",
		"airlineCode":               "157",
		"ticketNumberWithoutPrefix": "1234567890",
		"providerCost":              850.5,
	}

	t.Run("Success", func(t *testing.T) {
		gw, mockService, router := setupTicketTestRouter(t, model.PermCreateTicket)
		mockService.EXPECT().Create(mock.Anything, gw.ws, mock.MatchedBy(func(raw map[string]any) bool {
			// numbers arrive undecoded so the engine sees the exact amount
			cost, ok := raw["providerCost"].(json.Number)
			return ok && cost.String() == "850.5" && raw["operationType"] == "Issue"
		})).Return(&model.Ticket{Ref: "t1", OperationType: model.OperationIssue, TicketNumber: "1571234567890"}, nil).Once()

		w := gw.serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/tickets", form))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "1571234567890", decodeBody(t, w)["ticketNumber"])
	})

	t.Run("Failed - ValidationError", func(t *testing.T) {
		gw, mockService, router := setupTicketTestRouter(t, model.PermCreateTicket)
		mockService.EXPECT().Create(mock.Anything, gw.ws, mock.Anything).Return(nil, validation.Errors{
			{Field: "pnr", Message: "PNR is required."},
		}).Once()

		w := gw.serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/tickets", form))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), `"field":"pnr"`)
	})

	t.Run("Failed - BindingError", func(t *testing.T) {
		gw, mockService, router := setupTicketTestRouter(t, model.PermCreateTicket)

		w := gw.serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/tickets", InvalidJSON))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - read-only user", func(t *testing.T) {
		gw, mockService, router := setupTicketTestRouter(t, model.PermReadTicket)

		w := gw.serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/tickets", form))

		assert.Equal(t, http.StatusForbidden, w.Code)
		mockService.AssertNotCalled(t, "Create")
	})
}

func TestTicketHandler_ReIssue(t *testing.T) {
	gw, mockService, router := setupTicketTestRouter(t, model.PermCreateTicket)
	mockService.EXPECT().ReIssue(mock.Anything, gw.ws, "t1", mock.Anything).Return(&model.Ticket{
		Ref: "t2", OperationType: model.OperationReIssue, OriginalTicket: "t1",
	}, nil).Once()

	w := gw.serve(router, createJSONHTTPRequest(http.MethodPost, "/api/v1/tickets/t1/re-issue", map[string]any{"operationType": "Re-Issue"}))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "t1", decodeBody(t, w)["originalTicket"])
}

func TestTicketHandler_Delete(t *testing.T) {
	gw, mockService, router := setupTicketTestRouter(t, model.PermDeleteTicket)
	mockService.EXPECT().Delete(mock.Anything, gw.ws, "t1").Return(nil).Once()

	w := gw.serve(router, httptest.NewRequest(http.MethodPost, "/api/v1/tickets/t1/delete-intent", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
	token, _ := decodeBody(t, w)["token"].(string)

	w = gw.serve(router, httptest.NewRequest(http.MethodDelete, "/api/v1/tickets/t1?confirm="+token, nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
