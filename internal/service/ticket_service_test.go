package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"travel-backoffice/internal/model"
	"travel-backoffice/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flightForm() map[string]any {
	return map[string]any{
		"operationType":             "Issue",
		"provider":                  "prov-1",
		"paymentType":               "Full",
		"airlineCode":               "157",
		"ticketNumberWithoutPrefix": "1234567890",
		"passengerName":             "Ali Raza",
		"issueDate":                 "2026-01-10",
		"departureDate":             "2026-02-01",
		"returnDate":                "2026-02-15",
		"departure":                 "LHE",
		"destination":               "DOH",
		"pnr":                       "QX7P2L",
		"providerCost":              json.Number("850.50"),
		"consumerCost":              json.Number("1000"),
		"profit":                    json.Number("0"),
		"clientPaymentMethod":       "Cash",
		"paymentToProvider":         "Card",
		"segment":                   "2",
	}
}

func TestTicketService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - sends the normalized record and dirties tickets and ledgers", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.reply("GET tickets/get-all", http.StatusOK, map[string]any{"tickets": []any{}})
		env.backend.reply("GET ledgers/get-summary", http.StatusOK, map[string]any{"summary": []any{}})
		var sent model.Ticket
		env.backend.handle("POST tickets/create", func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			assert.NoError(t, json.Unmarshal(body, &sent))
			writeJSON(w, http.StatusCreated, map[string]any{"message": "Ticket created"})
		})
		tickets := NewTicketService(env.client, env.dispatcher)
		ledgers := NewLedgerService(env.client, env.dispatcher)
		_, err := tickets.List(ctx, env.ws, model.TicketFilter{})
		require.NoError(t, err)
		_, err = ledgers.Summary(ctx, env.ws)
		require.NoError(t, err)

		created, err := tickets.Create(ctx, env.ws, flightForm())

		require.NoError(t, err)
		assert.Equal(t, "1571234567890", created.TicketNumber)
		assert.Equal(t, "1571234567890", sent.TicketNumber)
		assert.Equal(t, "149.5", sent.Profit.String())

		_, err = tickets.List(ctx, env.ws, model.TicketFilter{})
		require.NoError(t, err)
		_, err = ledgers.Summary(ctx, env.ws)
		require.NoError(t, err)
		assert.Equal(t, 2, env.backend.count("GET tickets/get-all"))
		assert.Equal(t, 2, env.backend.count("GET ledgers/get-summary"))
	})

	t.Run("Failed - every invalid field reported, nothing sent", func(t *testing.T) {
		env := newTestEnv(t)
		form := flightForm()
		delete(form, "pnr")
		form["ticketNumberWithoutPrefix"] = "12"
		tickets := NewTicketService(env.client, env.dispatcher)

		_, err := tickets.Create(ctx, env.ws, form)

		var errs validation.Errors
		require.ErrorAs(t, err, &errs)
		assert.True(t, errs.Has("pnr"))
		assert.True(t, errs.Has("ticketNumber"))
		assert.Equal(t, 0, env.backend.count("POST tickets/create"))
	})
}

func TestTicketService_ReIssue(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.backend.reply("GET tickets/get-ticket/t1", http.StatusOK, map[string]any{
		"ticket": map[string]any{"_id": "t1", "operationType": "Issue", "provider": map[string]any{"_id": "prov-1", "name": "PIA"}},
	})
	var sent model.Ticket
	env.backend.handle("POST tickets/create", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &sent))
		writeJSON(w, http.StatusCreated, map[string]any{"ticket": map[string]any{"_id": "t2", "originalTicket": "t1"}})
	})
	tickets := NewTicketService(env.client, env.dispatcher)
	form := flightForm()
	form["operationType"] = "Re-Issue"
	form["providerFee"] = json.Number("25")
	form["consumerFee"] = json.Number("40")

	created, err := tickets.ReIssue(ctx, env.ws, "t1", form)

	require.NoError(t, err)
	assert.Equal(t, "t2", created.Ref)
	assert.Equal(t, model.Ref("t1"), sent.OriginalTicket)
	require.NotNil(t, sent.ProviderFee)
	assert.Equal(t, "25", sent.ProviderFee.String())
	assert.Equal(t, "reIssueTicket", env.journal.last().Mutation)
}

func TestTicketService_Update(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.backend.reply("GET tickets/get-ticket/t1", http.StatusOK, map[string]any{
		"ticket": map[string]any{"_id": "t1", "operationType": "Issue", "passengerName": "Ali Raza"},
	})
	env.backend.reply("PATCH tickets/update/t1", http.StatusOK, map[string]any{
		"ticket": map[string]any{"_id": "t1", "operationType": "Issue", "passengerName": "Ali R. Khan"},
	})
	tickets := NewTicketService(env.client, env.dispatcher)

	_, err := tickets.Get(ctx, env.ws, "t1")
	require.NoError(t, err)
	form := flightForm()
	form["passengerName"] = "Ali R. Khan"
	updated, err := tickets.Update(ctx, env.ws, "t1", form)
	require.NoError(t, err)
	assert.Equal(t, "Ali R. Khan", updated.PassengerName)

	_, err = tickets.Get(ctx, env.ws, "t1")
	require.NoError(t, err)
	assert.Equal(t, 2, env.backend.count("GET tickets/get-ticket/t1"))

	activity := env.journal.last()
	require.NotNil(t, activity.EntityID)
	assert.Equal(t, "t1", *activity.EntityID)
}
