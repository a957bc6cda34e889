package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"travel-backoffice/internal/model"
)

// Ledgers covers the read-only ledger endpoints and payment recording.
type Ledgers struct {
	client *Client
}

func NewLedgers(c *Client) *Ledgers {
	return &Ledgers{client: c}
}

func (l *Ledgers) Summary(ctx context.Context, token string) ([]model.LedgerSummary, error) {
	resp, err := l.client.send(ctx, request{method: http.MethodGet, path: "ledgers/get-summary", token: token})
	if err != nil {
		return nil, err
	}
	rows, _, err := decodeList[model.LedgerSummary](resp.body, "summary", "ledgers")
	return rows, err
}

func (l *Ledgers) List(ctx context.Context, token string, query url.Values) (*model.Page[model.LedgerEntry], error) {
	resp, err := l.client.send(ctx, request{method: http.MethodGet, path: "ledgers/get-all", query: query, token: token})
	if err != nil {
		return nil, err
	}
	entries, env, err := decodeList[model.LedgerEntry](resp.body, "ledgers")
	if err != nil {
		return nil, err
	}
	return &model.Page[model.LedgerEntry]{Items: entries, Pagination: pageInfo(env, len(entries))}, nil
}

func (l *Ledgers) Entity(ctx context.Context, token, entityID string, filter model.LedgerFilter) (*model.EntityLedger, error) {
	resp, err := l.client.send(ctx, request{
		method: http.MethodGet,
		path:   "ledgers/get-entity-ledger/" + url.PathEscape(entityID),
		query:  filter.Values(),
		token:  token,
	})
	if err != nil {
		return nil, err
	}
	entries, env, err := decodeList[model.LedgerEntry](resp.body, "ledgers")
	if err != nil {
		return nil, err
	}
	return &model.EntityLedger{Ledgers: entries, Pagination: pageInfo(env, len(entries))}, nil
}

func (l *Ledgers) CreatePayment(ctx context.Context, token string, payment *model.Payment) (*model.Payment, error) {
	resp, err := l.client.send(ctx, request{method: http.MethodPost, path: "ledgers/payment", body: payment, token: token})
	if err != nil {
		return nil, err
	}
	if len(resp.body) == 0 {
		return payment, nil
	}
	env, err := decodeEnvelope(resp.body)
	if err != nil {
		return nil, err
	}
	var created model.Payment
	if err := env.field(&created, "payment", "data"); err != nil {
		return payment, nil
	}
	return &created, nil
}

func (l *Ledgers) Payments(ctx context.Context, token string, query url.Values) (*model.Page[model.Payment], error) {
	resp, err := l.client.send(ctx, request{method: http.MethodGet, path: "payments/get-all", query: query, token: token})
	if err != nil {
		return nil, err
	}
	payments, env, err := decodeList[model.Payment](resp.body, "payments")
	if err != nil {
		return nil, err
	}
	return &model.Page[model.Payment]{Items: payments, Pagination: pageInfo(env, len(payments))}, nil
}

func (l *Ledgers) Receipt(ctx context.Context, token, paymentID string) (*model.Receipt, error) {
	resp, err := l.client.send(ctx, request{method: http.MethodGet, path: "payments/receipt/" + url.PathEscape(paymentID), token: token})
	if err != nil {
		return nil, err
	}
	env, err := decodeEnvelope(resp.body)
	if err != nil {
		return nil, err
	}
	receipt := &model.Receipt{}
	if err := env.field(&receipt.PDF, "pdf"); err != nil {
		return nil, err
	}
	_ = env.field(&receipt.Filename, "filename")
	return receipt, nil
}

// Dashboard returns the backend's headline figures.
func (l *Ledgers) Dashboard(ctx context.Context, token string) (*model.Dashboard, error) {
	resp, err := l.client.send(ctx, request{method: http.MethodGet, path: "dashboard", token: token})
	if err != nil {
		return nil, err
	}
	var wrapped struct {
		Data *model.Dashboard `json:"data"`
	}
	if err := json.Unmarshal(resp.body, &wrapped); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if wrapped.Data != nil {
		return wrapped.Data, nil
	}
	var dashboard model.Dashboard
	if err := json.Unmarshal(resp.body, &dashboard); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &dashboard, nil
}
