package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"travel-backoffice/internal/model"
	"travel-backoffice/internal/querycache"
	"travel-backoffice/internal/session"
	"travel-backoffice/internal/upstream"
	"travel-backoffice/internal/validation"
	apperrors "travel-backoffice/pkg/app_errors"
	"travel-backoffice/pkg/logger"

	"go.uber.org/zap"
)

type LedgerService interface {
	// Summary returns one row per entity, first row wins on duplicates.
	Summary(ctx context.Context, ws *session.Workspace) ([]model.LedgerSummary, error)
	// Entity returns one entity's postings in ascending date order.
	Entity(ctx context.Context, ws *session.Workspace, entityID string, filter model.LedgerFilter) (*model.EntityLedger, error)
	List(ctx context.Context, ws *session.Workspace, params model.ListParams) (*model.Page[model.LedgerEntry], error)
	Payments(ctx context.Context, ws *session.Workspace, params model.ListParams) (*model.Page[model.Payment], error)
	PaymentsQuery(ws *session.Workspace, params model.ListParams) querycache.Query
	// CreatePayment records a payment against an entity of the summary.
	CreatePayment(ctx context.Context, ws *session.Workspace, in *model.PaymentInput) (*model.Payment, error)
	Receipt(ctx context.Context, ws *session.Workspace, paymentID string) (*model.Receipt, error)
	Dashboard(ctx context.Context, ws *session.Workspace) (*model.Dashboard, error)
}

type LedgerServiceImpl struct {
	ledgers    *upstream.Ledgers
	dispatcher *Dispatcher
}

func NewLedgerService(c *upstream.Client, dispatcher *Dispatcher) LedgerService {
	return &LedgerServiceImpl{
		ledgers:    upstream.NewLedgers(c),
		dispatcher: dispatcher,
	}
}

func (s *LedgerServiceImpl) Summary(ctx context.Context, ws *session.Workspace) ([]model.LedgerSummary, error) {
	return read(ctx, ws, "getLedgerSummary", nil, func(ctx context.Context) ([]model.LedgerSummary, error) {
		rows, err := s.ledgers.Summary(ctx, ws.Token())
		if err != nil {
			return nil, err
		}
		return dedupeSummary(rows), nil
	})
}

func dedupeSummary(rows []model.LedgerSummary) []model.LedgerSummary {
	seen := make(map[string]struct{}, len(rows))
	out := make([]model.LedgerSummary, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.EntityID]; ok {
			logger.WithComponent("service").Warn("Duplicate ledger summary row",
				zap.String("entity_id", row.EntityID),
				zap.String("entity_type", string(row.EntityType)))
			continue
		}
		seen[row.EntityID] = struct{}{}
		out = append(out, row)
	}
	return out
}

func (s *LedgerServiceImpl) Entity(ctx context.Context, ws *session.Workspace, entityID string, filter model.LedgerFilter) (*model.EntityLedger, error) {
	if err := checkDateRange(filter); err != nil {
		return nil, err
	}
	args := struct {
		EntityID string             `json:"entityId"`
		Filter   model.LedgerFilter `json:"filter"`
	}{entityID, filter}
	return read(ctx, ws, "getEntityLedger", args, func(ctx context.Context) (*model.EntityLedger, error) {
		ledger, err := s.ledgers.Entity(ctx, ws.Token(), entityID, filter)
		if err != nil {
			return nil, err
		}
		slices.SortStableFunc(ledger.Ledgers, func(a, b model.LedgerEntry) int {
			return a.Date.Compare(b.Date)
		})
		return ledger, nil
	})
}

// checkDateRange rejects bounds that are not dates or that run backwards.
func checkDateRange(filter model.LedgerFilter) error {
	var bounds [2]time.Time
	for i, raw := range []string{filter.StartDate, filter.EndDate} {
		if raw == "" {
			continue
		}
		day, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return fmt.Errorf("%w: %q is not a date", apperrors.ErrInvalidInput, raw)
		}
		bounds[i] = day
	}
	if !bounds[0].IsZero() && !bounds[1].IsZero() && bounds[1].Before(bounds[0]) {
		return fmt.Errorf("%w: endDate is before startDate", apperrors.ErrInvalidInput)
	}
	return nil
}

func (s *LedgerServiceImpl) List(ctx context.Context, ws *session.Workspace, params model.ListParams) (*model.Page[model.LedgerEntry], error) {
	params = params.Normalize()
	return read(ctx, ws, "getLedgers", params, func(ctx context.Context) (*model.Page[model.LedgerEntry], error) {
		return s.ledgers.List(ctx, ws.Token(), params.Values())
	})
}

func (s *LedgerServiceImpl) PaymentsQuery(ws *session.Workspace, params model.ListParams) querycache.Query {
	params = params.Normalize()
	return query("getPayments", params, func(ctx context.Context) (*model.Page[model.Payment], error) {
		return s.ledgers.Payments(ctx, ws.Token(), params.Values())
	})
}

func (s *LedgerServiceImpl) Payments(ctx context.Context, ws *session.Workspace, params model.ListParams) (*model.Page[model.Payment], error) {
	return readQuery[*model.Page[model.Payment]](ctx, ws, s.PaymentsQuery(ws, params))
}

func (s *LedgerServiceImpl) CreatePayment(ctx context.Context, ws *session.Workspace, in *model.PaymentInput) (*model.Payment, error) {
	payment, err := validation.ValidatePayment(in)
	if err != nil {
		return nil, err
	}
	summary, err := s.Summary(ctx, ws)
	if err != nil {
		return nil, err
	}
	if !slices.ContainsFunc(summary, func(row model.LedgerSummary) bool {
		return row.EntityID == payment.EntityID && row.EntityType == payment.EntityType
	}) {
		return nil, validation.Field("entityId", "Select an entity from the ledger summary.")
	}
	return dispatch(ctx, s.dispatcher, ws, "createPayment", payment.EntityID, func(ctx context.Context) (*model.Payment, error) {
		return s.ledgers.CreatePayment(ctx, ws.Token(), payment)
	})
}

// Receipt is fetched on demand and never cached.
func (s *LedgerServiceImpl) Receipt(ctx context.Context, ws *session.Workspace, paymentID string) (*model.Receipt, error) {
	return s.ledgers.Receipt(ctx, ws.Token(), paymentID)
}

func (s *LedgerServiceImpl) Dashboard(ctx context.Context, ws *session.Workspace) (*model.Dashboard, error) {
	return read(ctx, ws, "getDashboard", nil, func(ctx context.Context) (*model.Dashboard, error) {
		return s.ledgers.Dashboard(ctx, ws.Token())
	})
}
