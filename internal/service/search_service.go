package service

import (
	"context"

	"travel-backoffice/internal/model"
	"travel-backoffice/internal/querycache"
	"travel-backoffice/internal/search"
	"travel-backoffice/internal/session"
	apperrors "travel-backoffice/pkg/app_errors"
)

// Searchable resources, as used in /search/:resource.
const (
	SearchAgents         = "agents"
	SearchProviders      = "providers"
	SearchUsers          = "users"
	SearchPaymentMethods = "payment-methods"
	SearchTickets        = "tickets"
	SearchPayments       = "payments"
)

type SearchService interface {
	// Type feeds a term into the session's search box for resource.
	Type(ctx context.Context, ws *session.Workspace, resource, term string) (uint64, error)
	// Result waits for the box's latest search to settle.
	Result(ctx context.Context, ws *session.Workspace, resource string) (search.Result, error)
}

type SearchServiceImpl struct {
	queries map[string]func(ws *session.Workspace) search.QueryFunc
}

func NewSearchService(
	agents Catalog[model.Agent, model.PartyInput],
	providers Catalog[model.Provider, model.PartyInput],
	users Catalog[model.User, model.UserInput],
	paymentMethods Catalog[model.PaymentMethod, model.PaymentMethodInput],
	tickets TicketService,
	ledgers LedgerService,
) SearchService {
	byTerm := func(list func(ws *session.Workspace, params model.ListParams) querycache.Query) func(ws *session.Workspace) search.QueryFunc {
		return func(ws *session.Workspace) search.QueryFunc {
			return func(term string) querycache.Query {
				return list(ws, model.ListParams{Search: term})
			}
		}
	}
	return &SearchServiceImpl{
		queries: map[string]func(ws *session.Workspace) search.QueryFunc{
			SearchAgents:         byTerm(agents.ListQuery),
			SearchProviders:      byTerm(providers.ListQuery),
			SearchUsers:          byTerm(users.ListQuery),
			SearchPaymentMethods: byTerm(paymentMethods.ListQuery),
			SearchPayments:       byTerm(ledgers.PaymentsQuery),
			SearchTickets: func(ws *session.Workspace) search.QueryFunc {
				return func(term string) querycache.Query {
					return tickets.ListQuery(ws, model.TicketFilter{ListParams: model.ListParams{Search: term}})
				}
			},
		},
	}
}

func (s *SearchServiceImpl) box(ws *session.Workspace, resource string) (*search.Box, error) {
	build, ok := s.queries[resource]
	if !ok {
		return nil, apperrors.ErrUnknownResource
	}
	return ws.Box(resource, build(ws)), nil
}

func (s *SearchServiceImpl) Type(ctx context.Context, ws *session.Workspace, resource, term string) (uint64, error) {
	box, err := s.box(ws, resource)
	if err != nil {
		return 0, err
	}
	return box.Type(term), nil
}

func (s *SearchServiceImpl) Result(ctx context.Context, ws *session.Workspace, resource string) (search.Result, error) {
	box, err := s.box(ws, resource)
	if err != nil {
		return search.Result{}, err
	}
	result, err := box.Result(ctx)
	if err != nil {
		return search.Result{}, err
	}
	if result.Err != nil {
		return result, result.Err
	}
	return result, nil
}
