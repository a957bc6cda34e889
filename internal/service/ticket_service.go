package service

import (
	"context"

	"travel-backoffice/internal/model"
	"travel-backoffice/internal/querycache"
	"travel-backoffice/internal/session"
	"travel-backoffice/internal/upstream"
	"travel-backoffice/internal/validation"
)

type TicketService interface {
	List(ctx context.Context, ws *session.Workspace, filter model.TicketFilter) (*model.Page[model.Ticket], error)
	ListQuery(ws *session.Workspace, filter model.TicketFilter) querycache.Query
	Get(ctx context.Context, ws *session.Workspace, id string) (*model.Ticket, error)
	// Create, Update and ReIssue take the raw form; it is validated before
	// anything reaches the backend.
	Create(ctx context.Context, ws *session.Workspace, raw map[string]any) (*model.Ticket, error)
	Update(ctx context.Context, ws *session.Workspace, id string, raw map[string]any) (*model.Ticket, error)
	// ReIssue records a new ticket that replaces originalID.
	ReIssue(ctx context.Context, ws *session.Workspace, originalID string, raw map[string]any) (*model.Ticket, error)
	Delete(ctx context.Context, ws *session.Workspace, id string) error
}

type TicketServiceImpl struct {
	tickets    *upstream.Resource[model.Ticket]
	dispatcher *Dispatcher
}

func NewTicketService(c *upstream.Client, dispatcher *Dispatcher) TicketService {
	return &TicketServiceImpl{
		tickets:    upstream.NewResource[model.Ticket](c, "tickets", "ticket", "tickets", "ticket"),
		dispatcher: dispatcher,
	}
}

func (s *TicketServiceImpl) ListQuery(ws *session.Workspace, filter model.TicketFilter) querycache.Query {
	filter.ListParams = filter.ListParams.Normalize()
	return query("getTickets", filter, func(ctx context.Context) (*model.Page[model.Ticket], error) {
		return s.tickets.List(ctx, ws.Token(), filter.Values())
	})
}

func (s *TicketServiceImpl) List(ctx context.Context, ws *session.Workspace, filter model.TicketFilter) (*model.Page[model.Ticket], error) {
	return readQuery[*model.Page[model.Ticket]](ctx, ws, s.ListQuery(ws, filter))
}

func (s *TicketServiceImpl) Get(ctx context.Context, ws *session.Workspace, id string) (*model.Ticket, error) {
	return read(ctx, ws, "getTicket", id, func(ctx context.Context) (*model.Ticket, error) {
		return s.tickets.Get(ctx, ws.Token(), id)
	})
}

func (s *TicketServiceImpl) Create(ctx context.Context, ws *session.Workspace, raw map[string]any) (*model.Ticket, error) {
	ticket, err := validation.ValidateTicket(raw)
	if err != nil {
		return nil, err
	}
	record := ticket.Record()
	return dispatch(ctx, s.dispatcher, ws, "createTicket", "", func(ctx context.Context) (*model.Ticket, error) {
		saved, err := s.tickets.Create(ctx, ws.Token(), &record)
		return savedOr(saved, &record, err)
	})
}

func (s *TicketServiceImpl) Update(ctx context.Context, ws *session.Workspace, id string, raw map[string]any) (*model.Ticket, error) {
	ticket, err := validation.ValidateTicket(raw)
	if err != nil {
		return nil, err
	}
	record := ticket.Record()
	record.Ref = id
	return dispatch(ctx, s.dispatcher, ws, "updateTicket", id, func(ctx context.Context) (*model.Ticket, error) {
		saved, err := s.tickets.Update(ctx, ws.Token(), id, &record)
		return savedOr(saved, &record, err)
	})
}

func (s *TicketServiceImpl) ReIssue(ctx context.Context, ws *session.Workspace, originalID string, raw map[string]any) (*model.Ticket, error) {
	ticket, err := validation.ValidateTicket(raw)
	if err != nil {
		return nil, err
	}
	original, err := s.Get(ctx, ws, originalID)
	if err != nil {
		return nil, err
	}
	record := ticket.Record()
	record.OriginalTicket = model.Ref(original.Ref)
	if record.OriginalTicket == "" {
		record.OriginalTicket = model.Ref(originalID)
	}
	return dispatch(ctx, s.dispatcher, ws, "reIssueTicket", originalID, func(ctx context.Context) (*model.Ticket, error) {
		saved, err := s.tickets.Create(ctx, ws.Token(), &record)
		return savedOr(saved, &record, err)
	})
}

func (s *TicketServiceImpl) Delete(ctx context.Context, ws *session.Workspace, id string) error {
	_, err := dispatch(ctx, s.dispatcher, ws, "deleteTicket", id, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.tickets.Delete(ctx, ws.Token(), id)
	})
	return err
}

// savedOr falls back to the submitted record when the backend answers a
// successful mutation with only a message.
func savedOr(saved, submitted *model.Ticket, err error) (*model.Ticket, error) {
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return submitted, nil
	}
	return saved, nil
}
