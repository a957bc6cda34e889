package service

import (
	"context"

	"travel-backoffice/internal/model"
	"travel-backoffice/internal/querycache"
	"travel-backoffice/internal/session"
	"travel-backoffice/internal/upstream"
	"travel-backoffice/internal/validation"
)

// Catalog is the list/edit/delete lifecycle shared by agents, providers,
// users and payment methods. I is the submitted form.
type Catalog[T, I any] interface {
	List(ctx context.Context, ws *session.Workspace, params model.ListParams) (*model.Page[T], error)
	// ListQuery is the cached read behind List, for search boxes.
	ListQuery(ws *session.Workspace, params model.ListParams) querycache.Query
	Get(ctx context.Context, ws *session.Workspace, id string) (*T, error)
	Create(ctx context.Context, ws *session.Workspace, in *I) (*T, error)
	Update(ctx context.Context, ws *session.Workspace, id string, in *I) (*T, error)
	Delete(ctx context.Context, ws *session.Workspace, id string) error
}

// CatalogNames are the endpoint names of one catalog, e.g. getAgents.
type CatalogNames struct {
	List, Get, Create, Update, Delete string
}

func namesFor(singular, plural string) CatalogNames {
	return CatalogNames{
		List:   "get" + plural,
		Get:    "get" + singular,
		Create: "create" + singular,
		Update: "update" + singular,
		Delete: "delete" + singular,
	}
}

type CatalogImpl[T, I any] struct {
	resource   *upstream.Resource[T]
	dispatcher *Dispatcher
	names      CatalogNames
	validate   func(in *I, update bool) error
}

func NewCatalog[T, I any](resource *upstream.Resource[T], dispatcher *Dispatcher, names CatalogNames, validate func(in *I, update bool) error) *CatalogImpl[T, I] {
	return &CatalogImpl[T, I]{
		resource:   resource,
		dispatcher: dispatcher,
		names:      names,
		validate:   validate,
	}
}

func NewAgentCatalog(c *upstream.Client, d *Dispatcher) Catalog[model.Agent, model.PartyInput] {
	return NewCatalog(
		upstream.NewResource[model.Agent](c, "agents", "agent", "agents", "agent"),
		d, namesFor("Agent", "Agents"),
		func(in *model.PartyInput, _ bool) error { return validation.ValidateParty(in) },
	)
}

func NewProviderCatalog(c *upstream.Client, d *Dispatcher) Catalog[model.Provider, model.PartyInput] {
	return NewCatalog(
		upstream.NewResource[model.Provider](c, "providers", "provider", "providers", "provider"),
		d, namesFor("Provider", "Providers"),
		func(in *model.PartyInput, _ bool) error { return validation.ValidateParty(in) },
	)
}

func NewUserCatalog(c *upstream.Client, d *Dispatcher) Catalog[model.User, model.UserInput] {
	return NewCatalog(
		upstream.NewResource[model.User](c, "users", "user", "users", "user"),
		d, namesFor("User", "Users"),
		validation.ValidateUser,
	)
}

func NewPaymentMethodCatalog(c *upstream.Client, d *Dispatcher) Catalog[model.PaymentMethod, model.PaymentMethodInput] {
	return NewCatalog(
		upstream.NewResource[model.PaymentMethod](c, "payment-methods", "payment-method", "paymentMethodDropdown", "paymentMethod"),
		d, namesFor("PaymentMethod", "PaymentMethods"),
		func(in *model.PaymentMethodInput, _ bool) error { return validation.ValidatePaymentMethod(in) },
	)
}

func (s *CatalogImpl[T, I]) ListQuery(ws *session.Workspace, params model.ListParams) querycache.Query {
	params = params.Normalize()
	return query(s.names.List, params, func(ctx context.Context) (*model.Page[T], error) {
		return s.resource.List(ctx, ws.Token(), params.Values())
	})
}

func (s *CatalogImpl[T, I]) List(ctx context.Context, ws *session.Workspace, params model.ListParams) (*model.Page[T], error) {
	return readQuery[*model.Page[T]](ctx, ws, s.ListQuery(ws, params))
}

func (s *CatalogImpl[T, I]) Get(ctx context.Context, ws *session.Workspace, id string) (*T, error) {
	return read(ctx, ws, s.names.Get, id, func(ctx context.Context) (*T, error) {
		return s.resource.Get(ctx, ws.Token(), id)
	})
}

func (s *CatalogImpl[T, I]) Create(ctx context.Context, ws *session.Workspace, in *I) (*T, error) {
	if err := s.validate(in, false); err != nil {
		return nil, err
	}
	return dispatch(ctx, s.dispatcher, ws, s.names.Create, "", func(ctx context.Context) (*T, error) {
		return s.resource.Create(ctx, ws.Token(), in)
	})
}

func (s *CatalogImpl[T, I]) Update(ctx context.Context, ws *session.Workspace, id string, in *I) (*T, error) {
	if err := s.validate(in, true); err != nil {
		return nil, err
	}
	return dispatch(ctx, s.dispatcher, ws, s.names.Update, id, func(ctx context.Context) (*T, error) {
		return s.resource.Update(ctx, ws.Token(), id, in)
	})
}

func (s *CatalogImpl[T, I]) Delete(ctx context.Context, ws *session.Workspace, id string) error {
	_, err := dispatch(ctx, s.dispatcher, ws, s.names.Delete, id, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.resource.Delete(ctx, ws.Token(), id)
	})
	return err
}
