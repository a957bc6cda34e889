package handler

import (
	"net/http"

	"travel-backoffice/internal/model"
	"travel-backoffice/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogRoutes names the path, display subject and permissions of one catalog.
type CatalogRoutes struct {
	Path    string
	Subject string
	Read    string
	Create  string
	Edit    string
	Delete  string
}

var (
	AgentRoutes = CatalogRoutes{
		Path: "agents", Subject: "Agent",
		Read: model.PermReadAgent, Create: model.PermCreateAgent, Edit: model.PermEditAgent, Delete: model.PermDeleteAgent,
	}
	ProviderRoutes = CatalogRoutes{
		Path: "providers", Subject: "Provider",
		Read: model.PermReadProvider, Create: model.PermCreateProvider, Edit: model.PermEditProvider, Delete: model.PermDeleteProvider,
	}
	UserRoutes = CatalogRoutes{
		Path: "users", Subject: "User",
		Read: model.PermReadUser, Create: model.PermCreateUser, Edit: model.PermEditUser, Delete: model.PermDeleteUser,
	}
	PaymentMethodRoutes = CatalogRoutes{
		Path: "payment-methods", Subject: "Payment Method",
		Read: model.PermReadPaymentMethod, Create: model.PermCreatePaymentMethod, Edit: model.PermEditPaymentMethod, Delete: model.PermDeletePaymentMethod,
	}
)

// CatalogHandler serves the CRUD surface of one catalog resource.
type CatalogHandler[T, I any] struct {
	service   service.Catalog[T, I]
	deletions *Deletions
	routes    CatalogRoutes
}

func NewCatalogHandler[T, I any](service service.Catalog[T, I], deletions *Deletions, routes CatalogRoutes) *CatalogHandler[T, I] {
	return &CatalogHandler[T, I]{service: service, deletions: deletions, routes: routes}
}

func (h *CatalogHandler[T, I]) RegisterRoutes(r *gin.RouterGroup) {
	p := h.routes.Path
	{
		r.GET(p, RequirePermission(h.routes.Read), h.List)
		r.GET(p+"/:id", RequirePermission(h.routes.Read), h.Get)
		r.POST(p, RequirePermission(h.routes.Create), h.Create)
		r.PATCH(p+"/:id", RequirePermission(h.routes.Edit), h.Update)
		r.POST(p+"/:id/delete-intent", RequirePermission(h.routes.Delete), h.deletions.Intent(p, h.routes.Subject))
		r.DELETE(p+"/:id", RequirePermission(h.routes.Delete), h.Delete)
	}
}

func (h *CatalogHandler[T, I]) List(c *gin.Context) {
	var params model.ListParams
	if err := BindQuery(c, &params); err != nil {
		return
	}
	page, err := h.service.List(c.Request.Context(), currentWorkspace(c), params)
	if err != nil {
		handleError(c, err, "List", h.routes.Subject)
		return
	}
	handleSuccess(c, page, http.StatusOK)
}

func (h *CatalogHandler[T, I]) Get(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), currentWorkspace(c), c.Param("id"))
	if err != nil {
		handleError(c, err, "Get", h.routes.Subject)
		return
	}
	handleSuccess(c, item, http.StatusOK)
}

func (h *CatalogHandler[T, I]) Create(c *gin.Context) {
	var in I
	if err := BindJson(c, &in); err != nil {
		return
	}
	created, err := h.service.Create(c.Request.Context(), currentWorkspace(c), &in)
	if err != nil {
		handleError(c, err, "Create", h.routes.Subject)
		return
	}
	handleSuccess(c, created, http.StatusCreated)
}

func (h *CatalogHandler[T, I]) Update(c *gin.Context) {
	var in I
	if err := BindJson(c, &in); err != nil {
		return
	}
	updated, err := h.service.Update(c.Request.Context(), currentWorkspace(c), c.Param("id"), &in)
	if err != nil {
		handleError(c, err, "Update", h.routes.Subject)
		return
	}
	handleSuccess(c, updated, http.StatusOK)
}

func (h *CatalogHandler[T, I]) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.deletions.confirm(c, h.routes.Path, id); err != nil {
		handleError(c, err, "Delete", h.routes.Subject)
		return
	}
	if err := h.service.Delete(c.Request.Context(), currentWorkspace(c), id); err != nil {
		handleError(c, err, "Delete", h.routes.Subject)
		return
	}
	c.Status(http.StatusNoContent)
}
