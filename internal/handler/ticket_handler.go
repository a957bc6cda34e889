package handler

import (
	"encoding/json"
	"net/http"

	"travel-backoffice/internal/model"
	"travel-backoffice/internal/service"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	service   service.TicketService
	deletions *Deletions
}

func NewTicketHandler(service service.TicketService, deletions *Deletions) *TicketHandler {
	return &TicketHandler{service: service, deletions: deletions}
}

func (h *TicketHandler) RegisterRoutes(r *gin.RouterGroup) {
	{
		r.GET("tickets", RequirePermission(model.PermReadTicket), h.List)
		r.GET("tickets/:id", RequirePermission(model.PermReadTicket), h.Get)
		r.POST("tickets", RequirePermission(model.PermCreateTicket), h.Create)
		r.PATCH("tickets/:id", RequirePermission(model.PermEditTicket), h.Update)
		r.POST("tickets/:id/re-issue", RequirePermission(model.PermCreateTicket), h.ReIssue)
		r.POST("tickets/:id/delete-intent", RequirePermission(model.PermDeleteTicket), h.deletions.Intent("tickets", "Ticket"))
		r.DELETE("tickets/:id", RequirePermission(model.PermDeleteTicket), h.Delete)
	}
}

// bindForm reads the ticket form as loose JSON. The validation engine decides
// which fields apply, so unknown keys are not an error here.
func bindForm(c *gin.Context) (map[string]any, bool) {
	decoder := json.NewDecoder(c.Request.Body)
	decoder.UseNumber()
	var raw map[string]any
	if err := decoder.Decode(&raw); err != nil || raw == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return nil, false
	}
	return raw, true
}

func (h *TicketHandler) List(c *gin.Context) {
	var filter model.TicketFilter
	if err := BindQuery(c, &filter); err != nil {
		return
	}
	page, err := h.service.List(c.Request.Context(), currentWorkspace(c), filter)
	if err != nil {
		handleError(c, err, "List", "Ticket")
		return
	}
	handleSuccess(c, page, http.StatusOK)
}

func (h *TicketHandler) Get(c *gin.Context) {
	ticket, err := h.service.Get(c.Request.Context(), currentWorkspace(c), c.Param("id"))
	if err != nil {
		handleError(c, err, "Get", "Ticket")
		return
	}
	handleSuccess(c, ticket, http.StatusOK)
}

func (h *TicketHandler) Create(c *gin.Context) {
	raw, ok := bindForm(c)
	if !ok {
		return
	}
	created, err := h.service.Create(c.Request.Context(), currentWorkspace(c), raw)
	if err != nil {
		handleError(c, err, "Create", "Ticket")
		return
	}
	handleSuccess(c, created, http.StatusCreated)
}

func (h *TicketHandler) Update(c *gin.Context) {
	raw, ok := bindForm(c)
	if !ok {
		return
	}
	updated, err := h.service.Update(c.Request.Context(), currentWorkspace(c), c.Param("id"), raw)
	if err != nil {
		handleError(c, err, "Update", "Ticket")
		return
	}
	handleSuccess(c, updated, http.StatusOK)
}

func (h *TicketHandler) ReIssue(c *gin.Context) {
	raw, ok := bindForm(c)
	if !ok {
		return
	}
	reissued, err := h.service.ReIssue(c.Request.Context(), currentWorkspace(c), c.Param("id"), raw)
	if err != nil {
		handleError(c, err, "ReIssue", "Ticket")
		return
	}
	handleSuccess(c, reissued, http.StatusCreated)
}

func (h *TicketHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.deletions.confirm(c, "tickets", id); err != nil {
		handleError(c, err, "Delete", "Ticket")
		return
	}
	if err := h.service.Delete(c.Request.Context(), currentWorkspace(c), id); err != nil {
		handleError(c, err, "Delete", "Ticket")
		return
	}
	c.Status(http.StatusNoContent)
}
