package handler

import (
	"fmt"
	"net/http"

	"travel-backoffice/internal/model"
	"travel-backoffice/internal/service"

	"github.com/gin-gonic/gin"
)

// LedgerHandler serves ledgers, payments and the dashboard figures.
type LedgerHandler struct {
	service service.LedgerService
}

func NewLedgerHandler(service service.LedgerService) *LedgerHandler {
	return &LedgerHandler{service: service}
}

func (h *LedgerHandler) RegisterRoutes(r *gin.RouterGroup) {
	readLedger := RequirePermission(model.PermReadLedger)
	{
		r.GET("ledgers", readLedger, h.List)
		r.GET("ledgers/summary", readLedger, h.Summary)
		r.GET("ledgers/entity/:entityId", readLedger, h.Entity)
		r.GET("dashboard", readLedger, h.Dashboard)

		r.GET("payments", RequirePermission(model.PermReadPayment), h.Payments)
		r.POST("payments", RequirePermission(model.PermCreatePayment), h.CreatePayment)
		r.GET("payments/:id/receipt", RequirePermission(model.PermReadPayment), h.Receipt)
	}
}

func (h *LedgerHandler) Summary(c *gin.Context) {
	rows, err := h.service.Summary(c.Request.Context(), currentWorkspace(c))
	if err != nil {
		handleError(c, err, "Summary", "Ledger")
		return
	}
	handleSuccess(c, gin.H{"summary": rows}, http.StatusOK)
}

func (h *LedgerHandler) Entity(c *gin.Context) {
	var filter model.LedgerFilter
	if err := BindQuery(c, &filter); err != nil {
		return
	}
	ledger, err := h.service.Entity(c.Request.Context(), currentWorkspace(c), c.Param("entityId"), filter)
	if err != nil {
		handleError(c, err, "Entity", "Ledger")
		return
	}
	handleSuccess(c, ledger, http.StatusOK)
}

func (h *LedgerHandler) List(c *gin.Context) {
	var params model.ListParams
	if err := BindQuery(c, &params); err != nil {
		return
	}
	page, err := h.service.List(c.Request.Context(), currentWorkspace(c), params)
	if err != nil {
		handleError(c, err, "List", "Ledger")
		return
	}
	handleSuccess(c, page, http.StatusOK)
}

func (h *LedgerHandler) Payments(c *gin.Context) {
	var params model.ListParams
	if err := BindQuery(c, &params); err != nil {
		return
	}
	page, err := h.service.Payments(c.Request.Context(), currentWorkspace(c), params)
	if err != nil {
		handleError(c, err, "Payments", "Payment")
		return
	}
	handleSuccess(c, page, http.StatusOK)
}

func (h *LedgerHandler) CreatePayment(c *gin.Context) {
	var in model.PaymentInput
	if err := BindJson(c, &in); err != nil {
		return
	}
	payment, err := h.service.CreatePayment(c.Request.Context(), currentWorkspace(c), &in)
	if err != nil {
		handleError(c, err, "CreatePayment", "Payment")
		return
	}
	handleSuccess(c, payment, http.StatusCreated)
}

// Receipt streams the payment receipt as a PDF download.
func (h *LedgerHandler) Receipt(c *gin.Context) {
	receipt, err := h.service.Receipt(c.Request.Context(), currentWorkspace(c), c.Param("id"))
	if err != nil {
		handleError(c, err, "Receipt", "Receipt")
		return
	}
	pdf, err := receipt.Decode()
	if err != nil {
		handleError(c, err, "Receipt", "Receipt")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", receipt.SafeFilename()))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *LedgerHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.service.Dashboard(c.Request.Context(), currentWorkspace(c))
	if err != nil {
		handleError(c, err, "Dashboard", "Dashboard")
		return
	}
	handleSuccess(c, dashboard, http.StatusOK)
}
