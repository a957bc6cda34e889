package handler

import (
	"net/http"

	"travel-backoffice/internal/model"
	"travel-backoffice/internal/service"

	"github.com/gin-gonic/gin"
)

var searchPermissions = map[string]string{
	service.SearchAgents:         model.PermReadAgent,
	service.SearchProviders:      model.PermReadProvider,
	service.SearchUsers:          model.PermReadUser,
	service.SearchPaymentMethods: model.PermReadPaymentMethod,
	service.SearchTickets:        model.PermReadTicket,
	service.SearchPayments:       model.PermReadPayment,
}

type SearchHandler struct {
	service service.SearchService
}

func NewSearchHandler(service service.SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

func (h *SearchHandler) RegisterRoutes(r *gin.RouterGroup) {
	{
		r.PUT("search/:resource", requireSearchPermission(), h.Type)
		r.GET("search/:resource", requireSearchPermission(), h.Result)
	}
}

// requireSearchPermission applies the read permission of the searched resource.
func requireSearchPermission() gin.HandlerFunc {
	return func(c *gin.Context) {
		permission, ok := searchPermissions[c.Param("resource")]
		if !ok {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Unknown resource"})
			return
		}
		RequirePermission(permission)(c)
	}
}

type typeRequest struct {
	Term string `json:"term"`
}

func (h *SearchHandler) Type(c *gin.Context) {
	var req typeRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	generation, err := h.service.Type(c.Request.Context(), currentWorkspace(c), c.Param("resource"), req.Term)
	if err != nil {
		handleError(c, err, "Search", "Search")
		return
	}
	handleSuccess(c, gin.H{"term": req.Term, "generation": generation}, http.StatusAccepted)
}

// Result blocks until the latest typed term has settled.
func (h *SearchHandler) Result(c *gin.Context) {
	result, err := h.service.Result(c.Request.Context(), currentWorkspace(c), c.Param("resource"))
	if err != nil {
		handleError(c, err, "Search", "Search")
		return
	}
	handleSuccess(c, result, http.StatusOK)
}
