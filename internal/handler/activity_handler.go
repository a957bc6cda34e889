package handler

import (
	"net/http"

	"travel-backoffice/internal/model"
	"travel-backoffice/internal/service"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	service service.ActivityService
}

func NewActivityHandler(service service.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

func (h *ActivityHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("activity", RequireAdmin(), h.List)
}

func (h *ActivityHandler) List(c *gin.Context) {
	var filter model.ActivityFilter
	if err := BindQuery(c, &filter); err != nil {
		return
	}
	activities, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		handleError(c, err, "List", "Activity")
		return
	}
	handleSuccess(c, gin.H{"activities": activities}, http.StatusOK)
}
