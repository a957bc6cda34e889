package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"travel-backoffice/internal/session"
	"travel-backoffice/internal/validation"
	apperrors "travel-backoffice/pkg/app_errors"
	"travel-backoffice/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const workspaceKey = "workspace"

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// currentWorkspace returns the workspace RequireSession attached to the request.
func currentWorkspace(c *gin.Context) *session.Workspace {
	ws, _ := c.Get(workspaceKey)
	workspace, _ := ws.(*session.Workspace)
	return workspace
}

// failureVerb names what the user was trying to do, for fallback messages.
func failureVerb(operation string) string {
	switch {
	case strings.HasPrefix(operation, "Create"), strings.HasPrefix(operation, "ReIssue"):
		return "add"
	case strings.HasPrefix(operation, "Update"):
		return "update"
	case strings.HasPrefix(operation, "Delete"):
		return "delete"
	default:
		return "load"
	}
}

// handleError writes the gateway's error shape for err. subject is the
// human name of the resource ("Agent", "Payment Method").
func handleError(c *gin.Context, err error, operation, subject string) {
	log := logger.WithComponent("handler").With(
		zap.String("operation", operation),
		zap.String("path", c.FullPath()),
		zap.Error(err))
	fallback := fmt.Sprintf("Failed to %s %s.", failureVerb(operation), strings.ToLower(subject))

	var fieldErrs validation.Errors
	var upstreamErr *apperrors.UpstreamError
	switch {
	case errors.As(err, &fieldErrs):
		log.Info("Validation failed", zap.Strings("fields", fieldErrs.Fields()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed", "fields": fieldErrs})
	case errors.Is(err, apperrors.ErrConfirmationNeeded):
		log.Warn("Delete without confirmation")
		c.JSON(http.StatusPreconditionRequired, gin.H{"error": "Delete confirmation required"})
	case errors.Is(err, apperrors.ErrUnknownResource):
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown resource"})
	case errors.Is(err, apperrors.ErrNotFound):
		log.Info("Not found")
		c.JSON(http.StatusNotFound, gin.H{"error": subject + " not found"})
	case errors.As(err, &upstreamErr):
		status := upstreamErr.Status
		if status >= http.StatusInternalServerError {
			log.Error("Upstream failure")
			status = http.StatusBadGateway
		} else {
			log.Warn("Upstream rejected request")
		}
		msg := upstreamErr.Message
		if msg == "" {
			msg = fallback
		}
		body := gin.H{"error": msg}
		if status == http.StatusUnauthorized {
			body["redirect"] = "/"
		}
		c.JSON(status, body)
	case errors.Is(err, apperrors.ErrSessionExpired), errors.Is(err, apperrors.ErrUnauthenticated):
		log.Info("Session rejected")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired", "redirect": "/"})
	case errors.Is(err, apperrors.ErrForbidden):
		log.Warn("Forbidden")
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	case errors.Is(err, context.DeadlineExceeded):
		log.Error("Upstream timed out")
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": fallback})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func handleSuccess(c *gin.Context, data any, status int) {
	c.JSON(status, data)
}
