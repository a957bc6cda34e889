package handler

import (
	"net/http"

	"travel-backoffice/internal/session"

	"github.com/gin-gonic/gin"
)

// Deletions puts every delete behind a single-use confirmation token.
type Deletions struct {
	gate *session.ConfirmationGate
}

func NewDeletions(gate *session.ConfirmationGate) *Deletions {
	return &Deletions{gate: gate}
}

func (d *Deletions) RegisterRoutes(r *gin.RouterGroup) {
	r.DELETE("confirmations/:token", d.Cancel)
}

// Intent issues the token that a following DELETE of the same entity must carry.
func (d *Deletions) Intent(resource, subject string) gin.HandlerFunc {
	return func(c *gin.Context) {
		confirmation, err := d.gate.Request(c.Request.Context(), currentWorkspace(c), resource, c.Param("id"))
		if err != nil {
			handleError(c, err, "DeleteIntent", subject)
			return
		}
		handleSuccess(c, confirmation, http.StatusCreated)
	}
}

// confirm consumes the ?confirm= token for resource/id.
func (d *Deletions) confirm(c *gin.Context, resource, id string) error {
	return d.gate.Confirm(c.Request.Context(), currentWorkspace(c), c.Query("confirm"), resource, id)
}

func (d *Deletions) Cancel(c *gin.Context) {
	if err := d.gate.Cancel(c.Request.Context(), currentWorkspace(c), c.Param("token")); err != nil {
		handleError(c, err, "CancelConfirmation", "Confirmation")
		return
	}
	c.Status(http.StatusNoContent)
}
