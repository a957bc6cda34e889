package validation

import (
	"testing"
	"time"

	"travel-backoffice/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func validUser() *model.UserInput {
	return &model.UserInput{
		Name:        "Sara Khan",
		Username:    "sara",
		Password:    "secret1",
		Role:        model.RoleUser,
		IsActive:    boolPtr(true),
		Permissions: []string{model.PermReadTicket, model.PermCreateTicket},
	}
}

func TestValidateUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		assert.NoError(t, ValidateUser(validUser(), false))
	})

	t.Run("Success - update keeps password", func(t *testing.T) {
		in := validUser()
		in.Password = ""

		assert.NoError(t, ValidateUser(in, true))
	})

	t.Run("Failed - short password on create", func(t *testing.T) {
		in := validUser()
		in.Password = ""

		err := ValidateUser(in, false)

		errs := fieldErrors(t, err)
		assert.Equal(t, []string{"Password must be at least 6 characters long."}, errs.Messages("password"))
	})

	t.Run("Failed - every field in form order", func(t *testing.T) {
		err := ValidateUser(&model.UserInput{Role: "Guest", Password: "abc"}, true)

		errs := fieldErrors(t, err)
		assert.Equal(t, []string{"name", "username", "password", "role", "isActive", "permissions"}, errs.Fields())
		assert.Equal(t, []string{"Invalid role selected."}, errs.Messages("role"))
		assert.Equal(t, []string{"Select at least 1 permissions."}, errs.Messages("permissions"))
		assert.Equal(t, []string{"Status is required."}, errs.Messages("isActive"))
	})

	t.Run("Failed - blank permission entry", func(t *testing.T) {
		in := validUser()
		in.Permissions = []string{model.PermReadTicket, ""}

		err := ValidateUser(in, false)

		assert.Equal(t, []string{"permissions[1]"}, fieldErrors(t, err).Fields())
	})
}

func TestValidateParty(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		err := ValidateParty(&model.PartyInput{ID: "AG-01", Name: "Blue Sky", Email: "ops@bluesky.test", Phone: "+92 300 0000000"})
		assert.NoError(t, err)
	})

	t.Run("Failed - bad email", func(t *testing.T) {
		err := ValidateParty(&model.PartyInput{ID: "AG-01", Name: "Blue Sky", Email: "not-an-email", Phone: "1"})

		errs := fieldErrors(t, err)
		assert.Equal(t, []string{"email"}, errs.Fields())
		assert.Equal(t, []string{"Invalid email address."}, errs.Messages("email"))
	})

	t.Run("Failed - empty", func(t *testing.T) {
		err := ValidateParty(&model.PartyInput{})

		errs := fieldErrors(t, err)
		assert.Equal(t, []string{"id", "name", "email", "phone"}, errs.Fields())
		assert.Equal(t, []string{"ID is required."}, errs.Messages("id"))
	})
}

func TestValidatePaymentMethod(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		err := ValidatePaymentMethod(&model.PaymentMethodInput{
			Name: "HBL Card", Type: model.PaymentMethodCard, MethodFor: model.MethodForClient,
		})
		assert.NoError(t, err)
	})

	t.Run("Failed - unknown audience", func(t *testing.T) {
		err := ValidatePaymentMethod(&model.PaymentMethodInput{
			Name: "HBL Card", Type: model.PaymentMethodCard, MethodFor: "Everyone",
		})
		assert.Equal(t, []string{"methodFor"}, fieldErrors(t, err).Fields())
	})
}

func TestValidateLogin(t *testing.T) {
	err := ValidateLogin(&model.LoginInput{Username: "sara"})

	assert.Equal(t, []string{"Password is required."}, fieldErrors(t, err).Messages("password"))
}

func TestValidatePayment(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		payment, err := ValidatePayment(&model.PaymentInput{
			EntityID:      " agent-1 ",
			EntityType:    model.EntityAgents,
			Amount:        250.75,
			PaymentMethod: "Cash",
			PaymentDate:   "2026-04-02",
		})

		require.NoError(t, err)
		assert.Equal(t, "agent-1", payment.EntityID)
		assert.True(t, payment.Amount.Equal(decimal.RequireFromString("250.75")))
		assert.Equal(t, time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC), payment.PaymentDate)
	})

	t.Run("Failed - zero amount and bad date", func(t *testing.T) {
		_, err := ValidatePayment(&model.PaymentInput{
			EntityID:      "agent-1",
			EntityType:    model.EntityAgents,
			PaymentMethod: "Cash",
			PaymentDate:   "yesterday",
		})

		errs := fieldErrors(t, err)
		assert.Equal(t, []string{"amount", "paymentDate"}, errs.Fields())
		assert.Equal(t, []string{"Amount must be greater than 0."}, errs.Messages("amount"))
	})

	t.Run("Failed - missing everything", func(t *testing.T) {
		_, err := ValidatePayment(&model.PaymentInput{})

		errs := fieldErrors(t, err)
		assert.Equal(t, []string{"entityId", "entityType", "amount", "paymentMethod", "paymentDate"}, errs.Fields())
		assert.Len(t, errs.Messages("paymentDate"), 1)
	})
}

func TestField(t *testing.T) {
	err := Field("entityId", "No ledger found for this entity.")

	errs := fieldErrors(t, err)
	assert.True(t, errs.Has("entityId"))
	assert.Contains(t, err.Error(), "entityId: No ledger found")
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Ticket number without prefix", label("ticketNumberWithoutPrefix"))
	assert.Equal(t, "PNR", label("pnr"))
	assert.Equal(t, "Name", label("name"))
}
