package model

import (
	"slices"
	"strings"
)

type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// Permission names as stored on the user record.
const (
	PermReadUser            = "Read User"
	PermCreateUser          = "Create User"
	PermEditUser            = "Edit User"
	PermDeleteUser          = "Delete User"
	PermReadTicket          = "Read Ticket"
	PermCreateTicket        = "Create Ticket"
	PermEditTicket          = "Edit Ticket"
	PermDeleteTicket        = "Delete Ticket"
	PermReadProvider        = "Read Provider"
	PermCreateProvider      = "Create Provider"
	PermEditProvider        = "Edit Provider"
	PermDeleteProvider      = "Delete Provider"
	PermReadAgent           = "Read Agent"
	PermCreateAgent         = "Create Agent"
	PermEditAgent           = "Edit Agent"
	PermDeleteAgent         = "Delete Agent"
	PermReadLedger          = "Read Ledger"
	PermReadPayment         = "Read Payment"
	PermCreatePayment       = "Create Payment"
	PermEditPayment         = "Edit Payment"
	PermDeletePayment       = "Delete Payment"
	PermReadPaymentMethod   = "Read Payment Method"
	PermCreatePaymentMethod = "Create Payment Method"
	PermEditPaymentMethod   = "Edit Payment Method"
	PermDeletePaymentMethod = "Delete Payment Method"
)

type User struct {
	Ref         string   `json:"_id,omitempty"`
	Name        string   `json:"name"`
	Username    string   `json:"username"`
	Role        Role     `json:"role"`
	IsActive    bool     `json:"isActive"`
	Permissions []string `json:"permissions"`
}

// UserInput is the user form. Password is optional on update.
type UserInput struct {
	Name        string   `json:"name" validate:"required"`
	Username    string   `json:"username" validate:"min=3"`
	Password    string   `json:"password,omitempty"`
	Role        Role     `json:"role" validate:"required,oneof=Admin User"`
	IsActive    *bool    `json:"isActive" validate:"required"`
	Permissions []string `json:"permissions" validate:"min=1,dive,required"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Principal is the logged-in user as reported by the session probe.
type Principal struct {
	Ref         string   `json:"_id"`
	Name        string   `json:"name"`
	Username    string   `json:"username"`
	Role        Role     `json:"role"`
	IsActive    bool     `json:"isActive"`
	Permissions []string `json:"permissions"`
}

func (p *Principal) HasPermission(permission string) bool {
	if p == nil {
		return false
	}
	return slices.Contains(p.Permissions, permission)
}

func (p *Principal) HasRole(role Role) bool {
	return p != nil && p.Role == role
}

func (p *Principal) IsAdmin() bool {
	return p.HasRole(RoleAdmin)
}

var modulePermissions = map[string][]string{
	"users":               {PermReadUser},
	"createuser":          {PermCreateUser},
	"edituser":            {PermEditUser},
	"deleteuser":          {PermDeleteUser},
	"tickets":             {PermReadTicket},
	"createticket":        {PermCreateTicket},
	"editticket":          {PermEditTicket},
	"deleteticket":        {PermDeleteTicket},
	"providers":           {PermReadProvider},
	"createprovider":      {PermCreateProvider},
	"editprovider":        {PermEditProvider},
	"deleteprovider":      {PermDeleteProvider},
	"agents":              {PermReadAgent},
	"createagent":         {PermCreateAgent},
	"editagent":           {PermEditAgent},
	"deleteagent":         {PermDeleteAgent},
	"ledgers":             {PermReadLedger},
	"payments":            {PermReadPayment},
	"createpayment":       {PermCreatePayment},
	"editpayment":         {PermEditPayment},
	"deletepayment":       {PermDeletePayment},
	"dropdowns":           {PermReadPaymentMethod},
	"createpaymentmethod": {PermCreatePaymentMethod},
	"editpaymentmethod":   {PermEditPaymentMethod},
	"deletepaymentmethod": {PermDeletePaymentMethod},
}

// CanAccessModule reports whether the principal may open a dashboard module.
// Modules without a permission mapping are open to any principal.
func (p *Principal) CanAccessModule(module string) bool {
	if p == nil {
		return false
	}
	required, ok := modulePermissions[strings.ToLower(module)]
	if !ok {
		return true
	}
	for _, permission := range required {
		if p.HasPermission(permission) {
			return true
		}
	}
	return false
}
