package model

import (
	"net/url"
	"strconv"
	"time"
)

// EntityType says whose ledger an entry or summary row belongs to.
type EntityType string

const (
	EntityAgents  EntityType = "Agents"
	EntityTickets EntityType = "Tickets"
)

func (e EntityType) IsValid() bool {
	return e == EntityAgents || e == EntityTickets
}

type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

// LedgerEntry is one posting. Balance is the running total after the entry,
// computed by the backend.
type LedgerEntry struct {
	Ref             string          `json:"_id,omitempty"`
	EntityID        string          `json:"entityId"`
	EntityType      EntityType      `json:"entityType"`
	TransactionType TransactionType `json:"transactionType"`
	Amount          Money           `json:"amount"`
	Balance         Money           `json:"balance"`
	Date            time.Time       `json:"date"`
	Ticket          Ref             `json:"ticket,omitempty"`
	Description     string          `json:"description,omitempty"`
}

// LedgerSummary is the aggregated balance of one agent or direct customer.
type LedgerSummary struct {
	EntityID   string     `json:"entityId"`
	Name       string     `json:"name"`
	EntityType EntityType `json:"entityType"`
	Balance    Money      `json:"balance"`
}

// LedgerFilter selects a page of one entity's ledger, optionally within a date range.
type LedgerFilter struct {
	Page      int    `form:"page" json:"page,omitempty"`
	Limit     int    `form:"limit" json:"limit,omitempty"`
	StartDate string `form:"startDate" json:"startDate,omitempty"`
	EndDate   string `form:"endDate" json:"endDate,omitempty"`
}

func (f LedgerFilter) Values() url.Values {
	params := ListParams{Page: f.Page, Limit: f.Limit}.Normalize()
	values := url.Values{}
	values.Set("page", strconv.Itoa(params.Page))
	values.Set("limit", strconv.Itoa(params.Limit))
	if f.StartDate != "" {
		values.Set("startDate", f.StartDate)
	}
	if f.EndDate != "" {
		values.Set("endDate", f.EndDate)
	}
	return values
}

type EntityLedger struct {
	Ledgers    []LedgerEntry `json:"ledgers"`
	Pagination Pagination    `json:"pagination"`
}
