package service

import (
	"travel-backoffice/internal/querycache"
)

// Endpoint declares what a read provides or what a mutation invalidates.
type Endpoint struct {
	Resource    string
	Provides    []querycache.Tag
	Invalidates []querycache.Tag
}

var (
	agentWrites   = []querycache.Tag{querycache.TagAgents, querycache.TagLedgers}
	ticketWrites  = []querycache.Tag{querycache.TagTickets, querycache.TagLedgers}
	userWrites    = []querycache.Tag{querycache.TagUsers, querycache.TagCurrentUser}
	paymentWrites = []querycache.Tag{querycache.TagPayments, querycache.TagLedgers}
)

// Endpoints is the one table of tags for every cached read and every mutation.
var Endpoints = map[string]Endpoint{
	// session
	"getMe":  {Resource: "auth", Provides: []querycache.Tag{querycache.TagCurrentUser}},
	"login":  {Resource: "auth", Invalidates: []querycache.Tag{querycache.TagCurrentUser}},
	"logout": {Resource: "auth", Invalidates: []querycache.Tag{querycache.TagCurrentUser}},

	"getUsers":   {Resource: "users", Provides: []querycache.Tag{querycache.TagUsers}},
	"getUser":    {Resource: "users", Provides: []querycache.Tag{querycache.TagUsers}},
	"createUser": {Resource: "users", Invalidates: []querycache.Tag{querycache.TagUsers}},
	"updateUser": {Resource: "users", Invalidates: userWrites},
	"deleteUser": {Resource: "users", Invalidates: userWrites},

	"getAgents":   {Resource: "agents", Provides: []querycache.Tag{querycache.TagAgents}},
	"getAgent":    {Resource: "agents", Provides: []querycache.Tag{querycache.TagAgents}},
	"createAgent": {Resource: "agents", Invalidates: agentWrites},
	"updateAgent": {Resource: "agents", Invalidates: agentWrites},
	"deleteAgent": {Resource: "agents", Invalidates: agentWrites},

	"getProviders":   {Resource: "providers", Provides: []querycache.Tag{querycache.TagProviders}},
	"getProvider":    {Resource: "providers", Provides: []querycache.Tag{querycache.TagProviders}},
	"createProvider": {Resource: "providers", Invalidates: []querycache.Tag{querycache.TagProviders}},
	"updateProvider": {Resource: "providers", Invalidates: []querycache.Tag{querycache.TagProviders}},
	"deleteProvider": {Resource: "providers", Invalidates: []querycache.Tag{querycache.TagProviders}},

	"getPaymentMethods":   {Resource: "payment-methods", Provides: []querycache.Tag{querycache.TagPaymentMethods}},
	"getPaymentMethod":    {Resource: "payment-methods", Provides: []querycache.Tag{querycache.TagPaymentMethods}},
	"createPaymentMethod": {Resource: "payment-methods", Invalidates: []querycache.Tag{querycache.TagPaymentMethods}},
	"updatePaymentMethod": {Resource: "payment-methods", Invalidates: []querycache.Tag{querycache.TagPaymentMethods}},
	"deletePaymentMethod": {Resource: "payment-methods", Invalidates: []querycache.Tag{querycache.TagPaymentMethods}},

	"getTickets":    {Resource: "tickets", Provides: []querycache.Tag{querycache.TagTickets}},
	"getTicket":     {Resource: "tickets", Provides: []querycache.Tag{querycache.TagTickets}},
	"createTicket":  {Resource: "tickets", Invalidates: ticketWrites},
	"updateTicket":  {Resource: "tickets", Invalidates: ticketWrites},
	"reIssueTicket": {Resource: "tickets", Invalidates: ticketWrites},
	"deleteTicket":  {Resource: "tickets", Invalidates: ticketWrites},

	"getLedgerSummary": {Resource: "ledgers", Provides: []querycache.Tag{querycache.TagLedgers}},
	"getLedgers":       {Resource: "ledgers", Provides: []querycache.Tag{querycache.TagLedgers}},
	"getEntityLedger":  {Resource: "ledgers", Provides: []querycache.Tag{querycache.TagLedgers}},

	"getPayments":   {Resource: "payments", Provides: []querycache.Tag{querycache.TagPayments}},
	"createPayment": {Resource: "payments", Invalidates: paymentWrites},

	"getDashboard": {Resource: "dashboard", Provides: []querycache.Tag{
		querycache.TagTickets, querycache.TagLedgers, querycache.TagPayments,
	}},
}

func endpoint(name string) Endpoint {
	e, ok := Endpoints[name]
	if !ok {
		panic("service: endpoint " + name + " is not declared")
	}
	return e
}
