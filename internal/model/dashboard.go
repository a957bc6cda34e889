package model

// Dashboard holds the headline figures shown on the back-office home page.
type Dashboard struct {
	TotalProfit        Money `json:"totalProfit"`
	TotalSegments      int   `json:"totalSegments"`
	TotalOperations    int   `json:"totalOperations"`
	TotalPaidTickets   int   `json:"totalPaidTickets"`
	TotalUnpaidTickets int   `json:"totalUnpaidTickets"`
}
