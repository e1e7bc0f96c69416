package models

// Ticket is the insert payload for the tickets table. PurchasedDate is
// stamped by the service at insert time (UTC, RFC 3339), never taken from
// the client.
type Ticket struct {
	EventID       int64  `json:"event_id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	Quantity      int64  `json:"quantity"`
	TicketType    string `json:"ticket_type"`
	PurchasedDate string `json:"purchased_date"`
}
