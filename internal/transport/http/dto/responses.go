package dto

import "event_backend/internal/domain/models"

type DeleteResponse struct {
	Success bool `json:"success"`
}

type TicketCreatedResponse struct {
	Success bool       `json:"success"`
	Ticket  models.Row `json:"ticket"`
}

type BulkAlbumsResponse struct {
	Created int          `json:"created"`
	Albums  []models.Row `json:"albums"`
}
