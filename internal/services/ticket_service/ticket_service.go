package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"event_backend/internal/domain/models"
	"event_backend/internal/lib/logger/sl"
	"event_backend/internal/repository"
	"event_backend/internal/transport/http/dto"
)

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrTicketsUnavailable = errors.New("tickets are not available for this event")
)

type TicketService struct {
	log  *slog.Logger
	repo repository.TicketRepository
	evts repository.EventRepository
}

func NewTicketService(log *slog.Logger, repo repository.TicketRepository, evts repository.EventRepository) *TicketService {
	return &TicketService{
		log:  log,
		repo: repo,
		evts: evts,
	}
}

func (s *TicketService) ListTickets(ctx context.Context, eventID *int64) ([]models.Row, error) {
	const op = "service.TicketService.ListTickets"

	rows, err := s.repo.ListTickets(ctx, eventID)
	if err != nil {
		s.log.Error("failed to list tickets", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rows, nil
}

func (s *TicketService) GetTicket(ctx context.Context, id int64) (models.Row, error) {
	const op = "service.TicketService.GetTicket"

	row, err := s.repo.GetTicket(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return row, nil
}

// CreateTicket is the one cross-entity write: it reads the event's
// sellability flag, then inserts the ticket with a server-stamped purchase
// time. No transaction or lock spans the check and the insert, so a
// concurrent flip of ticket_available between the two steps can slip
// through; that window is accepted.
func (s *TicketService) CreateTicket(ctx context.Context, req dto.CreateTicketRequest) (models.Row, error) {
	const op = "service.TicketService.CreateTicket"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("event_id", req.EventID.Int64()),
	)

	available, err := s.evts.EventSellable(ctx, req.EventID.Int64())
	if err != nil {
		// a lookup failure and a missing row both mean the event cannot be
		// confirmed; the caller reports "event not found" for either
		log.Warn("event lookup failed", sl.Err(err))
		return nil, ErrEventNotFound
	}

	if !available {
		log.Info("tickets not available for event")
		return nil, ErrTicketsUnavailable
	}

	ticket := models.Ticket{
		EventID:       req.EventID.Int64(),
		Username:      req.Username,
		Email:         req.Email,
		Quantity:      req.Quantity.Int64(),
		TicketType:    req.TicketType,
		PurchasedDate: time.Now().UTC().Format(time.RFC3339),
	}

	row, err := s.repo.CreateTicket(ctx, ticket)
	if err != nil {
		log.Error("failed to create ticket", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("ticket created", slog.String("username", ticket.Username))
	return row, nil
}

func (s *TicketService) UpdateTicket(ctx context.Context, id int64, fields map[string]interface{}) (models.Row, error) {
	const op = "service.TicketService.UpdateTicket"

	row, err := s.repo.UpdateTicket(ctx, id, fields)
	if err != nil {
		s.log.Error("failed to update ticket", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return row, nil
}

func (s *TicketService) DeleteTicket(ctx context.Context, id int64) error {
	const op = "service.TicketService.DeleteTicket"

	if err := s.repo.DeleteTicket(ctx, id); err != nil {
		s.log.Error("failed to delete ticket", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
