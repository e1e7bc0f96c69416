package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"event_backend/internal/domain/models"
	"event_backend/internal/lib/logger/sl"
	"event_backend/internal/repository"
)

type EventService struct {
	log  *slog.Logger
	repo repository.EventRepository
}

func NewEventService(log *slog.Logger, repo repository.EventRepository) *EventService {
	return &EventService{
		log:  log,
		repo: repo,
	}
}

// ListEvents lists events by mode: "past" (date before now, newest first),
// "upcoming" (date from now on, soonest first). Any other mode lists all
// events ascending by date.
func (s *EventService) ListEvents(ctx context.Context, mode string) ([]models.Row, error) {
	const op = "service.EventService.ListEvents"

	switch mode {
	case "past", "upcoming":
	default:
		mode = ""
	}

	rows, err := s.repo.ListEvents(ctx, mode, time.Now().UTC())
	if err != nil {
		s.log.Error("failed to list events", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rows, nil
}

func (s *EventService) GetEvent(ctx context.Context, id int64) (models.Row, error) {
	const op = "service.EventService.GetEvent"

	row, err := s.repo.GetEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return row, nil
}

func (s *EventService) CreateEvent(ctx context.Context, fields map[string]interface{}) (models.Row, error) {
	const op = "service.EventService.CreateEvent"

	row, err := s.repo.CreateEvent(ctx, fields)
	if err != nil {
		s.log.Error("failed to create event", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("event created", slog.String("op", op))
	return row, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, id int64, fields map[string]interface{}) (models.Row, error) {
	const op = "service.EventService.UpdateEvent"

	row, err := s.repo.UpdateEvent(ctx, id, fields)
	if err != nil {
		s.log.Error("failed to update event", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return row, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id int64) error {
	const op = "service.EventService.DeleteEvent"

	if err := s.repo.DeleteEvent(ctx, id); err != nil {
		s.log.Error("failed to delete event", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
