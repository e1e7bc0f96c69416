package services

import (
	"context"
	"fmt"
	"log/slog"

	"event_backend/internal/domain/models"
	"event_backend/internal/lib/logger/sl"
	"event_backend/internal/repository"
)

type ReportService struct {
	log  *slog.Logger
	repo repository.ReportRepository
}

func NewReportService(log *slog.Logger, repo repository.ReportRepository) *ReportService {
	return &ReportService{
		log:  log,
		repo: repo,
	}
}

// Summary runs the two independent view reads and folds the per-event rows
// into counters. The two queries share only the date bounds; their result
// sets are not cross-validated.
func (s *ReportService) Summary(ctx context.Context, from, to string, eventID *int64) (*models.ReportSummary, error) {
	const op = "service.ReportService.Summary"
	log := s.log.With(slog.String("op", op))

	daily, err := s.repo.DailyTicketSales(ctx, from, to)
	if err != nil {
		log.Error("failed to read daily sales view", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	perEvent, err := s.repo.EventTicketStats(ctx, eventID, from, to)
	if err != nil {
		log.Error("failed to read event stats view", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	counters := models.ReportCounters{
		TotalEvents: len(perEvent),
	}
	for _, row := range perEvent {
		counters.TicketsSold += asInt64(row["tickets_sold"])
		counters.UniqueBuyers += asInt64(row["unique_buyers"])
	}

	return &models.ReportSummary{
		Counters: counters,
		PerEvent: perEvent,
		Daily:    daily,
	}, nil
}

// asInt64 folds a raw view cell into a counter; null or missing counts 0.
func asInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int32:
		return int64(n)
	case int:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}
