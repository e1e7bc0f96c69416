package repository

import (
	"context"
	"fmt"

	"event_backend/internal/domain/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4/pgxpool"
)

// Reporting views are precomputed by the store and read-only here.
const (
	dailySalesView = "v_daily_ticket_sales"
	eventStatsView = "v_event_ticket_stats"
)

type ReportRepo struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

func NewReportRepo(db *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{
		db: db,
		sb: newStatementBuilder(),
	}
}

// DailyTicketSales reads the daily-sales view. Bounds are inclusive and
// optional; the view is global, so there is no event filter.
func (r *ReportRepo) DailyTicketSales(ctx context.Context, from, to string) ([]models.Row, error) {
	const op = "repository.ReportRepo.DailyTicketSales"

	b := r.sb.Select("*").From(dailySalesView)
	if from != "" {
		b = b.Where(squirrel.GtOrEq{"day": from})
	}
	if to != "" {
		b = b.Where(squirrel.LtOrEq{"day": to})
	}

	rows, err := queryMaps(ctx, r.db, dailySalesView, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rows, nil
}

func (r *ReportRepo) EventTicketStats(ctx context.Context, eventID *int64, from, to string) ([]models.Row, error) {
	const op = "repository.ReportRepo.EventTicketStats"

	b := r.sb.Select("*").From(eventStatsView)
	if eventID != nil {
		b = b.Where(squirrel.Eq{"event_id": *eventID})
	}
	if from != "" {
		b = b.Where(squirrel.GtOrEq{"event_date": from})
	}
	if to != "" {
		b = b.Where(squirrel.LtOrEq{"event_date": to})
	}

	rows, err := queryMaps(ctx, r.db, eventStatsView, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rows, nil
}
