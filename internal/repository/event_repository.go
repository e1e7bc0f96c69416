package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"event_backend/internal/domain/models"
	"event_backend/internal/storage"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const eventsTable = "events"

type EventRepo struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

func NewEventRepo(db *pgxpool.Pool) *EventRepo {
	return &EventRepo{
		db: db,
		sb: newStatementBuilder(),
	}
}

// ListEvents returns all events, mode "past" keeps date < now descending,
// "upcoming" keeps date >= now ascending, anything else lists everything
// ascending by date.
func (r *EventRepo) ListEvents(ctx context.Context, mode string, now time.Time) ([]models.Row, error) {
	const op = "repository.EventRepo.ListEvents"

	b := r.sb.Select("*").From(eventsTable)

	switch mode {
	case "past":
		b = b.Where(squirrel.Lt{"date": now}).OrderBy("date DESC")
	case "upcoming":
		b = b.Where(squirrel.GtOrEq{"date": now}).OrderBy("date ASC")
	default:
		b = b.OrderBy("date ASC")
	}

	rows, err := queryMaps(ctx, r.db, eventsTable, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rows, nil
}

func (r *EventRepo) GetEvent(ctx context.Context, id int64) (models.Row, error) {
	const op = "repository.EventRepo.GetEvent"

	b := r.sb.Select("*").From(eventsTable).Where(squirrel.Eq{"id": id}).Limit(1)

	row, err := queryOneMap(ctx, r.db, eventsTable, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return row, nil
}

// CreateEvent forwards the raw body to the store; unknown or invalid
// columns are rejected by the store itself.
func (r *EventRepo) CreateEvent(ctx context.Context, fields map[string]interface{}) (models.Row, error) {
	const op = "repository.EventRepo.CreateEvent"

	b := r.sb.Insert(eventsTable).SetMap(fields).Suffix("RETURNING *")

	row, err := queryOneMap(ctx, r.db, eventsTable, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return row, nil
}

func (r *EventRepo) UpdateEvent(ctx context.Context, id int64, fields map[string]interface{}) (models.Row, error) {
	const op = "repository.EventRepo.UpdateEvent"

	b := r.sb.Update(eventsTable).SetMap(fields).Where(squirrel.Eq{"id": id}).Suffix("RETURNING *")

	row, err := queryOneMap(ctx, r.db, eventsTable, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return row, nil
}

// DeleteEvent is idempotent: deleting an id that matches no rows is not an
// error.
func (r *EventRepo) DeleteEvent(ctx context.Context, id int64) error {
	const op = "repository.EventRepo.DeleteEvent"

	b := r.sb.Delete(eventsTable).Where(squirrel.Eq{"id": id})

	if err := execQuery(ctx, r.db, eventsTable, b); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *EventRepo) EventSellable(ctx context.Context, id int64) (bool, error) {
	const op = "repository.EventRepo.EventSellable"

	query, args, err := r.sb.Select("id", "ticket_available").
		From(eventsTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	var (
		eventID   int64
		available *bool
	)
	err = r.db.QueryRow(ctx, query, args...).Scan(&eventID, &available)
	observe(eventsTable, err)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return available != nil && *available, nil
}
