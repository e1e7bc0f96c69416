package repository

import (
	"context"
	"fmt"

	"event_backend/internal/domain/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4/pgxpool"
)

const ticketsTable = "tickets"

type TicketRepo struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

func NewTicketRepo(db *pgxpool.Pool) *TicketRepo {
	return &TicketRepo{
		db: db,
		sb: newStatementBuilder(),
	}
}

func (r *TicketRepo) ListTickets(ctx context.Context, eventID *int64) ([]models.Row, error) {
	const op = "repository.TicketRepo.ListTickets"

	b := r.sb.Select("*").From(ticketsTable)
	if eventID != nil {
		b = b.Where(squirrel.Eq{"event_id": *eventID})
	}

	rows, err := queryMaps(ctx, r.db, ticketsTable, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rows, nil
}

func (r *TicketRepo) GetTicket(ctx context.Context, id int64) (models.Row, error) {
	const op = "repository.TicketRepo.GetTicket"

	b := r.sb.Select("*").From(ticketsTable).Where(squirrel.Eq{"id": id}).Limit(1)

	row, err := queryOneMap(ctx, r.db, ticketsTable, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return row, nil
}

func (r *TicketRepo) CreateTicket(ctx context.Context, ticket models.Ticket) (models.Row, error) {
	const op = "repository.TicketRepo.CreateTicket"

	b := r.sb.Insert(ticketsTable).
		Columns("event_id", "username", "email", "quantity", "ticket_type", "purchased_date").
		Values(ticket.EventID, ticket.Username, ticket.Email, ticket.Quantity, ticket.TicketType, ticket.PurchasedDate).
		Suffix("RETURNING *")

	row, err := queryOneMap(ctx, r.db, ticketsTable, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return row, nil
}

func (r *TicketRepo) UpdateTicket(ctx context.Context, id int64, fields map[string]interface{}) (models.Row, error) {
	const op = "repository.TicketRepo.UpdateTicket"

	b := r.sb.Update(ticketsTable).SetMap(fields).Where(squirrel.Eq{"id": id}).Suffix("RETURNING *")

	row, err := queryOneMap(ctx, r.db, ticketsTable, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return row, nil
}

func (r *TicketRepo) DeleteTicket(ctx context.Context, id int64) error {
	const op = "repository.TicketRepo.DeleteTicket"

	b := r.sb.Delete(ticketsTable).Where(squirrel.Eq{"id": id})

	if err := execQuery(ctx, r.db, ticketsTable, b); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
