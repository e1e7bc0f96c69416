package repository

import (
	"context"
	"fmt"

	"event_backend/internal/domain/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4/pgxpool"
)

const connectTable = "connect"

type ConnectRepo struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

func NewConnectRepo(db *pgxpool.Pool) *ConnectRepo {
	return &ConnectRepo{
		db: db,
		sb: newStatementBuilder(),
	}
}

// ListConnectRecords returns all feedback entries, newest first.
func (r *ConnectRepo) ListConnectRecords(ctx context.Context) ([]models.Row, error) {
	const op = "repository.ConnectRepo.ListConnectRecords"

	b := r.sb.Select("*").From(connectTable).OrderBy("created_at DESC")

	rows, err := queryMaps(ctx, r.db, connectTable, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rows, nil
}

func (r *ConnectRepo) GetConnectRecord(ctx context.Context, id int64) (models.Row, error) {
	const op = "repository.ConnectRepo.GetConnectRecord"

	b := r.sb.Select("*").From(connectTable).Where(squirrel.Eq{"id": id}).Limit(1)

	row, err := queryOneMap(ctx, r.db, connectTable, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return row, nil
}

func (r *ConnectRepo) CreateConnectRecord(ctx context.Context, rec models.ConnectRecord) (models.Row, error) {
	const op = "repository.ConnectRepo.CreateConnectRecord"

	b := r.sb.Insert(connectTable).
		Columns("full_name", "email", "contact", "country", "city", "comment").
		Values(rec.FullName, rec.Email, rec.Contact, rec.Country, rec.City, rec.Comment).
		Suffix("RETURNING *")

	row, err := queryOneMap(ctx, r.db, connectTable, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return row, nil
}

func (r *ConnectRepo) DeleteConnectRecord(ctx context.Context, id int64) error {
	const op = "repository.ConnectRepo.DeleteConnectRecord"

	b := r.sb.Delete(connectTable).Where(squirrel.Eq{"id": id})

	if err := execQuery(ctx, r.db, connectTable, b); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
