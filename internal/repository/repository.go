package repository

import (
	"context"
	"fmt"

	"event_backend/internal/domain/models"
	"event_backend/internal/metrics"
	"event_backend/internal/storage"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Repository struct {
	db      *pgxpool.Pool
	Event   EventRepository
	Gallery GalleryRepository
	Album   AlbumRepository
	Ticket  TicketRepository
	Connect ConnectRepository
	Report  ReportRepository
}

func NewRepository(ctx context.Context, dsn string) (*Repository, error) {
	db, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repository{
		db:      db,
		Event:   NewEventRepo(db),
		Gallery: NewGalleryRepo(db),
		Album:   NewAlbumRepo(db),
		Ticket:  NewTicketRepo(db),
		Connect: NewConnectRepo(db),
		Report:  NewReportRepo(db),
	}, nil
}

func (r *Repository) Close() {
	r.db.Close()
}

func newStatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// rowsToMaps materializes a result set as raw rows keyed by column name.
// The service is a pass-through over the store, so responses carry whatever
// columns the store returns rather than a fixed struct shape.
func rowsToMaps(rows pgx.Rows) ([]models.Row, error) {
	defer rows.Close()

	out := []models.Row{}
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, err
		}

		fds := rows.FieldDescriptions()
		row := make(models.Row, len(fds))
		for i, fd := range fds {
			row[string(fd.Name)] = vals[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func queryMaps(ctx context.Context, db *pgxpool.Pool, table string, q squirrel.Sqlizer) ([]models.Row, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		observe(table, err)
		return nil, err
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		observe(table, err)
		return nil, err
	}

	out, err := rowsToMaps(rows)
	observe(table, err)
	return out, err
}

// queryOneMap runs the query and returns the first row, or
// storage.ErrNotFound when the result set is empty.
func queryOneMap(ctx context.Context, db *pgxpool.Pool, table string, q squirrel.Sqlizer) (models.Row, error) {
	out, err := queryMaps(ctx, db, table, q)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, storage.ErrNotFound
	}
	return out[0], nil
}

func execQuery(ctx context.Context, db *pgxpool.Pool, table string, q squirrel.Sqlizer) error {
	sql, args, err := q.ToSql()
	if err != nil {
		observe(table, err)
		return err
	}

	_, err = db.Exec(ctx, sql, args...)
	observe(table, err)
	return err
}

func observe(table string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.StoreQueriesTotal.WithLabelValues(table, outcome).Inc()
}
