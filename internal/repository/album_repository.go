package repository

import (
	"context"
	"fmt"

	"event_backend/internal/domain/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4/pgxpool"
)

const albumsTable = "albums"

type AlbumRepo struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

func NewAlbumRepo(db *pgxpool.Pool) *AlbumRepo {
	return &AlbumRepo{
		db: db,
		sb: newStatementBuilder(),
	}
}

func (r *AlbumRepo) ListAlbums(ctx context.Context, galleryID *int64) ([]models.Row, error) {
	const op = "repository.AlbumRepo.ListAlbums"

	b := r.sb.Select("*").From(albumsTable)
	if galleryID != nil {
		b = b.Where(squirrel.Eq{"gallery_id": *galleryID})
	}

	rows, err := queryMaps(ctx, r.db, albumsTable, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rows, nil
}

func (r *AlbumRepo) GetAlbum(ctx context.Context, id int64) (models.Row, error) {
	const op = "repository.AlbumRepo.GetAlbum"

	b := r.sb.Select("*").From(albumsTable).Where(squirrel.Eq{"id": id}).Limit(1)

	row, err := queryOneMap(ctx, r.db, albumsTable, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return row, nil
}

func (r *AlbumRepo) CreateAlbum(ctx context.Context, galleryID int64, imageURL string) (models.Row, error) {
	const op = "repository.AlbumRepo.CreateAlbum"

	b := r.sb.Insert(albumsTable).
		Columns("gallery_id", "image_url").
		Values(galleryID, imageURL).
		Suffix("RETURNING *")

	row, err := queryOneMap(ctx, r.db, albumsTable, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return row, nil
}

// CreateAlbums bulk-inserts one row per image, preserving input order in
// the returned rows.
func (r *AlbumRepo) CreateAlbums(ctx context.Context, galleryID int64, images []string) ([]models.Row, error) {
	const op = "repository.AlbumRepo.CreateAlbums"

	b := r.sb.Insert(albumsTable).Columns("gallery_id", "image_url")
	for _, img := range images {
		b = b.Values(galleryID, img)
	}
	b = b.Suffix("RETURNING *")

	rows, err := queryMaps(ctx, r.db, albumsTable, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rows, nil
}

func (r *AlbumRepo) UpdateAlbum(ctx context.Context, id int64, fields map[string]interface{}) (models.Row, error) {
	const op = "repository.AlbumRepo.UpdateAlbum"

	b := r.sb.Update(albumsTable).SetMap(fields).Where(squirrel.Eq{"id": id}).Suffix("RETURNING *")

	row, err := queryOneMap(ctx, r.db, albumsTable, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return row, nil
}

func (r *AlbumRepo) DeleteAlbum(ctx context.Context, id int64) error {
	const op = "repository.AlbumRepo.DeleteAlbum"

	b := r.sb.Delete(albumsTable).Where(squirrel.Eq{"id": id})

	if err := execQuery(ctx, r.db, albumsTable, b); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
