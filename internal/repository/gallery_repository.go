package repository

import (
	"context"
	"fmt"

	"event_backend/internal/domain/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/lib/pq"
)

const galleriesTable = "galleries"

type GalleryRepo struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

func NewGalleryRepo(db *pgxpool.Pool) *GalleryRepo {
	return &GalleryRepo{
		db: db,
		sb: newStatementBuilder(),
	}
}

func (r *GalleryRepo) ListGalleries(ctx context.Context, eventID *int64) ([]models.Row, error) {
	const op = "repository.GalleryRepo.ListGalleries"

	b := r.sb.Select("*").From(galleriesTable)
	if eventID != nil {
		b = b.Where(squirrel.Eq{"event_id": *eventID})
	}

	galleries, err := queryMaps(ctx, r.db, galleriesTable, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.attachAlbums(ctx, galleries); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return galleries, nil
}

func (r *GalleryRepo) GetGallery(ctx context.Context, id int64) (models.Row, error) {
	const op = "repository.GalleryRepo.GetGallery"

	b := r.sb.Select("*").From(galleriesTable).Where(squirrel.Eq{"id": id}).Limit(1)

	gallery, err := queryOneMap(ctx, r.db, galleriesTable, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.attachAlbums(ctx, []models.Row{gallery}); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return gallery, nil
}

func (r *GalleryRepo) CreateGallery(ctx context.Context, fields map[string]interface{}) (models.Row, error) {
	const op = "repository.GalleryRepo.CreateGallery"

	b := r.sb.Insert(galleriesTable).SetMap(fields).Suffix("RETURNING *")

	row, err := queryOneMap(ctx, r.db, galleriesTable, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return row, nil
}

func (r *GalleryRepo) UpdateGallery(ctx context.Context, id int64, fields map[string]interface{}) (models.Row, error) {
	const op = "repository.GalleryRepo.UpdateGallery"

	b := r.sb.Update(galleriesTable).SetMap(fields).Where(squirrel.Eq{"id": id}).Suffix("RETURNING *")

	row, err := queryOneMap(ctx, r.db, galleriesTable, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return row, nil
}

func (r *GalleryRepo) DeleteGallery(ctx context.Context, id int64) error {
	const op = "repository.GalleryRepo.DeleteGallery"

	b := r.sb.Delete(galleriesTable).Where(squirrel.Eq{"id": id})

	if err := execQuery(ctx, r.db, galleriesTable, b); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// attachAlbums joins each gallery's album image URLs into the row under an
// "albums" key, mirroring the embedded shape the frontend expects.
func (r *GalleryRepo) attachAlbums(ctx context.Context, galleries []models.Row) error {
	ids := make([]int64, 0, len(galleries))
	for _, g := range galleries {
		if id, ok := rowID(g["id"]); ok {
			ids = append(ids, id)
		}
	}

	urlsByGallery := make(map[int64][]string, len(ids))
	if len(ids) > 0 {
		query, args, err := r.sb.Select("gallery_id", "image_url").
			From(albumsTable).
			Where("gallery_id = ANY(?)", pq.Array(ids)).
			OrderBy("id ASC").
			ToSql()
		if err != nil {
			return err
		}

		rows, err := r.db.Query(ctx, query, args...)
		observe(albumsTable, err)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				galleryID int64
				imageURL  string
			)
			if err := rows.Scan(&galleryID, &imageURL); err != nil {
				return err
			}
			urlsByGallery[galleryID] = append(urlsByGallery[galleryID], imageURL)
		}
		if err := rows.Err(); err != nil {
			return err
		}
	}

	for _, g := range galleries {
		albums := []models.Row{}
		if id, ok := rowID(g["id"]); ok {
			for _, url := range urlsByGallery[id] {
				albums = append(albums, models.Row{"image_url": url})
			}
		}
		g["albums"] = albums
	}

	return nil
}

// rowID normalizes the id column out of a raw row; integer width depends on
// the column type the store reports.
func rowID(v interface{}) (int64, bool) {
	switch id := v.(type) {
	case int64:
		return id, true
	case int32:
		return int64(id), true
	case int:
		return int64(id), true
	default:
		return 0, false
	}
}
