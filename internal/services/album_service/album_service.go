package services

import (
	"context"
	"fmt"
	"log/slog"

	"event_backend/internal/domain/models"
	"event_backend/internal/lib/logger/sl"
	"event_backend/internal/repository"
)

type AlbumService struct {
	log  *slog.Logger
	repo repository.AlbumRepository
}

func NewAlbumService(log *slog.Logger, repo repository.AlbumRepository) *AlbumService {
	return &AlbumService{
		log:  log,
		repo: repo,
	}
}

func (s *AlbumService) ListAlbums(ctx context.Context, galleryID *int64) ([]models.Row, error) {
	const op = "service.AlbumService.ListAlbums"

	rows, err := s.repo.ListAlbums(ctx, galleryID)
	if err != nil {
		s.log.Error("failed to list albums", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rows, nil
}

func (s *AlbumService) GetAlbum(ctx context.Context, id int64) (models.Row, error) {
	const op = "service.AlbumService.GetAlbum"

	row, err := s.repo.GetAlbum(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return row, nil
}

func (s *AlbumService) CreateAlbum(ctx context.Context, galleryID int64, imageURL string) (models.Row, error) {
	const op = "service.AlbumService.CreateAlbum"

	row, err := s.repo.CreateAlbum(ctx, galleryID, imageURL)
	if err != nil {
		s.log.Error("failed to create album", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return row, nil
}

// CreateAlbums bulk-inserts one album per image; the returned rows keep the
// input order.
func (s *AlbumService) CreateAlbums(ctx context.Context, galleryID int64, images []string) ([]models.Row, error) {
	const op = "service.AlbumService.CreateAlbums"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("gallery_id", galleryID),
		slog.Int("count", len(images)),
	)

	rows, err := s.repo.CreateAlbums(ctx, galleryID, images)
	if err != nil {
		log.Error("failed to bulk create albums", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("albums created")
	return rows, nil
}

func (s *AlbumService) UpdateAlbum(ctx context.Context, id int64, fields map[string]interface{}) (models.Row, error) {
	const op = "service.AlbumService.UpdateAlbum"

	row, err := s.repo.UpdateAlbum(ctx, id, fields)
	if err != nil {
		s.log.Error("failed to update album", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return row, nil
}

func (s *AlbumService) DeleteAlbum(ctx context.Context, id int64) error {
	const op = "service.AlbumService.DeleteAlbum"

	if err := s.repo.DeleteAlbum(ctx, id); err != nil {
		s.log.Error("failed to delete album", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
