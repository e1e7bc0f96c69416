package services

import (
	"context"
	"fmt"
	"log/slog"

	"event_backend/internal/domain/models"
	"event_backend/internal/lib/logger/sl"
	"event_backend/internal/repository"
)

type GalleryService struct {
	log  *slog.Logger
	repo repository.GalleryRepository
}

func NewGalleryService(log *slog.Logger, repo repository.GalleryRepository) *GalleryService {
	return &GalleryService{
		log:  log,
		repo: repo,
	}
}

// ListGalleries returns galleries with their album image URLs embedded,
// optionally filtered by event.
func (s *GalleryService) ListGalleries(ctx context.Context, eventID *int64) ([]models.Row, error) {
	const op = "service.GalleryService.ListGalleries"

	rows, err := s.repo.ListGalleries(ctx, eventID)
	if err != nil {
		s.log.Error("failed to list galleries", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rows, nil
}

func (s *GalleryService) GetGallery(ctx context.Context, id int64) (models.Row, error) {
	const op = "service.GalleryService.GetGallery"

	row, err := s.repo.GetGallery(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return row, nil
}

func (s *GalleryService) CreateGallery(ctx context.Context, fields map[string]interface{}) (models.Row, error) {
	const op = "service.GalleryService.CreateGallery"

	row, err := s.repo.CreateGallery(ctx, fields)
	if err != nil {
		s.log.Error("failed to create gallery", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("gallery created", slog.String("op", op))
	return row, nil
}

func (s *GalleryService) UpdateGallery(ctx context.Context, id int64, fields map[string]interface{}) (models.Row, error) {
	const op = "service.GalleryService.UpdateGallery"

	row, err := s.repo.UpdateGallery(ctx, id, fields)
	if err != nil {
		s.log.Error("failed to update gallery", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return row, nil
}

func (s *GalleryService) DeleteGallery(ctx context.Context, id int64) error {
	const op = "service.GalleryService.DeleteGallery"

	if err := s.repo.DeleteGallery(ctx, id); err != nil {
		s.log.Error("failed to delete gallery", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
