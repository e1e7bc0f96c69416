package services

import (
	"context"
	"fmt"
	"log/slog"

	"event_backend/internal/domain/models"
	"event_backend/internal/lib/logger/sl"
	"event_backend/internal/repository"
)

type ConnectService struct {
	log  *slog.Logger
	repo repository.ConnectRepository
}

func NewConnectService(log *slog.Logger, repo repository.ConnectRepository) *ConnectService {
	return &ConnectService{
		log:  log,
		repo: repo,
	}
}

func (s *ConnectService) ListConnectRecords(ctx context.Context) ([]models.Row, error) {
	const op = "service.ConnectService.ListConnectRecords"

	rows, err := s.repo.ListConnectRecords(ctx)
	if err != nil {
		s.log.Error("failed to list connect records", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rows, nil
}

func (s *ConnectService) GetConnectRecord(ctx context.Context, id int64) (models.Row, error) {
	const op = "service.ConnectService.GetConnectRecord"

	row, err := s.repo.GetConnectRecord(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return row, nil
}

func (s *ConnectService) CreateConnectRecord(ctx context.Context, rec models.ConnectRecord) (models.Row, error) {
	const op = "service.ConnectService.CreateConnectRecord"
	log := s.log.With(slog.String("op", op))

	row, err := s.repo.CreateConnectRecord(ctx, rec)
	if err != nil {
		log.Error("failed to create connect record", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("connect record created")
	return row, nil
}

func (s *ConnectService) DeleteConnectRecord(ctx context.Context, id int64) error {
	const op = "service.ConnectService.DeleteConnectRecord"

	if err := s.repo.DeleteConnectRecord(ctx, id); err != nil {
		s.log.Error("failed to delete connect record", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
