package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"event_backend/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAlbumRepository struct {
	mock.Mock
}

func (m *MockAlbumRepository) ListAlbums(ctx context.Context, galleryID *int64) ([]models.Row, error) {
	args := m.Called(ctx, galleryID)
	return args.Get(0).([]models.Row), args.Error(1)
}

func (m *MockAlbumRepository) GetAlbum(ctx context.Context, id int64) (models.Row, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Row), args.Error(1)
}

func (m *MockAlbumRepository) CreateAlbum(ctx context.Context, galleryID int64, imageURL string) (models.Row, error) {
	args := m.Called(ctx, galleryID, imageURL)
	return args.Get(0).(models.Row), args.Error(1)
}

func (m *MockAlbumRepository) CreateAlbums(ctx context.Context, galleryID int64, images []string) ([]models.Row, error) {
	args := m.Called(ctx, galleryID, images)
	return args.Get(0).([]models.Row), args.Error(1)
}

func (m *MockAlbumRepository) UpdateAlbum(ctx context.Context, id int64, fields map[string]interface{}) (models.Row, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(models.Row), args.Error(1)
}

func (m *MockAlbumRepository) DeleteAlbum(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestAlbumService_CreateAlbums(t *testing.T) {
	ctx := context.Background()

	images := []string{"a.jpg", "b.jpg"}
	rows := []models.Row{
		{"id": int64(1), "image_url": "a.jpg"},
		{"id": int64(2), "image_url": "b.jpg"},
	}

	tests := []struct {
		name      string
		mockSetup func(repo *MockAlbumRepository)
		wantRows  []models.Row
		wantErr   string
	}{
		{
			name: "rows come back in input order",
			mockSetup: func(repo *MockAlbumRepository) {
				repo.On("CreateAlbums", ctx, int64(5), images).Return(rows, nil).Once()
			},
			wantRows: rows,
		},
		{
			name: "repository error",
			mockSetup: func(repo *MockAlbumRepository) {
				repo.On("CreateAlbums", ctx, int64(5), images).
					Return([]models.Row(nil), errors.New("insert failed")).Once()
			},
			wantErr: "insert failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAlbumRepository)
			service := NewAlbumService(slog.Default(), mockRepo)

			tt.mockSetup(mockRepo)

			got, err := service.CreateAlbums(ctx, int64(5), images)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantRows, got)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAlbumService_ListAlbums(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAlbumRepository)
	service := NewAlbumService(slog.Default(), mockRepo)

	galleryID := int64(3)
	rows := []models.Row{{"id": int64(1)}}

	mockRepo.On("ListAlbums", ctx, &galleryID).Return(rows, nil).Once()

	got, err := service.ListAlbums(ctx, &galleryID)

	require.NoError(t, err)
	assert.Equal(t, rows, got)
	mockRepo.AssertExpectations(t)
}

func TestAlbumService_UpdateAlbum(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAlbumRepository)
	service := NewAlbumService(slog.Default(), mockRepo)

	fields := map[string]interface{}{"image_url": "new.jpg"}
	updated := models.Row{"id": int64(4), "image_url": "new.jpg"}

	mockRepo.On("UpdateAlbum", ctx, int64(4), fields).Return(updated, nil).Once()

	got, err := service.UpdateAlbum(ctx, int64(4), fields)

	require.NoError(t, err)
	assert.Equal(t, updated, got)
}
