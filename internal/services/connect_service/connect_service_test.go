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

type MockConnectRepository struct {
	mock.Mock
}

func (m *MockConnectRepository) ListConnectRecords(ctx context.Context) ([]models.Row, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Row), args.Error(1)
}

func (m *MockConnectRepository) GetConnectRecord(ctx context.Context, id int64) (models.Row, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Row), args.Error(1)
}

func (m *MockConnectRepository) CreateConnectRecord(ctx context.Context, rec models.ConnectRecord) (models.Row, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(models.Row), args.Error(1)
}

func (m *MockConnectRepository) DeleteConnectRecord(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestConnectService_CreateConnectRecord(t *testing.T) {
	ctx := context.Background()

	rec := models.ConnectRecord{
		FullName: "Alice Doe",
		Email:    "alice@example.com",
		Country:  "NL",
	}
	created := models.Row{"id": int64(1), "full_name": "Alice Doe"}

	t.Run("record is forwarded unchanged", func(t *testing.T) {
		mockRepo := new(MockConnectRepository)
		service := NewConnectService(slog.Default(), mockRepo)

		mockRepo.On("CreateConnectRecord", ctx, rec).Return(created, nil).Once()

		got, err := service.CreateConnectRecord(ctx, rec)

		require.NoError(t, err)
		assert.Equal(t, created, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(MockConnectRepository)
		service := NewConnectService(slog.Default(), mockRepo)

		mockRepo.On("CreateConnectRecord", ctx, rec).
			Return(models.Row(nil), errors.New("insert failed")).Once()

		got, err := service.CreateConnectRecord(ctx, rec)

		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestConnectService_ListConnectRecords(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockConnectRepository)
	service := NewConnectService(slog.Default(), mockRepo)

	rows := []models.Row{{"id": int64(2)}, {"id": int64(1)}}
	mockRepo.On("ListConnectRecords", ctx).Return(rows, nil).Once()

	got, err := service.ListConnectRecords(ctx)

	require.NoError(t, err)
	assert.Equal(t, rows, got)
}
