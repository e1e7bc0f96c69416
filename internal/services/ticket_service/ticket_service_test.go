package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"event_backend/internal/domain/models"
	"event_backend/internal/storage"
	"event_backend/internal/transport/http/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) ListTickets(ctx context.Context, eventID *int64) ([]models.Row, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]models.Row), args.Error(1)
}

func (m *MockTicketRepository) GetTicket(ctx context.Context, id int64) (models.Row, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Row), args.Error(1)
}

func (m *MockTicketRepository) CreateTicket(ctx context.Context, ticket models.Ticket) (models.Row, error) {
	args := m.Called(ctx, ticket)
	return args.Get(0).(models.Row), args.Error(1)
}

func (m *MockTicketRepository) UpdateTicket(ctx context.Context, id int64, fields map[string]interface{}) (models.Row, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(models.Row), args.Error(1)
}

func (m *MockTicketRepository) DeleteTicket(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) ListEvents(ctx context.Context, mode string, now time.Time) ([]models.Row, error) {
	args := m.Called(ctx, mode, now)
	return args.Get(0).([]models.Row), args.Error(1)
}

func (m *MockEventRepository) GetEvent(ctx context.Context, id int64) (models.Row, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Row), args.Error(1)
}

func (m *MockEventRepository) CreateEvent(ctx context.Context, fields map[string]interface{}) (models.Row, error) {
	args := m.Called(ctx, fields)
	return args.Get(0).(models.Row), args.Error(1)
}

func (m *MockEventRepository) UpdateEvent(ctx context.Context, id int64, fields map[string]interface{}) (models.Row, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(models.Row), args.Error(1)
}

func (m *MockEventRepository) DeleteEvent(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEventRepository) EventSellable(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func validTicketRequest() dto.CreateTicketRequest {
	return dto.CreateTicketRequest{
		EventID:    dto.FlexInt(7),
		Username:   "alice",
		Email:      "alice@example.com",
		Quantity:   dto.FlexInt(2),
		TicketType: "VIP",
	}
}

func TestTicketService_CreateTicket(t *testing.T) {
	ctx := context.Background()

	createdRow := models.Row{"id": int64(1), "event_id": int64(7), "username": "alice"}

	tests := []struct {
		name      string
		req       dto.CreateTicketRequest
		mockSetup func(repo *MockTicketRepository, evts *MockEventRepository)
		wantRow   models.Row
		wantErr   error
	}{
		{
			name: "successful purchase",
			req:  validTicketRequest(),
			mockSetup: func(repo *MockTicketRepository, evts *MockEventRepository) {
				evts.On("EventSellable", ctx, int64(7)).Return(true, nil).Once()
				repo.On("CreateTicket", ctx, mock.MatchedBy(func(tk models.Ticket) bool {
					return tk.EventID == 7 && tk.Username == "alice" && tk.Quantity == 2 && tk.TicketType == "VIP"
				})).Return(createdRow, nil).Once()
			},
			wantRow: createdRow,
		},
		{
			name: "event does not exist",
			req:  validTicketRequest(),
			mockSetup: func(repo *MockTicketRepository, evts *MockEventRepository) {
				evts.On("EventSellable", ctx, int64(7)).Return(false, storage.ErrNotFound).Once()
			},
			wantErr: ErrEventNotFound,
		},
		{
			name: "event lookup failure also reads as not found",
			req:  validTicketRequest(),
			mockSetup: func(repo *MockTicketRepository, evts *MockEventRepository) {
				evts.On("EventSellable", ctx, int64(7)).Return(false, errors.New("connection refused")).Once()
			},
			wantErr: ErrEventNotFound,
		},
		{
			name: "tickets flagged unavailable",
			req:  validTicketRequest(),
			mockSetup: func(repo *MockTicketRepository, evts *MockEventRepository) {
				evts.On("EventSellable", ctx, int64(7)).Return(false, nil).Once()
			},
			wantErr: ErrTicketsUnavailable,
		},
		{
			name: "insert failure",
			req:  validTicketRequest(),
			mockSetup: func(repo *MockTicketRepository, evts *MockEventRepository) {
				evts.On("EventSellable", ctx, int64(7)).Return(true, nil).Once()
				repo.On("CreateTicket", ctx, mock.AnythingOfType("models.Ticket")).
					Return(models.Row(nil), errors.New("insert failed")).Once()
			},
			wantErr: errors.New("insert failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTicketRepository)
			mockEvents := new(MockEventRepository)
			service := NewTicketService(slog.Default(), mockRepo, mockEvents)

			tt.mockSetup(mockRepo, mockEvents)

			row, err := service.CreateTicket(ctx, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				assert.Nil(t, row)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantRow, row)
			}

			mockRepo.AssertExpectations(t)
			mockEvents.AssertExpectations(t)
		})
	}
}

func TestTicketService_CreateTicket_StampsPurchaseTime(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockTicketRepository)
	mockEvents := new(MockEventRepository)
	service := NewTicketService(slog.Default(), mockRepo, mockEvents)

	var stamped models.Ticket
	mockEvents.On("EventSellable", ctx, int64(7)).Return(true, nil).Once()
	mockRepo.On("CreateTicket", ctx, mock.AnythingOfType("models.Ticket")).
		Run(func(args mock.Arguments) {
			stamped = args.Get(1).(models.Ticket)
		}).
		Return(models.Row{"id": int64(1)}, nil).Once()

	before := time.Now().UTC()
	_, err := service.CreateTicket(ctx, validTicketRequest())
	after := time.Now().UTC()
	require.NoError(t, err)

	purchased, err := time.Parse(time.RFC3339, stamped.PurchasedDate)
	require.NoError(t, err, "purchased_date must be RFC3339")
	assert.Equal(t, time.UTC, purchased.Location())
	assert.False(t, purchased.Before(before.Truncate(time.Second)))
	assert.False(t, purchased.After(after.Add(time.Second)))
}

func TestTicketService_CreateTicket_NoInsertWhenUnavailable(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockTicketRepository)
	mockEvents := new(MockEventRepository)
	service := NewTicketService(slog.Default(), mockRepo, mockEvents)

	mockEvents.On("EventSellable", ctx, int64(7)).Return(false, nil).Once()

	_, err := service.CreateTicket(ctx, validTicketRequest())

	assert.ErrorIs(t, err, ErrTicketsUnavailable)
	mockRepo.AssertNotCalled(t, "CreateTicket", mock.Anything, mock.Anything)
}

func TestTicketService_ListTickets(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockTicketRepository)
	mockEvents := new(MockEventRepository)
	service := NewTicketService(slog.Default(), mockRepo, mockEvents)

	eventID := int64(3)
	rows := []models.Row{{"id": int64(1)}, {"id": int64(2)}}

	mockRepo.On("ListTickets", ctx, &eventID).Return(rows, nil).Once()

	got, err := service.ListTickets(ctx, &eventID)

	assert.NoError(t, err)
	assert.Equal(t, rows, got)
	mockRepo.AssertExpectations(t)
}

func TestTicketService_DeleteTicket(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockTicketRepository)
	mockEvents := new(MockEventRepository)
	service := NewTicketService(slog.Default(), mockRepo, mockEvents)

	mockRepo.On("DeleteTicket", ctx, int64(5)).Return(nil).Once()

	assert.NoError(t, service.DeleteTicket(ctx, int64(5)))
	mockRepo.AssertExpectations(t)
}
