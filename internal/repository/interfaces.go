package repository

import (
	"context"
	"time"

	"event_backend/internal/domain/models"
)

type EventRepository interface {
	ListEvents(ctx context.Context, mode string, now time.Time) ([]models.Row, error)
	GetEvent(ctx context.Context, id int64) (models.Row, error)
	CreateEvent(ctx context.Context, fields map[string]interface{}) (models.Row, error)
	UpdateEvent(ctx context.Context, id int64, fields map[string]interface{}) (models.Row, error)
	DeleteEvent(ctx context.Context, id int64) error
	// EventSellable reads only the id and ticket_available columns; a null
	// flag counts as not sellable.
	EventSellable(ctx context.Context, id int64) (bool, error)
}

type GalleryRepository interface {
	ListGalleries(ctx context.Context, eventID *int64) ([]models.Row, error)
	GetGallery(ctx context.Context, id int64) (models.Row, error)
	CreateGallery(ctx context.Context, fields map[string]interface{}) (models.Row, error)
	UpdateGallery(ctx context.Context, id int64, fields map[string]interface{}) (models.Row, error)
	DeleteGallery(ctx context.Context, id int64) error
}

type AlbumRepository interface {
	ListAlbums(ctx context.Context, galleryID *int64) ([]models.Row, error)
	GetAlbum(ctx context.Context, id int64) (models.Row, error)
	CreateAlbum(ctx context.Context, galleryID int64, imageURL string) (models.Row, error)
	CreateAlbums(ctx context.Context, galleryID int64, images []string) ([]models.Row, error)
	UpdateAlbum(ctx context.Context, id int64, fields map[string]interface{}) (models.Row, error)
	DeleteAlbum(ctx context.Context, id int64) error
}

type TicketRepository interface {
	ListTickets(ctx context.Context, eventID *int64) ([]models.Row, error)
	GetTicket(ctx context.Context, id int64) (models.Row, error)
	CreateTicket(ctx context.Context, ticket models.Ticket) (models.Row, error)
	UpdateTicket(ctx context.Context, id int64, fields map[string]interface{}) (models.Row, error)
	DeleteTicket(ctx context.Context, id int64) error
}

type ConnectRepository interface {
	ListConnectRecords(ctx context.Context) ([]models.Row, error)
	GetConnectRecord(ctx context.Context, id int64) (models.Row, error)
	CreateConnectRecord(ctx context.Context, rec models.ConnectRecord) (models.Row, error)
	DeleteConnectRecord(ctx context.Context, id int64) error
}

type ReportRepository interface {
	DailyTicketSales(ctx context.Context, from, to string) ([]models.Row, error)
	EventTicketStats(ctx context.Context, eventID *int64, from, to string) ([]models.Row, error)
}
