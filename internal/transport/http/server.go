package http

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"event_backend/internal/domain/models"
	"event_backend/internal/storage"
	"event_backend/internal/transport/http/dto"
	"event_backend/internal/transport/http/dto/response"

	"github.com/jackc/pgconn"
	"github.com/labstack/echo/v4"
)

type EventService interface {
	ListEvents(ctx context.Context, mode string) ([]models.Row, error)
	GetEvent(ctx context.Context, id int64) (models.Row, error)
	CreateEvent(ctx context.Context, fields map[string]interface{}) (models.Row, error)
	UpdateEvent(ctx context.Context, id int64, fields map[string]interface{}) (models.Row, error)
	DeleteEvent(ctx context.Context, id int64) error
}

type GalleryService interface {
	ListGalleries(ctx context.Context, eventID *int64) ([]models.Row, error)
	GetGallery(ctx context.Context, id int64) (models.Row, error)
	CreateGallery(ctx context.Context, fields map[string]interface{}) (models.Row, error)
	UpdateGallery(ctx context.Context, id int64, fields map[string]interface{}) (models.Row, error)
	DeleteGallery(ctx context.Context, id int64) error
}

type AlbumService interface {
	ListAlbums(ctx context.Context, galleryID *int64) ([]models.Row, error)
	GetAlbum(ctx context.Context, id int64) (models.Row, error)
	CreateAlbum(ctx context.Context, galleryID int64, imageURL string) (models.Row, error)
	CreateAlbums(ctx context.Context, galleryID int64, images []string) ([]models.Row, error)
	UpdateAlbum(ctx context.Context, id int64, fields map[string]interface{}) (models.Row, error)
	DeleteAlbum(ctx context.Context, id int64) error
}

type TicketService interface {
	ListTickets(ctx context.Context, eventID *int64) ([]models.Row, error)
	GetTicket(ctx context.Context, id int64) (models.Row, error)
	CreateTicket(ctx context.Context, req dto.CreateTicketRequest) (models.Row, error)
	UpdateTicket(ctx context.Context, id int64, fields map[string]interface{}) (models.Row, error)
	DeleteTicket(ctx context.Context, id int64) error
}

type ConnectService interface {
	ListConnectRecords(ctx context.Context) ([]models.Row, error)
	GetConnectRecord(ctx context.Context, id int64) (models.Row, error)
	CreateConnectRecord(ctx context.Context, rec models.ConnectRecord) (models.Row, error)
	DeleteConnectRecord(ctx context.Context, id int64) error
}

type ReportService interface {
	Summary(ctx context.Context, from, to string, eventID *int64) (*models.ReportSummary, error)
}

type Routers struct {
	log            *slog.Logger
	EventService   EventService
	GalleryService GalleryService
	AlbumService   AlbumService
	TicketService  TicketService
	ConnectService ConnectService
	ReportService  ReportService
}

func NewRouter(
	log *slog.Logger,
	eventService EventService,
	galleryService GalleryService,
	albumService AlbumService,
	ticketService TicketService,
	connectService ConnectService,
	reportService ReportService,
) *Routers {
	return &Routers{
		log:            log,
		EventService:   eventService,
		GalleryService: galleryService,
		AlbumService:   albumService,
		TicketService:  ticketService,
		ConnectService: connectService,
		ReportService:  reportService,
	}
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// optionalIntQuery reads an optional numeric query filter. The second
// return is false when the parameter is present but not a number.
func optionalIntQuery(c echo.Context, name string) (*int64, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, true
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, false
	}

	return &id, true
}

// storeMessage surfaces the store's own error message when the failure
// came from the store, instead of the wrapped operation chain.
func storeMessage(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Message
	}
	return err.Error()
}

// notFound keeps plain missing-row responses free of wrap noise.
func notFound(label string, err error) response.ErrorResponse {
	if errors.Is(err, storage.ErrNotFound) {
		return response.Error(label)
	}
	return response.ErrorWithDetails(label, storeMessage(err))
}
