package app

import (
	"context"
	"log/slog"

	httpapp "event_backend/internal/app/http"
	"event_backend/internal/config"
	"event_backend/internal/repository"
	album "event_backend/internal/services/album_service"
	connect "event_backend/internal/services/connect_service"
	event "event_backend/internal/services/event_service"
	gallery "event_backend/internal/services/gallery_service"
	report "event_backend/internal/services/report_service"
	ticket "event_backend/internal/services/ticket_service"
	httprouters "event_backend/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server

	log  *slog.Logger
	repo *repository.Repository
}

// New wires store, services and transport. Missing store credentials are
// tolerated: the server comes up with resource routes unmounted.
func New(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	var (
		repo    *repository.Repository
		routers *httprouters.Routers
	)

	if cfg.Store.Available() {
		var err error
		repo, err = repository.NewRepository(ctx, cfg.Store.DSN)
		if err != nil {
			return nil, err
		}

		eventService := event.NewEventService(log, repo.Event)
		galleryService := gallery.NewGalleryService(log, repo.Gallery)
		albumService := album.NewAlbumService(log, repo.Album)
		ticketService := ticket.NewTicketService(log, repo.Ticket, repo.Event)
		connectService := connect.NewConnectService(log, repo.Connect)
		reportService := report.NewReportService(log, repo.Report)

		routers = httprouters.NewRouter(
			log,
			eventService,
			galleryService,
			albumService,
			ticketService,
			connectService,
			reportService,
		)
	} else {
		log.Warn("store credentials missing, starting without resource routes")
	}

	return &App{
		HTTPServer: httpapp.New(log, cfg, routers),
		log:        log,
		repo:       repo,
	}, nil
}

func (a *App) Stop() {
	if err := a.HTTPServer.Stop(); err != nil {
		a.log.Error("failed to stop http server", slog.String("error", err.Error()))
	}

	if a.repo != nil {
		a.repo.Close()
	}
}
