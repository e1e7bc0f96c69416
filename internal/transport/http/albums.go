package http

import (
	"log/slog"
	"net/http"

	"event_backend/internal/lib/logger/sl"
	"event_backend/internal/transport/http/dto"
	"event_backend/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// ListAlbums handles GET /albums?galleryId=. A non-numeric filter is
// rejected before any store call.
func (r *Routers) ListAlbums(c echo.Context) error {
	const op = "http.routers.ListAlbums"

	galleryID, ok := optionalIntQuery(c, "galleryId")
	if !ok {
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("invalid_filter", "Invalid galleryId (must be a number)"))
	}

	albums, err := r.AlbumService.ListAlbums(c.Request().Context(), galleryID)
	if err != nil {
		r.log.Error("failed to list albums", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorWithDetails("store_error", storeMessage(err)))
	}

	return c.JSON(http.StatusOK, albums)
}

func (r *Routers) GetAlbum(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("invalid_id", "Invalid id (must be a number)"))
	}

	album, err := r.AlbumService.GetAlbum(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusNotFound, notFound("album_not_found", err))
	}

	return c.JSON(http.StatusOK, album)
}

func (r *Routers) CreateAlbum(c echo.Context) error {
	const op = "http.routers.CreateAlbum"
	log := r.log.With(slog.String("op", op))

	var req dto.CreateAlbumRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("invalid_body", err.Error()))
	}
	if err := c.Validate(req); err != nil {
		log.Warn("album validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.NewValidationError(err))
	}

	album, err := r.AlbumService.CreateAlbum(c.Request().Context(), *req.GalleryID, req.ImageURL)
	if err != nil {
		log.Error("failed to create album", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorWithDetails("failed_to_create_album", storeMessage(err)))
	}

	return c.JSON(http.StatusCreated, album)
}

// BulkCreateAlbums handles POST /albums/bulk, one row per image in input
// order.
func (r *Routers) BulkCreateAlbums(c echo.Context) error {
	const op = "http.routers.BulkCreateAlbums"
	log := r.log.With(slog.String("op", op))

	var req dto.BulkCreateAlbumsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("invalid_body", err.Error()))
	}
	if err := c.Validate(req); err != nil {
		log.Warn("bulk album validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.NewValidationError(err))
	}

	albums, err := r.AlbumService.CreateAlbums(c.Request().Context(), *req.GalleryID, req.Images)
	if err != nil {
		log.Error("failed to bulk create albums", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorWithDetails("failed_to_create_albums", storeMessage(err)))
	}

	return c.JSON(http.StatusCreated, dto.BulkAlbumsResponse{
		Created: len(albums),
		Albums:  albums,
	})
}

func (r *Routers) UpdateAlbum(c echo.Context) error {
	const op = "http.routers.UpdateAlbum"

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("invalid_id", "Invalid id (must be a number)"))
	}

	var req dto.UpdateAlbumRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("invalid_body", err.Error()))
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.NewValidationError(err))
	}

	album, err := r.AlbumService.UpdateAlbum(c.Request().Context(), id, req.Fields())
	if err != nil {
		r.log.Error("failed to update album", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("store_error", storeMessage(err)))
	}

	return c.JSON(http.StatusOK, album)
}

func (r *Routers) DeleteAlbum(c echo.Context) error {
	const op = "http.routers.DeleteAlbum"

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("invalid_id", "Invalid id (must be a number)"))
	}

	if err := r.AlbumService.DeleteAlbum(c.Request().Context(), id); err != nil {
		r.log.Error("failed to delete album", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("store_error", storeMessage(err)))
	}

	return c.JSON(http.StatusOK, dto.DeleteResponse{Success: true})
}
