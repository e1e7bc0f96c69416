package http

import (
	"log/slog"
	"net/http"

	"event_backend/internal/lib/logger/sl"
	"event_backend/internal/transport/http/dto"
	"event_backend/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// ListGalleries handles GET /galleries?eventId=; rows carry their album
// image URLs under an "albums" key.
func (r *Routers) ListGalleries(c echo.Context) error {
	const op = "http.routers.ListGalleries"

	eventID, ok := optionalIntQuery(c, "eventId")
	if !ok {
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("invalid_filter", "Invalid eventId (must be a number)"))
	}

	galleries, err := r.GalleryService.ListGalleries(c.Request().Context(), eventID)
	if err != nil {
		r.log.Error("failed to list galleries", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorWithDetails("store_error", storeMessage(err)))
	}

	return c.JSON(http.StatusOK, galleries)
}

func (r *Routers) GetGallery(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, response.Error("gallery_not_found"))
	}

	gallery, err := r.GalleryService.GetGallery(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusNotFound, notFound("gallery_not_found", err))
	}

	return c.JSON(http.StatusOK, gallery)
}

func (r *Routers) CreateGallery(c echo.Context) error {
	const op = "http.routers.CreateGallery"

	var fields map[string]interface{}
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("invalid_body", err.Error()))
	}

	gallery, err := r.GalleryService.CreateGallery(c.Request().Context(), fields)
	if err != nil {
		r.log.Error("failed to create gallery", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("store_error", storeMessage(err)))
	}

	return c.JSON(http.StatusCreated, gallery)
}

func (r *Routers) UpdateGallery(c echo.Context) error {
	const op = "http.routers.UpdateGallery"

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("invalid_id"))
	}

	var fields map[string]interface{}
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("invalid_body", err.Error()))
	}

	gallery, err := r.GalleryService.UpdateGallery(c.Request().Context(), id, fields)
	if err != nil {
		r.log.Error("failed to update gallery", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("store_error", storeMessage(err)))
	}

	return c.JSON(http.StatusOK, gallery)
}

func (r *Routers) DeleteGallery(c echo.Context) error {
	const op = "http.routers.DeleteGallery"

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("invalid_id"))
	}

	if err := r.GalleryService.DeleteGallery(c.Request().Context(), id); err != nil {
		r.log.Error("failed to delete gallery", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("store_error", storeMessage(err)))
	}

	return c.JSON(http.StatusOK, dto.DeleteResponse{Success: true})
}
