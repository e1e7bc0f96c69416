package http

import (
	"log/slog"
	"net/http"

	"event_backend/internal/lib/logger/sl"
	"event_backend/internal/transport/http/dto"
	"event_backend/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// ListEvents handles GET /events?mode=past|upcoming.
func (r *Routers) ListEvents(c echo.Context) error {
	const op = "http.routers.ListEvents"

	events, err := r.EventService.ListEvents(c.Request().Context(), c.QueryParam("mode"))
	if err != nil {
		r.log.Error("failed to list events", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorWithDetails("store_error", storeMessage(err)))
	}

	return c.JSON(http.StatusOK, events)
}

func (r *Routers) GetEvent(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, response.Error("event_not_found"))
	}

	event, err := r.EventService.GetEvent(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusNotFound, notFound("event_not_found", err))
	}

	return c.JSON(http.StatusOK, event)
}

// CreateEvent forwards the raw body; the store's column constraints decide
// what is acceptable.
func (r *Routers) CreateEvent(c echo.Context) error {
	const op = "http.routers.CreateEvent"

	var fields map[string]interface{}
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("invalid_body", err.Error()))
	}

	event, err := r.EventService.CreateEvent(c.Request().Context(), fields)
	if err != nil {
		r.log.Error("failed to create event", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("store_error", storeMessage(err)))
	}

	return c.JSON(http.StatusCreated, event)
}

func (r *Routers) UpdateEvent(c echo.Context) error {
	const op = "http.routers.UpdateEvent"

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("invalid_id"))
	}

	var fields map[string]interface{}
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("invalid_body", err.Error()))
	}

	event, err := r.EventService.UpdateEvent(c.Request().Context(), id, fields)
	if err != nil {
		r.log.Error("failed to update event", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("store_error", storeMessage(err)))
	}

	return c.JSON(http.StatusOK, event)
}

// DeleteEvent reports success even when the id matched nothing.
func (r *Routers) DeleteEvent(c echo.Context) error {
	const op = "http.routers.DeleteEvent"

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("invalid_id"))
	}

	if err := r.EventService.DeleteEvent(c.Request().Context(), id); err != nil {
		r.log.Error("failed to delete event", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("store_error", storeMessage(err)))
	}

	return c.JSON(http.StatusOK, dto.DeleteResponse{Success: true})
}
