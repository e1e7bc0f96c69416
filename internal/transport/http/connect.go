package http

import (
	"log/slog"
	"net/http"

	"event_backend/internal/domain/models"
	"event_backend/internal/lib/logger/sl"
	"event_backend/internal/transport/http/dto"
	"event_backend/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// ListConnectRecords returns all feedback entries, newest first.
func (r *Routers) ListConnectRecords(c echo.Context) error {
	const op = "http.routers.ListConnectRecords"

	records, err := r.ConnectService.ListConnectRecords(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list connect records", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorWithDetails("store_error", storeMessage(err)))
	}

	return c.JSON(http.StatusOK, records)
}

func (r *Routers) GetConnectRecord(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, response.Error("connect_record_not_found"))
	}

	record, err := r.ConnectService.GetConnectRecord(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusNotFound, notFound("connect_record_not_found", err))
	}

	return c.JSON(http.StatusOK, record)
}

// CreateConnectRecord takes the public form submission. Validation here is
// deliberately minimal: only fullName and email are mandatory.
func (r *Routers) CreateConnectRecord(c echo.Context) error {
	const op = "http.routers.CreateConnectRecord"
	log := r.log.With(slog.String("op", op))

	var req dto.CreateConnectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("invalid_body", err.Error()))
	}

	if req.FullName == "" || req.Email == "" {
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("missing_required_fields", "Full name and email are required."))
	}

	record, err := r.ConnectService.CreateConnectRecord(c.Request().Context(), models.ConnectRecord{
		FullName: req.FullName,
		Email:    req.Email,
		Contact:  req.Contact,
		Country:  req.Country,
		City:     req.City,
		Comment:  req.Comment,
	})
	if err != nil {
		log.Error("failed to create connect record", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("store_error", storeMessage(err)))
	}

	return c.JSON(http.StatusCreated, record)
}

func (r *Routers) DeleteConnectRecord(c echo.Context) error {
	const op = "http.routers.DeleteConnectRecord"

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("invalid_id"))
	}

	if err := r.ConnectService.DeleteConnectRecord(c.Request().Context(), id); err != nil {
		r.log.Error("failed to delete connect record", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("store_error", storeMessage(err)))
	}

	return c.JSON(http.StatusOK, dto.DeleteResponse{Success: true})
}
