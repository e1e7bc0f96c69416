package http

import (
	"errors"
	"log/slog"
	"net/http"

	"event_backend/internal/lib/logger/sl"
	ticket "event_backend/internal/services/ticket_service"
	"event_backend/internal/transport/http/dto"
	"event_backend/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

func (r *Routers) ListTickets(c echo.Context) error {
	const op = "http.routers.ListTickets"

	eventID, ok := optionalIntQuery(c, "eventId")
	if !ok {
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("invalid_filter", "Invalid eventId (must be a number)"))
	}

	tickets, err := r.TicketService.ListTickets(c.Request().Context(), eventID)
	if err != nil {
		r.log.Error("failed to list tickets", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorWithDetails("store_error", storeMessage(err)))
	}

	return c.JSON(http.StatusOK, tickets)
}

func (r *Routers) GetTicket(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, response.Error("ticket_not_found"))
	}

	tkt, err := r.TicketService.GetTicket(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusNotFound, notFound("ticket_not_found", err))
	}

	return c.JSON(http.StatusOK, tkt)
}

// CreateTicket handles POST /tickets: schema validation, then the
// check-then-insert against the referenced event. Validation failures
// never reach the store.
func (r *Routers) CreateTicket(c echo.Context) error {
	const op = "http.routers.CreateTicket"
	log := r.log.With(slog.String("op", op))

	var req dto.CreateTicketRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("invalid_body", err.Error()))
	}
	if err := c.Validate(req); err != nil {
		log.Warn("ticket validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.NewValidationError(err))
	}

	tkt, err := r.TicketService.CreateTicket(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ticket.ErrEventNotFound):
			return c.JSON(http.StatusNotFound, response.ErrorWithDetails("event_not_found", "Event not found"))
		case errors.Is(err, ticket.ErrTicketsUnavailable):
			return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("tickets_unavailable", "Tickets are not available for this event"))
		default:
			log.Error("failed to create ticket", sl.Err(err))
			return c.JSON(http.StatusInternalServerError, response.ErrorWithDetails("failed_to_create_ticket", storeMessage(err)))
		}
	}

	return c.JSON(http.StatusCreated, dto.TicketCreatedResponse{
		Success: true,
		Ticket:  tkt,
	})
}

func (r *Routers) UpdateTicket(c echo.Context) error {
	const op = "http.routers.UpdateTicket"

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("invalid_id"))
	}

	var fields map[string]interface{}
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("invalid_body", err.Error()))
	}

	tkt, err := r.TicketService.UpdateTicket(c.Request().Context(), id, fields)
	if err != nil {
		r.log.Error("failed to update ticket", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("store_error", storeMessage(err)))
	}

	return c.JSON(http.StatusOK, tkt)
}

func (r *Routers) DeleteTicket(c echo.Context) error {
	const op = "http.routers.DeleteTicket"

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("invalid_id"))
	}

	if err := r.TicketService.DeleteTicket(c.Request().Context(), id); err != nil {
		r.log.Error("failed to delete ticket", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorWithDetails("store_error", storeMessage(err)))
	}

	return c.JSON(http.StatusOK, dto.DeleteResponse{Success: true})
}
