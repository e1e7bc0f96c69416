package http

import (
	"log/slog"
	"net/http"

	"event_backend/internal/lib/logger/sl"
	"event_backend/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// ReportSummary aggregates ticket sales over an optional date range and
// optional event filter. Bad filters fail fast before any store work.
func (r *Routers) ReportSummary(c echo.Context) error {
	const op = "http.routers.ReportSummary"
	log := r.log.With(slog.String("op", op))

	eventID, ok := optionalIntQuery(c, "eventId")
	if !ok {
		return c.JSON(http.StatusBadRequest, response.Error("Invalid eventId (must be a number)"))
	}

	from := c.QueryParam("from")
	to := c.QueryParam("to")

	summary, err := r.ReportService.Summary(c.Request().Context(), from, to, eventID)
	if err != nil {
		log.Error("failed to build report summary", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorWithDetails("report_failed", storeMessage(err)))
	}

	return c.JSON(http.StatusOK, summary)
}
