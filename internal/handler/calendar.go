// Package handler exposes the HTTP surface of the listings API.  This
// file maps calendar URLs onto the aggregation pipeline: the weekly view,
// the filtered single-day view and the per-city admin day view.  Handlers
// stay thin; date parsing and filter construction happen here, everything
// else in internal/calendar.
package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cineretro/cine-calendrier/internal/calendar"
	"github.com/cineretro/cine-calendrier/internal/model"
)

// CalendarHandler serves the day and week calendar views.
type CalendarHandler struct {
	Agg *calendar.Aggregator // aggregation pipeline over the screenings store
}

// GetWeek returns one record per movie showing during the current movie
// week, with a showtimes_by_day map keyed by day.
func (h *CalendarHandler) GetWeek(c echo.Context) error {
	ctx := c.Request().Context()
	movies, err := h.Agg.WeekMovies(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": movies})
}

// GetDay returns the filtered movie list for one calendar day.  The date
// path parameter must be a canonical YYYY-MM-DD key; quartiers, minHour,
// maxHour and filtre query parameters narrow the result.
func (h *CalendarHandler) GetDay(c echo.Context) error {
	ctx := c.Request().Context()
	date, err := calendar.ParseDayKey(c.Param("date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date"})
	}
	filter, err := filterFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	movies, err := h.Agg.DayMovies(ctx, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": filter.Apply(movies), "date": calendar.DayKey(date)})
}

// GetAdminDay is the all-films day view used by the per-city admin pages.
// It accepts an explicit collection base and the -all toggle, and applies
// no filters.
func (h *CalendarHandler) GetAdminDay(c echo.Context) error {
	ctx := c.Request().Context()
	date, err := calendar.ParseDayKey(c.Param("date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date"})
	}
	allMovies := c.QueryParam("all") == "true"
	base := c.QueryParam("base")

	movies, err := h.Agg.DayMoviesIn(ctx, date, allMovies, base)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": movies, "date": calendar.DayKey(date)})
}

// filterFromQuery builds the caller-owned calendar filter from query
// parameters.  Absent parameters keep the defaults: every quartier, the
// whole day, no text.
func filterFromQuery(c echo.Context) (calendar.Filter, error) {
	f := calendar.DefaultFilter()

	if raw := c.QueryParam("quartiers"); raw != "" {
		quartiers := make([]model.Quartier, 0, 3)
		for _, part := range strings.Split(raw, ",") {
			q, ok := model.ParseQuartier(strings.TrimSpace(part))
			if !ok {
				return f, errInvalidQuartier
			}
			quartiers = append(quartiers, q)
		}
		f.Quartiers = quartiers
	}
	if raw := c.QueryParam("minHour"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, errInvalidHour
		}
		f.MinHour = v
	}
	if raw := c.QueryParam("maxHour"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, errInvalidHour
		}
		f.MaxHour = v
	}
	f.Text = c.QueryParam("filtre")
	return f, nil
}
