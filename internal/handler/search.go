package handler

// This file serves the search endpoint over the flat movie index.

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cineretro/cine-calendrier/internal/repository"
	"github.com/cineretro/cine-calendrier/internal/search"
)

// SearchHandler serves title/director lookups over the reduced index.
type SearchHandler struct {
	Repo *repository.ScreeningsRepo
}

// Search ranks the movie-list index against the q parameter.  An empty q
// returns an empty list rather than the whole catalog.  The tags
// parameter is accepted for forward compatibility; it does not currently
// narrow results.
func (h *SearchHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()
	query := c.QueryParam("q")

	var tags []string
	if raw := c.QueryParam("tags"); raw != "" {
		tags = strings.Split(raw, ",")
	}

	index, err := h.Repo.MovieList(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
	}
	results := search.Rank(index, query, tags)
	return c.JSON(http.StatusOK, echo.Map{"items": results})
}
