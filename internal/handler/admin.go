package handler

// This file holds the admin surface: the ingest hook that announces
// republished screening documents on the broker so caches refresh ahead
// of their TTL.

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cineretro/cine-calendrier/internal/queue"
	queue_publisher "github.com/cineretro/cine-calendrier/internal/service"
)

// AdminHandler exposes operational endpoints.  The admin routes sit on a
// separate path prefix fronted by the deployment's network controls; the
// service itself is unauthenticated.
type AdminHandler struct{}

// screeningsPublishedRequest mirrors what the ingest pipeline knows when
// it finishes a publish run.
type screeningsPublishedRequest struct {
	CollectionBase string `json:"collection_base"`
	AllMovies      bool   `json:"all_movies"`
	Date           string `json:"date"`
	MovieCount     int    `json:"movie_count"`
}

// PostScreeningsPublished publishes a screenings.published event.  A
// broker failure is reported as a 502 so the ingest pipeline can retry;
// nothing here touches the store.
func (h *AdminHandler) PostScreeningsPublished(c echo.Context) error {
	var req screeningsPublishedRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ev := queue.ScreeningsPublishedEvent{
		CollectionBase: req.CollectionBase,
		AllMovies:      req.AllMovies,
		Date:           req.Date,
		MovieCount:     req.MovieCount,
		PublishedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := queue_publisher.PublishScreeningsPublished(c.Request().Context(), ev); err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "broker unavailable"})
	}
	return c.NoContent(http.StatusAccepted)
}
