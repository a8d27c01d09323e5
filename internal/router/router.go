package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/cineretro/cine-calendrier/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers routes that do not belong to the listings API
// on the provided Echo instance.  Currently it exposes only a health
// check, used by load balancers and monitoring to verify the service is
// up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the listings endpoints.  All of them are
// unauthenticated reads; the rate-limit and any other shared middleware
// are applied on the Echo instance before this is called.
func RegisterPublic(e *echo.Echo, cal *handler.CalendarHandler, mov *handler.MovieHandler, srch *handler.SearchHandler) {
	// Weekly calendar: one record per movie with its showtimes_by_day map.
	e.GET("/v1/calendrier/semaine", cal.GetWeek)
	// Single-day calendar with quartier/hour/text filtering via query params.
	e.GET("/v1/calendrier/:date", cal.GetDay)
	// Single movie archive document by id.
	e.GET("/v1/films/:id", mov.GetMovie)
	// Reviewed movies ("coups de coeur") in publication order.
	e.GET("/v1/critiques", mov.GetReviewedMovies)
	// Title/director search over the reduced index.
	e.GET("/v1/recherche", srch.Search)
}

// RegisterAdmin registers the operational endpoints under /v1/admin.
// These are reached through the deployment's private network only; the
// service applies no authentication of its own.
func RegisterAdmin(e *echo.Echo, cal *handler.CalendarHandler, adm *handler.AdminHandler) {
	g := e.Group("/v1/admin")
	// All-films day view for an explicit collection base (per-city pages).
	g.GET("/calendrier/:date", cal.GetAdminDay)
	// Ingest hook announcing republished screening documents.
	g.POST("/screenings/published", adm.PostScreeningsPublished)
}
