package handler

// This file serves the archive pages: one movie's screenings document and
// the reviewed-movies list with its previous/next navigation.

import (
	"errors"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/cineretro/cine-calendrier/internal/calendar"
	"github.com/cineretro/cine-calendrier/internal/model"
	"github.com/cineretro/cine-calendrier/internal/repository"
)

var (
	errInvalidQuartier = errors.New("invalid quartier")
	errInvalidHour     = errors.New("invalid hour")
)

// MovieHandler serves single-movie and review endpoints.
type MovieHandler struct {
	Repo *repository.ScreeningsRepo
}

// movieResponse wraps a movie document with the subset of its days that
// are still upcoming and, when the movie is a reviewed one, the neighbors
// of its review in publication order.
type movieResponse struct {
	model.MovieWithScreeningsSeveralDays
	UpcomingScreenings map[string][]model.ShowtimesTheater `json:"upcoming_screenings,omitempty"`
	PreviousReview     *model.Review                       `json:"previous_review,omitempty"`
	NextReview         *model.Review                       `json:"next_review,omitempty"`
}

// upcomingDays keeps the day-keys that are today or later.  Archive
// documents span the movie's whole programming history; only the upcoming
// part is shown next to the review.
func upcomingDays(byDay map[string][]model.ShowtimesTheater) map[string][]model.ShowtimesTheater {
	upcoming := make(map[string][]model.ShowtimesTheater)
	for key, theaters := range byDay {
		day, err := calendar.ParseDayKey(key)
		if err != nil {
			continue
		}
		if calendar.IsSameOrAfterToday(day) {
			upcoming[key] = theaters
		}
	}
	return upcoming
}

// GetMovie returns one movie's archive document by id.  A missing id is
// a 404, not an error; store failures stay generic 500s.
func (h *MovieHandler) GetMovie(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	movie, err := h.Repo.MovieByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
	}

	resp := movieResponse{
		MovieWithScreeningsSeveralDays: *movie,
		UpcomingScreenings:             upcomingDays(movie.ShowtimesByDay),
	}
	if movie.ReviewDate != "" {
		// Navigation only exists between reviewed movies.
		if reviews, err := h.Repo.ReviewedMovies(ctx); err == nil {
			resp.PreviousReview, resp.NextReview = reviewNeighbors(reviews, movie.Movie)
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// GetReviewedMovies returns the reviewed-movies list ordered by review
// date, most recent first; same-day reviews order by id.
func (h *MovieHandler) GetReviewedMovies(c echo.Context) error {
	ctx := c.Request().Context()
	reviews, err := h.Repo.ReviewedMovies(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
	}
	sorted := make([]model.Review, len(reviews))
	copy(sorted, reviews)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].ReviewDate != sorted[j].ReviewDate {
			return sorted[i].ReviewDate > sorted[j].ReviewDate
		}
		return sorted[i].ID > sorted[j].ID
	})
	return c.JSON(http.StatusOK, echo.Map{"items": sorted})
}

// reviewNeighbors finds the reviews published just before and just after
// the given movie's review.  Order is (review_date, id); day-keys sort
// lexicographically, so plain string comparison is date comparison.
func reviewNeighbors(reviews []model.Review, movie model.Movie) (previous, next *model.Review) {
	for i := range reviews {
		r := reviews[i]
		if r.ID == movie.ID {
			continue
		}
		before := r.ReviewDate < movie.ReviewDate ||
			(r.ReviewDate == movie.ReviewDate && r.ID < movie.ID)
		if before {
			if previous == nil || r.ReviewDate > previous.ReviewDate ||
				(r.ReviewDate == previous.ReviewDate && r.ID > previous.ID) {
				previous = &reviews[i]
			}
		} else {
			if next == nil || r.ReviewDate < next.ReviewDate ||
				(r.ReviewDate == next.ReviewDate && r.ID < next.ID) {
				next = &reviews[i]
			}
		}
	}
	return previous, next
}
