package calendar

import (
	"context"
	"sync"
	"time"

	"github.com/cineretro/cine-calendrier/internal/model"
)

// ScreeningsStore is the read collaborator the aggregators fetch from.
// MoviesByDate returns the concatenated movie lists of every store
// document whose date equals the given day-key.  An empty collectionBase
// selects the default collection; allMovies switches to the "-all"
// variant of the collection.  Errors propagate unretried.
type ScreeningsStore interface {
	MoviesByDate(ctx context.Context, dayKey string, allMovies bool, collectionBase string) ([]model.MovieWithScreeningsOneDay, error)
}

// Aggregator turns raw per-day screening documents into the day and week
// calendar views.  It holds no state besides the store handle; every call
// builds its result from scratch.
type Aggregator struct {
	store ScreeningsStore
}

// NewAggregator constructs an Aggregator over the given store.
func NewAggregator(store ScreeningsStore) *Aggregator {
	return &Aggregator{store: store}
}

// DayMovies returns the movies showing on the given date, each with its
// theater list normalized.  The store may return the same movie split
// across two documents for one day; those entries stay separate here, the
// week pivot is where ids collapse.
func (a *Aggregator) DayMovies(ctx context.Context, date time.Time) ([]model.MovieWithScreeningsOneDay, error) {
	return a.dayMovies(ctx, date, false, "")
}

// DayMoviesIn is DayMovies against an explicit collection variant, used
// by the per-city admin views.
func (a *Aggregator) DayMoviesIn(ctx context.Context, date time.Time, allMovies bool, collectionBase string) ([]model.MovieWithScreeningsOneDay, error) {
	return a.dayMovies(ctx, date, allMovies, collectionBase)
}

func (a *Aggregator) dayMovies(ctx context.Context, date time.Time, allMovies bool, collectionBase string) ([]model.MovieWithScreeningsOneDay, error) {
	movies, err := a.store.MoviesByDate(ctx, DayKey(date), allMovies, collectionBase)
	if err != nil {
		return nil, err
	}
	for i := range movies {
		movies[i].ShowtimesTheaters = NormalizeTheaters(movies[i].ShowtimesTheaters)
	}
	return movies, nil
}

// WeekMovies aggregates the current movie week into one record per movie,
// carrying a day-key → theater list map for the days it shows.
func (a *Aggregator) WeekMovies(ctx context.Context) ([]model.MovieWithScreeningsSeveralDays, error) {
	return a.weekMovies(ctx, NextMovieWeek())
}

// weekMovies fetches all days concurrently and awaits them all; the seven
// reads are independent so completion order cannot affect the pivot, which
// only starts once every fetch has resolved.  If any day fails the whole
// week fails, favoring visibility over a silently partial calendar.
func (a *Aggregator) weekMovies(ctx context.Context, days []time.Time) ([]model.MovieWithScreeningsSeveralDays, error) {
	lists := make([][]model.MovieWithScreeningsOneDay, len(days))
	errs := make([]error, len(days))

	var wg sync.WaitGroup
	for i, day := range days {
		wg.Add(1)
		go func(i int, day time.Time) {
			defer wg.Done()
			lists[i], errs[i] = a.DayMovies(ctx, day)
		}(i, day)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return pivotWeek(days, lists), nil
}

// pivotWeek reshapes per-day movie lists into per-movie day maps.  Within
// one day the list is keyed by id with the last occurrence winning (ids
// should be unique per day; this collapses upstream splits).  Across days
// the first-seen record is authoritative for every non-screening field,
// later days never overwrite them.  Output order is first appearance:
// week order, then input order within the day.
func pivotWeek(days []time.Time, lists [][]model.MovieWithScreeningsOneDay) []model.MovieWithScreeningsSeveralDays {
	byDay := make([]map[string]model.MovieWithScreeningsOneDay, len(days))
	var order []string
	inOrder := make(map[string]bool)
	for i, list := range lists {
		byDay[i] = make(map[string]model.MovieWithScreeningsOneDay, len(list))
		for _, m := range list {
			byDay[i][m.ID] = m
			if !inOrder[m.ID] {
				inOrder[m.ID] = true
				order = append(order, m.ID)
			}
		}
	}

	out := make([]model.MovieWithScreeningsSeveralDays, 0, len(order))
	for _, id := range order {
		var merged model.MovieWithScreeningsSeveralDays
		for i, day := range days {
			onDay, ok := byDay[i][id]
			if !ok {
				continue
			}
			if merged.ShowtimesByDay == nil {
				merged.Movie = onDay.Movie
				merged.ShowtimesByDay = make(map[string][]model.ShowtimesTheater)
			}
			merged.ShowtimesByDay[DayKey(day)] = onDay.ShowtimesTheaters
		}
		out = append(out, merged)
	}
	return out
}
