package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cineretro/cine-calendrier/internal/model"
)

// stubStore serves canned per-day lists and can fail a chosen day.
type stubStore struct {
	byDay map[string][]model.MovieWithScreeningsOneDay
	failOn string
}

func (s *stubStore) MoviesByDate(_ context.Context, dayKey string, _ bool, _ string) ([]model.MovieWithScreeningsOneDay, error) {
	if s.failOn != "" && dayKey == s.failOn {
		return nil, errors.New("store down")
	}
	return s.byDay[dayKey], nil
}

func testWeek() []time.Time {
	return nextMovieWeekFrom(parisDate(2025, time.September, 3))
}

func oneDayMovie(id, title string, theaters ...model.ShowtimesTheater) model.MovieWithScreeningsOneDay {
	return model.MovieWithScreeningsOneDay{
		Movie:             model.Movie{ID: id, Title: title},
		ShowtimesTheaters: theaters,
	}
}

func TestDayMoviesNormalizes(t *testing.T) {
	days := testWeek()
	store := &stubStore{byDay: map[string][]model.MovieWithScreeningsOneDay{
		DayKey(days[0]): {oneDayMovie("1", "Playtime",
			model.ShowtimesTheater{CleanName: "zola", Screenings: []model.Screening{{Time: 21}, {Time: 14}}},
			model.ShowtimesTheater{CleanName: "b"},
			model.ShowtimesTheater{CleanName: "zola", Screenings: []model.Screening{{Time: 18}}},
		)},
	}}
	movies, err := NewAggregator(store).DayMovies(context.Background(), days[0])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	theaters := movies[0].ShowtimesTheaters
	if len(theaters) != 2 || theaters[0].CleanName != "b" || theaters[1].CleanName != "zola" {
		t.Fatalf("theaters not deduplicated and sorted: %+v", theaters)
	}
	if theaters[1].Screenings[0].Time != 14 {
		t.Fatalf("screenings not sorted: %+v", theaters[1].Screenings)
	}
}

func TestDayMoviesKeepsSplitDuplicates(t *testing.T) {
	// Two documents contributing the same movie stay two entries at the
	// day level; only the week pivot collapses ids.
	days := testWeek()
	store := &stubStore{byDay: map[string][]model.MovieWithScreeningsOneDay{
		DayKey(days[0]): {oneDayMovie("1", "Playtime"), oneDayMovie("1", "Playtime")},
	}}
	movies, err := NewAggregator(store).DayMovies(context.Background(), days[0])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movies) != 2 {
		t.Fatalf("day view must not merge by id, got %d entries", len(movies))
	}
}

func TestWeekMoviesSingleDayKey(t *testing.T) {
	days := testWeek()
	store := &stubStore{byDay: map[string][]model.MovieWithScreeningsOneDay{
		DayKey(days[2]): {oneDayMovie("7", "Cléo de 5 à 7",
			model.ShowtimesTheater{CleanName: "champo", Screenings: []model.Screening{{Time: 19.5}}})},
	}}
	movies, err := NewAggregator(store).weekMovies(context.Background(), days)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movies) != 1 {
		t.Fatalf("got %d movies, want 1", len(movies))
	}
	byDay := movies[0].ShowtimesByDay
	if len(byDay) != 1 {
		t.Fatalf("got %d day keys, want exactly 1: %v", len(byDay), byDay)
	}
	if _, ok := byDay[DayKey(days[2])]; !ok {
		t.Fatalf("missing key for day 3, got %v", byDay)
	}
}

func TestWeekMoviesFirstSeenFieldsWin(t *testing.T) {
	days := testWeek()
	store := &stubStore{byDay: map[string][]model.MovieWithScreeningsOneDay{
		DayKey(days[0]): {oneDayMovie("42", "A")},
		DayKey(days[3]): {oneDayMovie("42", "A'")},
	}}
	movies, err := NewAggregator(store).weekMovies(context.Background(), days)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if movies[0].Title != "A" {
		t.Fatalf("first-seen record must be authoritative, got title %q", movies[0].Title)
	}
	if len(movies[0].ShowtimesByDay) != 2 {
		t.Fatalf("got %d day keys, want 2", len(movies[0].ShowtimesByDay))
	}
}

func TestWeekMoviesWithinDayLastWins(t *testing.T) {
	// The per-day keyBy collapses within-day duplicates with the last
	// occurrence winning, unlike the day view which keeps both.
	days := testWeek()
	first := oneDayMovie("9", "Film", model.ShowtimesTheater{CleanName: "a"})
	second := oneDayMovie("9", "Film", model.ShowtimesTheater{CleanName: "b"})
	store := &stubStore{byDay: map[string][]model.MovieWithScreeningsOneDay{
		DayKey(days[0]): {first, second},
	}}
	movies, err := NewAggregator(store).weekMovies(context.Background(), days)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	theaters := movies[0].ShowtimesByDay[DayKey(days[0])]
	if len(theaters) != 1 || theaters[0].CleanName != "b" {
		t.Fatalf("last within-day occurrence must win, got %+v", theaters)
	}
}

func TestWeekMoviesFailsWhole(t *testing.T) {
	days := testWeek()
	store := &stubStore{
		byDay: map[string][]model.MovieWithScreeningsOneDay{
			DayKey(days[0]): {oneDayMovie("1", "Playtime")},
		},
		failOn: DayKey(days[5]),
	}
	if _, err := NewAggregator(store).weekMovies(context.Background(), days); err == nil {
		t.Fatal("one failed day must fail the whole week")
	}
}

func TestWeekMoviesOrderIsFirstAppearance(t *testing.T) {
	days := testWeek()
	store := &stubStore{byDay: map[string][]model.MovieWithScreeningsOneDay{
		DayKey(days[0]): {oneDayMovie("b", "B"), oneDayMovie("a", "A")},
		DayKey(days[1]): {oneDayMovie("c", "C"), oneDayMovie("a", "A")},
	}}
	movies, err := NewAggregator(store).weekMovies(context.Background(), days)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := []string{movies[0].ID, movies[1].ID, movies[2].ID}
	want := []string{"b", "a", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order %v, want %v", got, want)
		}
	}
}
