package calendar

import (
	"testing"

	"github.com/cineretro/cine-calendrier/internal/model"
)

func filterMovie(theaters ...model.ShowtimesTheater) []model.MovieWithScreeningsOneDay {
	return []model.MovieWithScreeningsOneDay{{
		Movie:             model.Movie{ID: "1", Title: "Le Samouraï", OriginalTitle: "", Directors: "Jean-Pierre Melville"},
		ShowtimesTheaters: theaters,
	}}
}

func TestFilterHourWindow(t *testing.T) {
	movies := filterMovie(model.ShowtimesTheater{
		CleanName: "champo", Zipcode: "75005",
		Screenings: []model.Screening{{Time: 19.5}, {Time: 23}},
	})
	f := DefaultFilter()
	f.MinHour, f.MaxHour = 14, 22
	out := f.Apply(movies)
	if len(out) != 1 {
		t.Fatalf("movie with one in-window screening must survive, got %d", len(out))
	}
	kept := out[0].ShowtimesTheaters[0].Screenings
	if len(kept) != 1 || kept[0].Time != 19.5 {
		t.Fatalf("only the in-window screening should remain, got %+v", kept)
	}
}

func TestFilterHourWindowIsHalfOpen(t *testing.T) {
	movies := filterMovie(model.ShowtimesTheater{
		CleanName: "champo", Zipcode: "75005",
		Screenings: []model.Screening{{Time: 22}},
	})
	f := DefaultFilter()
	f.MaxHour = 22
	if out := f.Apply(movies); len(out) != 0 {
		t.Fatalf("a screening at maxHour is out of window, got %d movies", len(out))
	}
}

func TestFilterQuartiers(t *testing.T) {
	movies := filterMovie(
		model.ShowtimesTheater{CleanName: "champo", Zipcode: "75005", Screenings: []model.Screening{{Time: 20}}},
		model.ShowtimesTheater{CleanName: "max-linder", Zipcode: "75009", Screenings: []model.Screening{{Time: 20}}},
		model.ShowtimesTheater{CleanName: "melies", Zipcode: "93100", Screenings: []model.Screening{{Time: 20}}},
	)
	f := DefaultFilter()
	f.Quartiers = []model.Quartier{model.QuartierRiveGauche}
	out := f.Apply(movies)
	if len(out) != 1 {
		t.Fatalf("got %d movies, want 1", len(out))
	}
	theaters := out[0].ShowtimesTheaters
	if len(theaters) != 1 || theaters[0].CleanName != "champo" {
		t.Fatalf("only the left-bank theater should remain, got %+v", theaters)
	}
}

func TestFilterTextDiacriticsInsensitive(t *testing.T) {
	movies := filterMovie(model.ShowtimesTheater{
		CleanName: "champo", Zipcode: "75005", Screenings: []model.Screening{{Time: 20}},
	})
	f := DefaultFilter()
	f.Text = "samourai"
	if out := f.Apply(movies); len(out) != 1 {
		t.Fatal("folded title substring must match")
	}
	f.Text = "melville"
	if out := f.Apply(movies); len(out) != 1 {
		t.Fatal("directors must match too")
	}
	f.Text = "godard"
	if out := f.Apply(movies); len(out) != 0 {
		t.Fatal("non-matching text must drop the movie")
	}
}

func TestFilterDropsEmptiedMovies(t *testing.T) {
	movies := filterMovie(model.ShowtimesTheater{
		CleanName: "melies", Zipcode: "93100", Screenings: []model.Screening{{Time: 20}},
	})
	f := DefaultFilter()
	f.Quartiers = []model.Quartier{model.QuartierRiveDroite}
	if out := f.Apply(movies); len(out) != 0 {
		t.Fatalf("movie with zero remaining screenings must disappear, got %d", len(out))
	}
}

func TestDefaultFilterKeepsEverything(t *testing.T) {
	movies := filterMovie(
		model.ShowtimesTheater{CleanName: "champo", Zipcode: "75005", Screenings: []model.Screening{{Time: 0}}},
		model.ShowtimesTheater{CleanName: "melies", Zipcode: "93100", Screenings: []model.Screening{{Time: 23.75}}},
	)
	out := DefaultFilter().Apply(movies)
	if len(out) != 1 || len(out[0].ShowtimesTheaters) != 2 {
		t.Fatalf("default filter must be a no-op, got %+v", out)
	}
}
