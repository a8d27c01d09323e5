package calendar

import (
	"testing"

	"github.com/cineretro/cine-calendrier/internal/model"
)

func TestNormalizeTheatersDedupeFirstWins(t *testing.T) {
	raw := []model.ShowtimesTheater{
		{Name: "Le Champo", CleanName: "champo", Zipcode: "75005", Screenings: []model.Screening{{Time: 20}}},
		{Name: "LE CHAMPO", CleanName: "champo", Zipcode: "75005", Screenings: []model.Screening{{Time: 22}}},
	}
	out := NormalizeTheaters(raw)
	if len(out) != 1 {
		t.Fatalf("got %d theaters, want 1", len(out))
	}
	// First occurrence is authoritative for every field.
	if out[0].Name != "Le Champo" || out[0].Screenings[0].Time != 20 {
		t.Fatalf("first occurrence should win, got %+v", out[0])
	}
}

func TestNormalizeTheatersSortOrder(t *testing.T) {
	raw := []model.ShowtimesTheater{
		{Name: "Le Zola", CleanName: "zola", Screenings: []model.Screening{{Time: 21.5}, {Time: 14.0}, {Time: 19.25}}},
		{Name: "Cinéma B", CleanName: "b"},
	}
	out := NormalizeTheaters(raw)
	if out[0].CleanName != "b" || out[1].CleanName != "zola" {
		t.Fatalf("theaters not ordered by clean name: %q, %q", out[0].CleanName, out[1].CleanName)
	}
	times := out[1].Screenings
	want := []float64{14.0, 19.25, 21.5}
	for i, s := range times {
		if s.Time != want[i] {
			t.Fatalf("screening %d = %v, want %v", i, s.Time, want[i])
		}
	}
}

func TestNormalizeTheatersEmptyInput(t *testing.T) {
	out := NormalizeTheaters(nil)
	if len(out) != 0 {
		t.Fatalf("empty input should yield empty output, got %d", len(out))
	}
}

func TestNormalizeTheatersKeepsZeroScreeningTheaters(t *testing.T) {
	raw := []model.ShowtimesTheater{{Name: "Vide", CleanName: "vide"}}
	out := NormalizeTheaters(raw)
	if len(out) != 1 {
		t.Fatalf("zero-screening theater should pass through, got %d entries", len(out))
	}
}

func TestSplitIntoRows(t *testing.T) {
	screenings := []model.Screening{{Time: 14}, {Time: 16}, {Time: 18}, {Time: 20}, {Time: 22}}
	rows := SplitIntoRows(screenings, 3)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if len(rows[0]) != 3 || len(rows[1]) != 2 {
		t.Fatalf("row sizes %d/%d, want 3/2", len(rows[0]), len(rows[1]))
	}
	// Left-to-right: first row starts with the first screening.
	if rows[0][0].Time != 14 || rows[1][0].Time != 20 {
		t.Fatalf("rows not filled left to right: %+v", rows)
	}
	if SplitIntoRows(nil, 3) != nil {
		t.Fatal("no screenings should yield no rows")
	}
}
