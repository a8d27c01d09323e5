package calendar

import (
	"github.com/cineretro/cine-calendrier/internal/model"
	"github.com/cineretro/cine-calendrier/internal/search"
)

// Filter is the caller-owned state of a single-day calendar view.  There
// is no process-wide filter singleton; each request builds one of these
// from its parameters and passes it in.
//
// Quartiers lists the selected neighborhoods; theaters outside them are
// hidden.  MinHour and MaxHour bound screening times as the half-open
// window [MinHour, MaxHour).  Text narrows by title, original title or
// directors, case- and diacritics-insensitive.
type Filter struct {
	Quartiers []model.Quartier
	MinHour   float64
	MaxHour   float64
	Text      string
}

// DefaultFilter selects every quartier over the whole day with no text.
func DefaultFilter() Filter {
	return Filter{
		Quartiers: model.AllQuartiers,
		MinHour:   0,
		MaxHour:   24,
	}
}

// Apply returns the movies whose screening set is still non-empty after
// filtering.  Out-of-window screenings and unselected-quartier theaters
// are dropped from the returned copies without touching the input; a
// movie disappears only when nothing remains to show for it.
func (f Filter) Apply(movies []model.MovieWithScreeningsOneDay) []model.MovieWithScreeningsOneDay {
	selected := make(map[model.Quartier]bool, len(f.Quartiers))
	for _, q := range f.Quartiers {
		selected[q] = true
	}

	out := make([]model.MovieWithScreeningsOneDay, 0, len(movies))
	for _, m := range movies {
		if !f.matchesText(m.Movie) {
			continue
		}
		theaters := make([]model.ShowtimesTheater, 0, len(m.ShowtimesTheaters))
		for _, t := range m.ShowtimesTheaters {
			if !selected[model.QuartierFromZipcode(t.Zipcode)] {
				continue
			}
			kept := make([]model.Screening, 0, len(t.Screenings))
			for _, s := range t.Screenings {
				if s.Time >= f.MinHour && s.Time < f.MaxHour {
					kept = append(kept, s)
				}
			}
			if len(kept) == 0 {
				continue
			}
			t.Screenings = kept
			theaters = append(theaters, t)
		}
		if len(theaters) == 0 {
			continue
		}
		m.ShowtimesTheaters = theaters
		out = append(out, m)
	}
	return out
}

// matchesText ORs the substring match over title, original title and
// directors.  An empty filter string matches everything.
func (f Filter) matchesText(m model.Movie) bool {
	if f.Text == "" {
		return true
	}
	return search.Match(f.Text, m.Title) ||
		search.Match(f.Text, m.OriginalTitle) ||
		search.Match(f.Text, m.Directors)
}
