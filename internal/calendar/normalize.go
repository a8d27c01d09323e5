package calendar

import (
	"sort"

	"github.com/cineretro/cine-calendrier/internal/model"
)

// NormalizeTheaters deduplicates and orders one movie's theater list for
// one day.  Theaters are deduplicated by clean name with the first
// occurrence winning, which keeps the operation a pure function of input
// order without needing a merge rule.  Theaters are then sorted by clean
// name (plain byte-wise compare; clean names are pre-normalized upstream)
// and each theater's screenings are sorted ascending by time.  Only exact
// clean-name duplicates are dropped; an empty input yields an empty output.
func NormalizeTheaters(raw []model.ShowtimesTheater) []model.ShowtimesTheater {
	out := make([]model.ShowtimesTheater, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, t := range raw {
		if seen[t.CleanName] {
			continue
		}
		seen[t.CleanName] = true
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CleanName < out[j].CleanName
	})
	for i := range out {
		s := out[i].Screenings
		sort.SliceStable(s, func(a, b int) bool { return s[a].Time < s[b].Time })
	}
	return out
}

// SplitIntoRows groups screenings into fixed-size display rows, filled
// deterministically left to right.  The last row may be short.  A size of
// zero or less returns a single row with everything in it.
func SplitIntoRows(screenings []model.Screening, size int) [][]model.Screening {
	if len(screenings) == 0 {
		return nil
	}
	if size <= 0 {
		return [][]model.Screening{screenings}
	}
	rows := make([][]model.Screening, 0, (len(screenings)+size-1)/size)
	for start := 0; start < len(screenings); start += size {
		end := start + size
		if end > len(screenings) {
			end = len(screenings)
		}
		rows = append(rows, screenings[start:end])
	}
	return rows
}
