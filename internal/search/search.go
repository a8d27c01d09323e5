// Package search implements the diacritics-insensitive text matching and
// the relevance-ranked lookup over the flat movie index.
package search

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/cineretro/cine-calendrier/internal/model"
)

// MaxResults caps how many index entries a query may return.
const MaxResults = 50

// foldTransformer strips combining marks after NFD decomposition, so
// "Rohmer, Éric" and "rohmer, eric" fold to the same bytes.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases s and removes its diacritics.  It is the normalization
// every text comparison in the service goes through.
func Fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		// Malformed UTF-8 only; fall back to the raw string.
		folded = s
	}
	return strings.ToLower(folded)
}

// Match reports whether the folded query occurs as a substring of the
// folded target.
func Match(query, target string) bool {
	return strings.Contains(Fold(target), Fold(query))
}

// Rank filters the index by substring match against the concatenated
// directors, title and original title, then orders the matches by
// descending relevance score and truncates to MaxResults.  The sort is
// stable, so equal scores keep their index order.  An empty query is a
// no-op, not "match everything": it returns nothing.
//
// The tags argument is accepted but never narrows the result; tag state
// exists in the index without a filtering rule attached to it yet.  See
// matchesTags before assuming otherwise.
func Rank(index []model.SearchMovie, query string, tags []string) []model.SearchMovie {
	if query == "" {
		return nil
	}
	matched := make([]model.SearchMovie, 0)
	for _, m := range index {
		haystack := m.Directors + " " + m.Title + " " + m.OriginalTitle
		if Match(query, haystack) && matchesTags(m, tags) {
			matched = append(matched, m)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].RelevanceScore > matched[j].RelevanceScore
	})
	if len(matched) > MaxResults {
		matched = matched[:MaxResults]
	}
	return matched
}

// matchesTags always reports true.  Tag state flows through the query
// without a filtering rule attached to it, and tests pin that behavior;
// enabling real tag filtering is meant to be a change here and nowhere
// else.
func matchesTags(model.SearchMovie, []string) bool {
	return true
}
