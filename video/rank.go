package video

import (
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"golang.org/x/exp/slices"
)

// normalizedTitle returns a lowercased, trimmed string for consistent comparison.
func normalizedTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// Rank orders tracks by how closely their titles match the query,
// best match first. The input slice is not modified.
func Rank(query string, tracks []*Track) []*Track {
	query = normalizedTitle(query)

	ranked := make([]*Track, len(tracks))
	copy(ranked, tracks)

	slices.SortStableFunc(ranked, func(a, b *Track) int {
		da := levenshtein.Distance(query, normalizedTitle(a.Title))
		db := levenshtein.Distance(query, normalizedTitle(b.Title))
		return da - db
	})

	return ranked
}

// Closest returns the track whose title is the closest match to the query,
// or nil when the slice is empty.
func Closest(query string, tracks []*Track) *Track {
	if len(tracks) == 0 {
		return nil
	}
	return Rank(query, tracks)[0]
}
