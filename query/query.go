// Package query keeps a history of past searches and serves them back as suggestions.
package query

import (
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"

	"github.com/drumtake-cli/drumtake/filesystem"
	"github.com/drumtake-cli/drumtake/key"
	"github.com/drumtake-cli/drumtake/where"
)

type record struct {
	Rank     int       `json:"rank"`
	Query    string    `json:"query"`
	LastUsed time.Time `json:"last_used"`
}

var history = gache.New[map[string]*record](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// memo caches resolved suggestion lists per normalized input for the
// lifetime of the process.
var memo = make(map[string][]string)

// Remember bumps the popularity of q in the history, creating it on first use.
func Remember(q string, weight int) error {
	q = normalize(q)

	stored, expired, err := history.Get()
	if expired || err != nil || stored == nil {
		stored = make(map[string]*record)
	}

	r, ok := stored[q]
	if !ok {
		r = &record{Query: q}
		stored[q] = r
	}
	r.Rank += weight
	r.LastUsed = time.Now()

	return history.Set(stored)
}

// Suggest returns the best historical match for a partial input, if any.
func Suggest(q string) mo.Option[string] {
	if all := SuggestMany(q); len(all) > 0 {
		return mo.Some(all[0])
	}
	return mo.None[string]()
}

// SuggestMany returns past queries fuzzy-matching the partial input,
// most popular first, most recent breaking ties.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = normalize(q)
	if prev, ok := memo[q]; ok {
		return prev
	}

	stored, expired, err := history.Get()
	if err != nil || expired || stored == nil {
		return []string{}
	}

	var matched []*record
	for _, r := range stored {
		if fuzzy.Match(q, r.Query) {
			matched = append(matched, r)
		}
	}

	slices.SortFunc(matched, func(a, b *record) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		return b.LastUsed.Compare(a.LastUsed)
	})

	suggestions := make([]string, len(matched))
	for i, r := range matched {
		suggestions[i] = r.Query
	}

	memo[q] = suggestions
	return suggestions
}

func normalize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
