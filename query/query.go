// Package query remembers the keywords a user searched and suggests them back.
package query

import (
	"strings"
	"sync"

	"github.com/AvaAvarai/IndimensionalYoutube/filesystem"
	"github.com/AvaAvarai/IndimensionalYoutube/key"
	"github.com/AvaAvarai/IndimensionalYoutube/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type keywordRecord struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var keywordCache = gache.New[map[string]*keywordRecord](
	&gache.Options{
		Path:       where.Keywords(),
		FileSystem: &filesystem.GacheFs{},
	},
)

var (
	mu              sync.Mutex
	suggestionCache = make(map[string][]*keywordRecord)
)

// Remember records a keyword or raises its rank by weight.
// Nothing is stored for blank keywords or when suggestions are disabled.
func Remember(q string, weight int) error {
	q = sanitize(q)
	if q == "" || !viper.GetBool(key.SearchKeywordSuggestions) {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	cached, expired, err := keywordCache.Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*keywordRecord)
	}

	if record, ok := cached[q]; ok {
		record.Rank += weight
	} else {
		cached[q] = &keywordRecord{Rank: weight, Query: q}
	}

	clear(suggestionCache)
	return keywordCache.Set(cached)
}

// Suggest returns the best remembered keyword for a partial input.
func Suggest(q string) mo.Option[string] {
	suggestions := SuggestMany(q)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns remembered keywords fuzzily matching q, highest rank first.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchKeywordSuggestions) {
		return []string{}
	}

	q = sanitize(q)

	mu.Lock()
	defer mu.Unlock()

	records, ok := suggestionCache[q]
	if !ok {
		cached, expired, err := keywordCache.Get()
		if err != nil || expired || cached == nil {
			return []string{}
		}

		for _, record := range cached {
			if fuzzy.Match(q, record.Query) {
				records = append(records, record)
			}
		}

		slices.SortFunc(records, func(a, b *keywordRecord) int {
			if a.Rank != b.Rank {
				return b.Rank - a.Rank
			}
			return strings.Compare(a.Query, b.Query)
		})

		suggestionCache[q] = records
	}

	return lo.Map(records, func(r *keywordRecord, _ int) string {
		return r.Query
	})
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
