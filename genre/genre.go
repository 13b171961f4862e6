// Package genre matches user supplied genre names against a known genre set.
package genre

import (
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// ErrUnknown is returned for a name that matches no known genre.
type ErrUnknown struct {
	Name       string
	Suggestion string
}

func (e *ErrUnknown) Error() string {
	if e.Suggestion == "" {
		return fmt.Sprintf("unknown genre %q", e.Name)
	}
	return fmt.Sprintf("unknown genre %q, did you mean %q?", e.Name, e.Suggestion)
}

// Resolve maps name onto an element of known.
// An exact case-insensitive match wins, then the best unambiguous fuzzy match.
func Resolve(name string, known []string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("empty genre name")
	}

	if exact, ok := lo.Find(known, func(g string) bool {
		return strings.EqualFold(g, name)
	}); ok {
		return exact, nil
	}

	ranks := fuzzy.RankFindNormalizedFold(name, known)
	if len(ranks) == 1 {
		return ranks[0].Target, nil
	}

	return "", &ErrUnknown{Name: name, Suggestion: Closest(name, known)}
}

// Closest returns the known genre with the smallest edit distance to name.
func Closest(name string, known []string) string {
	if len(known) == 0 {
		return ""
	}

	lowered := strings.ToLower(name)
	return lo.MinBy(known, func(a, b string) bool {
		return levenshtein.Distance(lowered, strings.ToLower(a)) < levenshtein.Distance(lowered, strings.ToLower(b))
	})
}

// Split parses a comma separated list, dropping blanks.
func Split(list string) []string {
	return lo.FilterMap(strings.Split(list, ","), func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	})
}

// ResolveAll resolves every name. Names that are not in known are kept
// as typed when allowNew is set, so users can add genres of their own.
func ResolveAll(names, known []string, allowNew bool) ([]string, error) {
	resolved := make([]string, 0, len(names))
	for _, name := range names {
		g, err := Resolve(name, known)
		if err != nil {
			if !allowNew {
				return nil, err
			}
			g = strings.TrimSpace(name)
		}
		resolved = append(resolved, g)
	}

	return lo.Uniq(resolved), nil
}
