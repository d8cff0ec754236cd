// Package search ranks strings against a typed query.
//
// It backs the go-to palette of the terminal GUI and the "did you mean"
// suggestions for unknown navigation keys.
package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Score bands. A candidate's score falls in exactly one band, so an exact
// match always outranks a prefix match, which outranks a substring match,
// which outranks an edit-distance match.
const (
	scoreExact     = 1.0
	scorePrefix    = 0.8
	scoreSubstring = 0.6
	scoreFuzzyMax  = 0.6
	bandWidth      = 0.1
)

// DefaultMinScore drops candidates that share little more than their length with the query.
const DefaultMinScore = 0.3

// Match is one ranked candidate.
type Match[T any] struct {
	Item     T
	Text     string
	Score    float64
	Index    int // position in the input slice
	Favorite bool
}

// Ranker orders items by how well their text matches a query.
type Ranker[T any] struct {
	ToString   func(T) string
	IsFavorite func(T) bool // favourites win ties
	Limit      int          // 0 means no limit
	MinScore   float64
}

// Rank scores every item and returns the matches best first.
// An empty query matches everything and keeps the input order,
// with favourites moved to the front.
func (r Ranker[T]) Rank(query string, items []T) []Match[T] {
	matches := make([]Match[T], 0, len(items))
	for i, item := range items {
		text := r.text(item)
		score := Score(query, text)
		if score < r.MinScore {
			continue
		}
		matches = append(matches, Match[T]{
			Item:     item,
			Text:     text,
			Score:    score,
			Index:    i,
			Favorite: r.IsFavorite != nil && r.IsFavorite(item),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		if matches[i].Favorite != matches[j].Favorite {
			return matches[i].Favorite
		}
		return matches[i].Index < matches[j].Index
	})

	if r.Limit > 0 && len(matches) > r.Limit {
		matches = matches[:r.Limit]
	}
	return matches
}

func (r Ranker[T]) text(item T) string {
	if r.ToString != nil {
		return r.ToString(item)
	}
	if s, ok := any(item).(string); ok {
		return s
	}
	if s, ok := any(item).(interface{ String() string }); ok {
		return s.String()
	}
	return ""
}

// Rank is a shorthand for a Ranker with DefaultMinScore.
func Rank[T any](query string, items []T, toString func(T) string, limit int) []Match[T] {
	return Ranker[T]{
		ToString: toString,
		Limit:    limit,
		MinScore: DefaultMinScore,
	}.Rank(query, items)
}

// Closest returns up to limit candidates that look like typos of query.
// Used for suggestions, so an empty query suggests nothing.
func Closest(query string, candidates []string, limit int) []string {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	matches := Ranker[string]{Limit: limit, MinScore: 0.4}.Rank(query, candidates)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Text
	}
	return out
}

// Score rates candidate against query in [0, 1]. Comparison ignores case
// and surrounding whitespace.
func Score(query, candidate string) float64 {
	q := normalize(query)
	c := normalize(candidate)

	if q == "" {
		return scoreExact
	}
	if c == "" {
		return 0
	}
	if q == c {
		return scoreExact
	}

	ratio := float64(utf8.RuneCountInString(q)) / float64(utf8.RuneCountInString(c))
	if ratio > 1 {
		ratio = 1
	}
	if strings.HasPrefix(c, q) {
		return scorePrefix + bandWidth*ratio
	}
	if strings.Contains(c, q) {
		return scoreSubstring + bandWidth*ratio
	}

	longest := max(utf8.RuneCountInString(q), utf8.RuneCountInString(c))
	similarity := 1 - float64(levenshtein.ComputeDistance(q, c))/float64(longest)
	if similarity < 0 {
		similarity = 0
	}
	// Strictly below the substring band.
	return similarity * (scoreFuzzyMax - 0.01)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
