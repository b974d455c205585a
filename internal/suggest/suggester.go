package suggest

import (
	"sort"
	"strings"
)

// Suggestion is a vocabulary word close to a missing term.
type Suggestion struct {
	Term     string
	Distance int
	Score    float64
}

// Suggester finds vocabulary words within a small edit distance of a term.
// It is read-only after construction and safe for concurrent use.
type Suggester struct {
	terms          []string
	maxDistance    int
	maxSuggestions int
}

// Option configures a Suggester.
type Option func(*Suggester)

// WithMaxDistance sets the maximum edit distance for suggestions.
func WithMaxDistance(d int) Option {
	return func(s *Suggester) {
		if d > 0 {
			s.maxDistance = d
		}
	}
}

// WithMaxSuggestions sets the maximum number of suggestions per term.
func WithMaxSuggestions(n int) Option {
	return func(s *Suggester) {
		if n > 0 {
			s.maxSuggestions = n
		}
	}
}

// NewSuggester creates a Suggester over the given vocabulary terms.
// Terms are lowercased and copied.
func NewSuggester(terms []string, opts ...Option) *Suggester {
	s := &Suggester{
		terms:          make([]string, 0, len(terms)),
		maxDistance:    2,
		maxSuggestions: 5,
	}
	for _, t := range terms {
		s.terms = append(s.terms, strings.ToLower(t))
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Suggest returns vocabulary words within the edit distance cap of term,
// best first. Score is 1/(1+distance); equal scores order lexicographically.
func (s *Suggester) Suggest(term string) []Suggestion {
	termLower := strings.ToLower(term)
	suggestions := make([]Suggestion, 0)

	for _, dictTerm := range s.terms {
		if dictTerm == termLower {
			continue
		}
		// Length difference bounds the edit distance from below.
		lenDiff := len(dictTerm) - len(termLower)
		if lenDiff < 0 {
			lenDiff = -lenDiff
		}
		if lenDiff > s.maxDistance {
			continue
		}
		distance := LevenshteinDistance(termLower, dictTerm)
		if distance > s.maxDistance {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Term:     dictTerm,
			Distance: distance,
			Score:    1.0 / float64(1+distance),
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Score != suggestions[j].Score {
			return suggestions[i].Score > suggestions[j].Score
		}
		return suggestions[i].Term < suggestions[j].Term
	})
	if len(suggestions) > s.maxSuggestions {
		suggestions = suggestions[:s.maxSuggestions]
	}
	return suggestions
}

// ForMissing returns a deduplicated list of the best suggestions for each
// missing word, preserving missing-word order. At most perWord suggestions
// are taken from each word.
func (s *Suggester) ForMissing(missing []string, perWord int) []string {
	if perWord <= 0 {
		perWord = 1
	}
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, w := range missing {
		candidates := s.Suggest(w)
		if len(candidates) > perWord {
			candidates = candidates[:perWord]
		}
		for _, c := range candidates {
			if _, dup := seen[c.Term]; dup {
				continue
			}
			seen[c.Term] = struct{}{}
			out = append(out, c.Term)
		}
	}
	return out
}
