// Package models defines request and response structures for the
// common-word API.
package models

import "fmt"

// DefaultTopN is used when a request omits top_n.
const DefaultTopN = 5

// QueryRequest is the body of a common-words request: the group of words to
// describe and how many related words to return. TopN is a pointer so that an
// absent field (defaulted) can be told apart from an explicit invalid zero.
type QueryRequest struct {
	Words []string `json:"words"`
	TopN  *int     `json:"top_n,omitempty"`
}

// Validate checks the request and applies defaults. Returns an error for an
// empty word list, an empty word, or a non-positive top_n; on success TopN is
// set and capped at maxTopN. These are client errors surfaced before the core
// is invoked.
func (q *QueryRequest) Validate(defaultTopN, maxTopN int) error {
	if len(q.Words) == 0 {
		return fmt.Errorf("words must be provided as a non-empty list of strings")
	}
	for _, w := range q.Words {
		if w == "" {
			return fmt.Errorf("words must be provided as a non-empty list of strings")
		}
	}
	if q.TopN == nil {
		if defaultTopN <= 0 {
			defaultTopN = DefaultTopN
		}
		q.TopN = &defaultTopN
		return nil
	}
	if *q.TopN <= 0 {
		return fmt.Errorf("top_n must be a positive integer")
	}
	if maxTopN > 0 && *q.TopN > maxTopN {
		*q.TopN = maxTopN
	}
	return nil
}
