package rules

import (
	"fmt"
	"regexp"

	"github.com/martin-ueding/bank-statement-parser/internal/model"
)

// entry pairs a store with its compiled pattern.
type entry struct {
	store model.Store
	re    *regexp.Regexp
}

// Set is an ordered collection of classification rules. Rules are applied
// first-match-wins in the order the stores were given, which for stores
// loaded from the database is insertion order.
type Set struct {
	entries []entry
	byID    map[int64]model.Store
}

// NewSet compiles the patterns of the given stores. Store order is
// preserved. Returns an error for the first invalid pattern.
func NewSet(stores []model.Store) (*Set, error) {
	s := &Set{byID: make(map[int64]model.Store, len(stores))}
	for _, st := range stores {
		re, err := Compile(st.Pattern)
		if err != nil {
			return nil, fmt.Errorf("store %q: %w", st.Name, err)
		}
		s.entries = append(s.entries, entry{store: st, re: re})
		s.byID[st.ID] = st
	}
	return s, nil
}

// Compile builds the case-insensitive, unanchored matcher for a store
// pattern. Also used to validate patterns before they are persisted.
func Compile(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", pattern, err)
	}
	return re, nil
}

// Classify returns the first store whose pattern matches anywhere in text.
// The second return value is false when no rule matches.
func (s *Set) Classify(text string) (model.Store, bool) {
	for _, e := range s.entries {
		if e.re.MatchString(text) {
			return e.store, true
		}
	}
	return model.Store{}, false
}

// Get returns a store by ID.
func (s *Set) Get(id int64) (model.Store, bool) {
	st, ok := s.byID[id]
	return st, ok
}

// Len returns the number of rules in the set.
func (s *Set) Len() int {
	return len(s.entries)
}
