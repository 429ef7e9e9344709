// Package catalog holds the read-only marketplace catalog: categories,
// their establishments and the items each establishment sells. The catalog
// is loaded once at startup and never mutated afterwards.
package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a lookup with a key that is not in the catalog.
// Callers resolve user input against the catalog before looking anything
// up, so hitting this error means a stale reference, not bad user input.
var ErrNotFound = errors.New("catalog: not found")

// Item is a single menu or catalog entry. Price is in MT.
type Item struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// Establishment is a store or venue inside a category. Items is the
// normalized item list: loaders fold whichever source field the data uses
// ("menu" or "produtos") into it, so nothing downstream branches on the
// field name.
type Establishment struct {
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	OpeningHours  string  `json:"opening_hours"`
	AverageRating float64 `json:"average_rating"`
	Items         []Item  `json:"items"`
}

// Category groups establishments under a browsable name.
type Category struct {
	Name           string
	Establishments []Establishment
}

// Store is the immutable catalog, ordered as loaded.
type Store struct {
	categories []Category
	index      map[string]int
}

// NewStore builds a Store from already-normalized categories.
func NewStore(categories []Category) *Store {
	index := make(map[string]int, len(categories))
	for i, c := range categories {
		index[c.Name] = i
	}
	return &Store{categories: categories, index: index}
}

// Categories lists category names in load order.
func (s *Store) Categories() []string {
	names := make([]string, len(s.categories))
	for i, c := range s.categories {
		names[i] = c.Name
	}
	return names
}

// Establishments returns the establishments of a category in load order.
func (s *Store) Establishments(category string) ([]Establishment, error) {
	i, ok := s.index[category]
	if !ok {
		return nil, fmt.Errorf("category %q: %w", category, ErrNotFound)
	}
	return s.categories[i].Establishments, nil
}

// Establishment looks up a single establishment by category and name.
func (s *Store) Establishment(category, name string) (Establishment, error) {
	ests, err := s.Establishments(category)
	if err != nil {
		return Establishment{}, err
	}
	for _, e := range ests {
		if e.Name == name {
			return e, nil
		}
	}
	return Establishment{}, fmt.Errorf("establishment %q in %q: %w", name, category, ErrNotFound)
}
