// Package catalog defines the pattern catalog: entries describing one
// design-pattern demonstration each, grouped by Gang-of-Four category,
// and a registry for looking them up.
package catalog

import (
	"errors"
	"io"
	"sort"

	"github.com/samber/lo"
)

// Gang-of-Four categories. Every entry belongs to exactly one.
const (
	CategoryCreational = "creational"
	CategoryStructural = "structural"
	CategoryBehavioral = "behavioral"
)

// validCategories is the set of recognized category values.
var validCategories = map[string]bool{
	CategoryCreational: true,
	CategoryStructural: true,
	CategoryBehavioral: true,
}

// Categories returns the category names in canonical order.
func Categories() []string {
	return []string{CategoryCreational, CategoryStructural, CategoryBehavioral}
}

// ValidCategory reports whether name is a recognized category.
func ValidCategory(name string) bool {
	return validCategories[name]
}

// Registry errors.
var (
	ErrPatternNotFound  = errors.New("pattern not found")
	ErrDuplicatePattern = errors.New("pattern already registered")
	ErrInvalidEntry     = errors.New("invalid catalog entry")
	ErrUnknownCategory  = errors.New("unknown category")
)

// DemoFunc runs one pattern demonstration, writing its illustrative
// output to w. Demos are deterministic and take no other input.
type DemoFunc func(w io.Writer) error

// Entry describes one pattern demonstration in the catalog.
type Entry struct {
	Name     string   `json:"name"`     // Slug, e.g. "factory-method".
	Title    string   `json:"title"`    // Display name, e.g. "Factory Method".
	Category string   `json:"category"` // One of the Category constants.
	Summary  string   `json:"summary"`  // One-paragraph description.
	Demo     DemoFunc `json:"-"`        // Runnable demonstration.
}

// validate checks that an entry is complete before registration.
func (e Entry) validate() error {
	if e.Name == "" || e.Title == "" || e.Summary == "" || e.Demo == nil {
		return ErrInvalidEntry
	}
	if !validCategories[e.Category] {
		return ErrUnknownCategory
	}
	return nil
}

// Registry holds the catalog entries keyed by slug. The zero value is
// not usable; call NewRegistry.
type Registry struct {
	entries map[string]Entry
	order   []string // registration order, for stable listing
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds an entry to the registry.
// Returns ErrInvalidEntry or ErrUnknownCategory for malformed entries
// and ErrDuplicatePattern if the slug is already taken.
func (r *Registry) Register(e Entry) error {
	if err := e.validate(); err != nil {
		return err
	}
	if _, ok := r.entries[e.Name]; ok {
		return ErrDuplicatePattern
	}
	r.entries[e.Name] = e
	r.order = append(r.order, e.Name)
	return nil
}

// Get returns the entry registered under name.
// Returns ErrPatternNotFound if no such entry exists.
func (r *Registry) Get(name string) (Entry, error) {
	e, ok := r.entries[name]
	if !ok {
		return Entry{}, ErrPatternNotFound
	}
	return e, nil
}

// List returns all entries ordered by category (creational, structural,
// behavioral) and then by slug within each category.
func (r *Registry) List() []Entry {
	entries := lo.Map(r.order, func(name string, _ int) Entry {
		return r.entries[name]
	})
	rank := map[string]int{
		CategoryCreational: 0,
		CategoryStructural: 1,
		CategoryBehavioral: 2,
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Category != entries[j].Category {
			return rank[entries[i].Category] < rank[entries[j].Category]
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// ByCategory returns the entries in the given category, ordered by slug.
// Returns ErrUnknownCategory if the category is not recognized.
func (r *Registry) ByCategory(category string) ([]Entry, error) {
	if !validCategories[category] {
		return nil, ErrUnknownCategory
	}
	entries := lo.Filter(r.List(), func(e Entry, _ int) bool {
		return e.Category == category
	})
	return entries, nil
}

// Names returns the registered slugs in listing order.
func (r *Registry) Names() []string {
	return lo.Map(r.List(), func(e Entry, _ int) string { return e.Name })
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	return len(r.entries)
}
