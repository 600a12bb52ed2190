// Package catalog holds the fixed set of recommendable movies.
//
// A Catalog is immutable once built and safe for concurrent readers.
package catalog

import (
	"errors"
	"fmt"

	"yourscinema-backend/internal/mood"
)

var (
	ErrDuplicateID = errors.New("duplicate catalog item id")
	ErrInvalidItem = errors.New("invalid catalog item")
)

// Item is a single recommendable movie.
type Item struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Genre       string    `json:"genre"`
	Mood        mood.Mood `json:"mood_tag"`
	Rating      float64   `json:"rating"`
	Description string    `json:"description"`
	Glyph       string    `json:"glyph,omitempty"`
	Year        int       `json:"year,omitempty"`
}

type Catalog struct {
	items []Item
	byID  map[string]int
}

// New validates items and builds a Catalog preserving their order.
func New(items []Item) (*Catalog, error) {
	c := &Catalog{
		items: make([]Item, 0, len(items)),
		byID:  make(map[string]int, len(items)),
	}
	for i, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("%w: item %d has no id", ErrInvalidItem, i)
		}
		if !item.Mood.Valid() {
			return nil, fmt.Errorf("%w: item %s has mood tag %q", ErrInvalidItem, item.ID, item.Mood)
		}
		if _, dup := c.byID[item.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, item.ID)
		}
		c.byID[item.ID] = len(c.items)
		c.items = append(c.items, item)
	}
	return c, nil
}

// MustNew is New for static seed data; it panics on invalid items.
func MustNew(items []Item) *Catalog {
	c, err := New(items)
	if err != nil {
		panic(err)
	}
	return c
}

// FindByMood returns every item tagged m in catalog order. The result is
// empty, never nil-with-error, when no item matches.
func (c *Catalog) FindByMood(m mood.Mood) []Item {
	out := []Item{}
	for _, item := range c.items {
		if item.Mood == m {
			out = append(out, item)
		}
	}
	return out
}

// Get looks an item up by id.
func (c *Catalog) Get(id string) (Item, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// Items returns a copy of every item in catalog order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) Len() int {
	return len(c.items)
}

// Missing returns the labels in moods that have no catalog entry.
func (c *Catalog) Missing(moods []mood.Mood) []mood.Mood {
	present := make(map[mood.Mood]bool, len(mood.All))
	for _, item := range c.items {
		present[item.Mood] = true
	}
	var missing []mood.Mood
	for _, m := range moods {
		if !present[m] {
			missing = append(missing, m)
		}
	}
	return missing
}
