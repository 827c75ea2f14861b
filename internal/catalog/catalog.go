// Package catalog holds the showcase items, grouped into ordered categories.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/depeter/bentolio/internal/carousel"
)

var (
	// ErrEmptyKey is returned for a category without a key.
	ErrEmptyKey = errors.New("category key is empty")
	// ErrDuplicateCategory is returned when two categories share a key.
	ErrDuplicateCategory = errors.New("duplicate category")
	// ErrDuplicateItem is returned when two items of one list share an ID.
	ErrDuplicateItem = errors.New("duplicate item")
)

// Item is a showcase entry.
type Item = carousel.Item

// Category is a named item list.
type Category struct {
	Key   string `toml:"key"`
	Label string `toml:"label"`
	Items []Item `toml:"item"`
}

// Catalog maps category keys to item lists and keeps a default list for
// pages without categories.
type Catalog struct {
	Default    []Item     `toml:"default"`
	Categories []Category `toml:"category"`
}

// Builtin returns the stock project list.
func Builtin() *Catalog {
	return &Catalog{
		Default: []Item{
			{ID: "musea", Name: "Musea", Image: "images/bentolio.png", Link: "#"},
			{ID: "elara", Name: "Elara", Link: "#"},
			{ID: "verve", Name: "Verve", Link: "#"},
			{ID: "zephyr", Name: "Zephyr", Link: "#"},
		},
	}
}

// Load reads and validates a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes a TOML catalog and validates it.
func Parse(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := toml.Unmarshal(data, &cat); err != nil {
		return nil, err
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Validate checks keys and fills in missing item IDs.
func (c *Catalog) Validate() error {
	if err := fillIDs("default", c.Default); err != nil {
		return err
	}
	seen := make(map[string]bool, len(c.Categories))
	for i := range c.Categories {
		cat := &c.Categories[i]
		cat.Key = strings.TrimSpace(cat.Key)
		if cat.Key == "" {
			return fmt.Errorf("category #%d: %w", i+1, ErrEmptyKey)
		}
		if seen[cat.Key] {
			return fmt.Errorf("%w: %q", ErrDuplicateCategory, cat.Key)
		}
		seen[cat.Key] = true
		if cat.Label == "" {
			cat.Label = cat.Key
		}
		if err := fillIDs(cat.Key, cat.Items); err != nil {
			return err
		}
	}
	return nil
}

func fillIDs(scope string, items []Item) error {
	seen := make(map[string]bool, len(items))
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = slug(scope) + "/" + slug(items[i].Name)
			if items[i].Name == "" {
				items[i].ID = fmt.Sprintf("%s/%d", slug(scope), i)
			}
		}
		if seen[items[i].ID] {
			return fmt.Errorf("%w in %s: %q", ErrDuplicateItem, scope, items[i].ID)
		}
		seen[items[i].ID] = true
	}
	return nil
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), "-")
}

// DefaultItems returns the category-less list. An empty catalog falls back
// to the builtin projects.
func (c *Catalog) DefaultItems() []Item {
	if len(c.Default) == 0 && len(c.Categories) == 0 {
		return Builtin().Default
	}
	return c.Default
}

// Items returns the items of the category with the given key.
func (c *Catalog) Items(key string) ([]Item, bool) {
	for _, cat := range c.Categories {
		if cat.Key == key {
			return cat.Items, true
		}
	}
	return nil, false
}

// Keys returns category keys in declaration order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.Categories))
	for i, cat := range c.Categories {
		keys[i] = cat.Key
	}
	return keys
}

// Label returns the display label of a category, or the key itself.
func (c *Catalog) Label(key string) string {
	for _, cat := range c.Categories {
		if cat.Key == key {
			return cat.Label
		}
	}
	return key
}

// HasCategories reports whether the catalog defines any category.
func (c *Catalog) HasCategories() bool {
	return len(c.Categories) > 0
}

// Initial returns the category a page should open on: the preferred key
// when it exists, else the first category, else the default list.
func (c *Catalog) Initial(preferred string) string {
	if preferred != "" {
		if _, ok := c.Items(preferred); ok {
			return preferred
		}
	}
	if len(c.Categories) > 0 && len(c.Default) == 0 {
		return c.Categories[0].Key
	}
	return carousel.DefaultCategory
}

// Next returns the key after current, cycling through the categories.
// The default list takes a slot in the cycle when it has items.
func (c *Catalog) Next(current string) string {
	keys := c.Cycle()
	if len(keys) == 0 {
		return carousel.DefaultCategory
	}
	for i, k := range keys {
		if k == current {
			return keys[carousel.Forward(i, len(keys))]
		}
	}
	return keys[0]
}

// Cycle returns the keys Next walks through, the default list first.
func (c *Catalog) Cycle() []string {
	var keys []string
	if len(c.Default) > 0 {
		keys = append(keys, carousel.DefaultCategory)
	}
	return append(keys, c.Keys()...)
}
