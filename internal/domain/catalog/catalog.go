package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// Catalog is the immutable command reference for one tool. Categories are
// kept in definition order alongside a name index.
type Catalog struct {
	key         string
	name        string
	description string
	icon        string
	categories  []Category
	index       map[string]int
	size        int
}

// New validates def and builds a Catalog owning a deep copy of it.
func New(key string, def Definition) (*Catalog, error) {
	result := Validate(&def)
	if !result.Valid {
		return nil, &InvalidError{Key: key, Result: result}
	}

	c := &Catalog{
		key:         key,
		name:        def.Name,
		description: def.Description,
		icon:        def.Icon,
		categories:  make([]Category, len(def.Categories)),
		index:       make(map[string]int, len(def.Categories)),
	}
	for i, cat := range def.Categories {
		c.categories[i] = Category{
			Name:     cat.Name,
			Commands: append([]CommandEntry(nil), cat.Commands...),
		}
		c.index[cat.Name] = i
		c.size += len(cat.Commands)
	}
	return c, nil
}

func (c *Catalog) Key() string         { return c.key }
func (c *Catalog) Name() string        { return c.name }
func (c *Catalog) Description() string { return c.description }
func (c *Catalog) Icon() string        { return c.icon }

// Len returns the total number of commands across all categories.
func (c *Catalog) Len() int { return c.size }

// Categories returns category names in definition order.
func (c *Catalog) Categories() []string {
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}

// HasCategory reports whether name is a category of this catalog.
func (c *Catalog) HasCategory(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Commands returns a copy of the commands of category in definition order.
// An unknown category yields an empty result.
func (c *Catalog) Commands(category string) []CommandEntry {
	i, ok := c.index[category]
	if !ok {
		return nil
	}
	return append([]CommandEntry(nil), c.categories[i].Commands...)
}

// Search returns every command whose text or description contains query,
// ignoring case, in category order then command order.
//
// An empty query matches everything; callers are expected to reject it
// with CleanQuery first.
func (c *Catalog) Search(query string) []SearchResult {
	needle := fold(query)

	var results []SearchResult
	for _, cat := range c.categories {
		for _, cmd := range cat.Commands {
			if matchFolded(cmd, needle) {
				results = append(results, SearchResult{CommandEntry: cmd, Category: cat.Name})
			}
		}
	}
	return results
}

// Definition returns a deep copy of the catalog in its decodable shape.
func (c *Catalog) Definition() Definition {
	def := Definition{
		Name:        c.name,
		Description: c.description,
		Icon:        c.icon,
		Categories:  make([]Category, len(c.categories)),
	}
	for i, cat := range c.categories {
		def.Categories[i] = Category{
			Name:     cat.Name,
			Commands: append([]CommandEntry(nil), cat.Commands...),
		}
	}
	return def
}

// CleanQuery trims a raw search query and reports whether anything is left
// to search for. Search itself does not guard against empty input.
func CleanQuery(q string) (string, bool) {
	q = strings.TrimSpace(q)
	return q, q != ""
}

// Matches reports whether query matches the entry under the same rule
// Search applies.
func Matches(entry CommandEntry, query string) bool {
	return matchFolded(entry, fold(query))
}

func matchFolded(entry CommandEntry, needle string) bool {
	return strings.Contains(fold(entry.Command), needle) || strings.Contains(fold(entry.Description), needle)
}

// cases.Caser is stateful, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}
