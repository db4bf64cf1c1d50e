// Package vocab resolves concept fields to their acceptable vocabulary terms
// and validates table columns against them.
package vocab

import (
	"encoding/json"
	"io"
	"os"
	"sort"

	"github.com/rotisserie/eris"
)

// Category is one named group of acceptable term labels.
type Category struct {
	Name  string
	Terms []string
}

// Catalog is an ordered sequence of categories. Document order is preserved
// because the substring fallback in category resolution is a first-match
// policy; an unordered map would make the tie-break nondeterministic.
type Catalog struct {
	categories []Category
	index      map[string]int
}

// NewCatalog builds a catalog from an ordered category list. Later duplicates
// of a name do not displace the first occurrence.
func NewCatalog(categories []Category) *Catalog {
	c := &Catalog{
		categories: categories,
		index:      make(map[string]int, len(categories)),
	}
	for i, cat := range categories {
		if _, ok := c.index[cat.Name]; !ok {
			c.index[cat.Name] = i
		}
	}
	return c
}

// Categories returns the categories in document order.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// Get returns the category with the exact given name.
func (c *Catalog) Get(name string) (Category, bool) {
	i, ok := c.index[name]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.categories)
}

// LoadCatalog reads a category catalog JSON file.
func LoadCatalog(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "vocab: open catalog %s", path)
	}
	defer f.Close() //nolint:errcheck
	return ParseCatalog(f)
}

// ParseCatalog decodes a catalog document of the form
// {"Category": {"<term id>": "<term label>", ...}, ...} or
// {"Category": ["<term label>", ...], ...}. Decoding walks the token stream
// so that category order follows the document, not map iteration.
func ParseCatalog(r io.Reader) (*Catalog, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, eris.Wrap(err, "vocab: read catalog")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, eris.Errorf("vocab: catalog must be a JSON object, got %v", tok)
	}

	var categories []Category
	for dec.More() {
		nameTok, err := dec.Token()
		if err != nil {
			return nil, eris.Wrap(err, "vocab: read category name")
		}
		name, ok := nameTok.(string)
		if !ok {
			return nil, eris.Errorf("vocab: unexpected catalog key %v", nameTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, eris.Wrapf(err, "vocab: decode category %q", name)
		}
		terms, err := decodeTerms(raw)
		if err != nil {
			return nil, eris.Wrapf(err, "vocab: category %q", name)
		}
		categories = append(categories, Category{Name: name, Terms: terms})
	}

	if _, err := dec.Token(); err != nil && err != io.EOF {
		return nil, eris.Wrap(err, "vocab: read catalog close")
	}
	return NewCatalog(categories), nil
}

// decodeTerms accepts either a term-id to label mapping or a bare label list.
// Mapping values are sorted by term id so the resulting order is stable.
func decodeTerms(raw json.RawMessage) ([]string, error) {
	var byID map[string]string
	if err := json.Unmarshal(raw, &byID); err == nil {
		ids := make([]string, 0, len(byID))
		for id := range byID {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		terms := make([]string, 0, len(ids))
		for _, id := range ids {
			terms = append(terms, byID[id])
		}
		return terms, nil
	}

	var labels []string
	if err := json.Unmarshal(raw, &labels); err != nil {
		return nil, eris.Wrap(err, "terms must be a mapping or a list")
	}
	return labels, nil
}
