package vocab

import (
	"strings"

	"github.com/maeasam/shataba/internal/resourcemodel"
	"github.com/maeasam/shataba/internal/thesaurus"
)

// Mapping is the resolved join of one concept field with its thesaurus
// collection and category. Empty strings mark absent values: an unbound field
// has no CollectionRef, a bound-but-unresolved field has a CollectionRef and
// no CategoryName. Either way the term set is empty and validation enforces
// no constraint for the field.
type Mapping struct {
	FieldName       string
	FieldID         string
	CollectionRef   string
	CollectionLabel string
	LabelID         string
	CategoryName    string
	AcceptableTerms []string
}

// Resolved reports whether the field carries an enforceable term set.
func (m Mapping) Resolved() bool {
	return m.CategoryName != "" && len(m.AcceptableTerms) > 0
}

// Resolve joins concept fields with the thesaurus index and category catalog,
// producing one Mapping per field in field order.
func Resolve(fields []resourcemodel.Field, index thesaurus.Index, catalog *Catalog) []Mapping {
	mappings := make([]Mapping, 0, len(fields))
	for _, f := range fields {
		m := Mapping{
			FieldName:     f.Name,
			FieldID:       f.NodeID,
			CollectionRef: f.CollectionRef,
		}

		if f.CollectionRef != "" {
			if entry, ok := index[f.CollectionRef]; ok {
				m.CollectionLabel = entry.Label
				m.LabelID = entry.LabelID
				if cat, ok := findCategory(entry.Label, catalog); ok {
					m.CategoryName = cat.Name
					m.AcceptableTerms = cat.Terms
				}
			}
		}

		mappings = append(mappings, m)
	}
	return mappings
}

// findCategory resolves a collection label to a catalog category: first by
// exact name match, then the first category in catalog order where the
// lowercased label and category name contain one another. The fallback is
// deliberately first-match; when several categories partially match a short
// label, catalog order decides.
func findCategory(label string, catalog *Catalog) (Category, bool) {
	if label == "" || catalog == nil {
		return Category{}, false
	}

	if cat, ok := catalog.Get(label); ok {
		return cat, true
	}

	lower := strings.ToLower(label)
	for _, cat := range catalog.Categories() {
		name := strings.ToLower(cat.Name)
		if strings.Contains(name, lower) || strings.Contains(lower, name) {
			return cat, true
		}
	}
	return Category{}, false
}
