// Package resourcemodel extracts concept-governed fields from a resource
// model graph description.
package resourcemodel

import (
	"encoding/json"
	"io"
	"os"

	"github.com/rotisserie/eris"

	"github.com/maeasam/shataba/internal/loader"
)

// collectionRefKey is the node config key carrying the bound collection id.
const collectionRefKey = "rdmCollection"

// Field describes one concept-governed field declared in the graph.
type Field struct {
	Name          string
	NodeID        string
	Datatype      string
	CollectionRef string // empty when the node has no bound collection
}

// Bound reports whether the field draws from a thesaurus collection.
func (f Field) Bound() bool {
	return f.CollectionRef != ""
}

type graphDoc struct {
	Graph []struct {
		Nodes []node `json:"nodes"`
	} `json:"graph"`
}

type node struct {
	Name     string          `json:"name"`
	NodeID   string          `json:"nodeid"`
	Datatype string          `json:"datatype"`
	Config   json.RawMessage `json:"config"`
}

// Load reads a resource model JSON file and extracts its concept fields.
func Load(path string) ([]Field, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "resourcemodel: open %s", path)
	}
	defer f.Close() //nolint:errcheck
	return Parse(f)
}

// Parse extracts the ordered list of concept fields from a graph description.
// Only nodes with a concept datatype are retained; nodes without a collection
// reference are kept as unbound fields.
func Parse(r io.Reader) ([]Field, error) {
	doc, err := loader.DecodeJSONObject[graphDoc](r)
	if err != nil {
		return nil, eris.Wrap(err, "resourcemodel: parse graph")
	}
	if len(doc.Graph) == 0 {
		return nil, eris.New("resourcemodel: graph list is empty")
	}

	var fields []Field
	for _, n := range doc.Graph[0].Nodes {
		if !conceptDatatype(n.Datatype) || n.Name == "" {
			continue
		}
		fields = append(fields, Field{
			Name:          n.Name,
			NodeID:        n.NodeID,
			Datatype:      n.Datatype,
			CollectionRef: collectionRef(n.Config),
		})
	}
	return fields, nil
}

// conceptDatatype reports whether a node holds single or multi-valued
// vocabulary terms.
func conceptDatatype(dt string) bool {
	return dt == "concept" || dt == "concept-list"
}

// collectionRef pulls the collection reference out of a node config block.
// Configs that are absent, null, or not shaped as a key-value map yield no
// reference.
func collectionRef(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var cfg map[string]any
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return ""
	}
	ref, _ := cfg[collectionRefKey].(string)
	return ref
}
