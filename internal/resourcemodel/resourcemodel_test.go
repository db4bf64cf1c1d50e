package resourcemodel

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGraph = `{
	"graph": [
		{
			"nodes": [
				{"name": "material", "nodeid": "n1", "datatype": "concept",
				 "config": {"rdmCollection": "abc-123", "other": true}},
				{"name": "site_types", "nodeid": "n2", "datatype": "concept-list",
				 "config": {"rdmCollection": "def-456"}},
				{"name": "free_concept", "nodeid": "n3", "datatype": "concept"},
				{"name": "description", "nodeid": "n4", "datatype": "string",
				 "config": {"rdmCollection": "should-be-ignored"}},
				{"name": "weird_config", "nodeid": "n5", "datatype": "concept",
				 "config": ["not", "a", "map"]},
				{"name": "null_config", "nodeid": "n6", "datatype": "concept",
				 "config": null}
			]
		}
	]
}`

func TestParseSampleGraph(t *testing.T) {
	fields, err := Parse(strings.NewReader(sampleGraph))
	require.NoError(t, err)
	require.Len(t, fields, 5)

	assert.Equal(t, Field{Name: "material", NodeID: "n1", Datatype: "concept", CollectionRef: "abc-123"}, fields[0])
	assert.Equal(t, Field{Name: "site_types", NodeID: "n2", Datatype: "concept-list", CollectionRef: "def-456"}, fields[1])

	// Unbound concept fields are retained with an empty reference.
	assert.Equal(t, "free_concept", fields[2].Name)
	assert.Empty(t, fields[2].CollectionRef)
	assert.False(t, fields[2].Bound())

	// A config that is not a key-value map yields no reference.
	assert.Equal(t, "weird_config", fields[3].Name)
	assert.Empty(t, fields[3].CollectionRef)

	assert.Equal(t, "null_config", fields[4].Name)
	assert.Empty(t, fields[4].CollectionRef)
}

func TestParseNonConceptNodesExcluded(t *testing.T) {
	fields, err := Parse(strings.NewReader(sampleGraph))
	require.NoError(t, err)

	for _, f := range fields {
		assert.NotEqual(t, "description", f.Name)
	}
}

func TestParsePreservesNodeOrder(t *testing.T) {
	fields, err := Parse(strings.NewReader(sampleGraph))
	require.NoError(t, err)

	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"material", "site_types", "free_concept", "weird_config", "null_config"}, names)
}

func TestParseEmptyGraphList(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"graph": []}`))
	assert.Error(t, err)
}

func TestParseInvalidJSON(t *testing.T) {
	_, err := Parse(strings.NewReader(`{not json`))
	assert.Error(t, err)
}

func TestParseNoConceptNodes(t *testing.T) {
	fields, err := Parse(strings.NewReader(`{"graph": [{"nodes": [
		{"name": "a", "nodeid": "n1", "datatype": "string"}
	]}]}`))
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Site.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleGraph), 0o644))

	fields, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, fields, 5)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
