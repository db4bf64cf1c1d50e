package thesaurus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `<?xml version="1.0" encoding="UTF-8"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:skos="http://www.w3.org/2004/02/skos/core#">
  <skos:Collection rdf:about="http://vocab.example.org/abc-123">
    <skos:prefLabel xml:lang="en">{"id": "c1", "value": "Material Type"}</skos:prefLabel>
  </skos:Collection>
  <skos:Collection rdf:about="http://vocab.example.org/def-456">
    <skos:prefLabel xml:lang="fr">{"id": "c2", "value": "Type de site"}</skos:prefLabel>
    <skos:prefLabel xml:lang="en">{"id": "c3", "value": "Site Type"}</skos:prefLabel>
  </skos:Collection>
  <skos:Collection rdf:about="http://vocab.example.org/ghi-789">
    <skos:prefLabel xml:lang="en">plain text, no embedded object</skos:prefLabel>
  </skos:Collection>
</rdf:RDF>`

func TestParseSampleDocument(t *testing.T) {
	idx, err := Parse(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	// ghi-789 has no parseable label and is silently absent.
	require.Len(t, idx, 2)

	entry, ok := idx["abc-123"]
	require.True(t, ok)
	assert.Equal(t, "abc-123", entry.CollectionID)
	assert.Equal(t, "c1", entry.LabelID)
	assert.Equal(t, "Material Type", entry.Label)

	entry, ok = idx["def-456"]
	require.True(t, ok)
	assert.Equal(t, "c3", entry.LabelID)
	assert.Equal(t, "Site Type", entry.Label)
}

func TestParseLabelWithSurroundingNoise(t *testing.T) {
	doc := `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	         xmlns:skos="http://www.w3.org/2004/02/skos/core#">
	  <skos:Collection rdf:about="http://vocab.example.org/noisy-1">
	    <skos:prefLabel xml:lang="en">{"value": "Period", "id": "p9", trailing garbage not json</skos:prefLabel>
	  </skos:Collection>
	</rdf:RDF>`

	idx, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	// The two fields are found by independent pattern searches even though
	// the payload is not valid JSON.
	entry, ok := idx["noisy-1"]
	require.True(t, ok)
	assert.Equal(t, "Period", entry.Label)
	assert.Equal(t, "p9", entry.LabelID)
}

func TestParseLabelMissingID(t *testing.T) {
	doc := `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	         xmlns:skos="http://www.w3.org/2004/02/skos/core#">
	  <skos:Collection rdf:about="http://vocab.example.org/noid-1">
	    <skos:prefLabel xml:lang="en">{"value": "Condition"}</skos:prefLabel>
	  </skos:Collection>
	</rdf:RDF>`

	idx, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	entry, ok := idx["noid-1"]
	require.True(t, ok)
	assert.Equal(t, "Condition", entry.Label)
	assert.Empty(t, entry.LabelID)
}

func TestParseSkipsCollectionsWithoutEnglishLabel(t *testing.T) {
	doc := `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	         xmlns:skos="http://www.w3.org/2004/02/skos/core#">
	  <skos:Collection rdf:about="http://vocab.example.org/fr-only">
	    <skos:prefLabel xml:lang="fr">{"id": "f1", "value": "Matériau"}</skos:prefLabel>
	  </skos:Collection>
	  <skos:Collection rdf:about="http://vocab.example.org/no-label"/>
	</rdf:RDF>`

	idx, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Empty(t, idx)
}

func TestParseMalformedDocument(t *testing.T) {
	_, err := Parse(strings.NewReader(`<rdf:RDF><skos:Collection`))
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrMalformed))
}

func TestParseEmptyDocument(t *testing.T) {
	idx, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, idx)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.xml"))
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrUnavailable))
	assert.False(t, eris.Is(err, ErrMalformed))
}

func TestLoadExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collections.xml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o644))

	idx, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, idx, 2)
}

func TestCollectionID(t *testing.T) {
	tests := []struct {
		about string
		want  string
	}{
		{"http://vocab.example.org/abc-123", "abc-123"},
		{"http://vocab.example.org/abc-123/", "abc-123"},
		{"http://vocab.example.org/path#frag", "frag"},
		{"bare-id", "bare-id"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.about, func(t *testing.T) {
			assert.Equal(t, tt.want, collectionID(tt.about))
		})
	}
}
