package vocab

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalogPreservesDocumentOrder(t *testing.T) {
	doc := `{
		"Site Type": {"t1": "Settlement", "t2": "Burial"},
		"Site": {"t3": "Open"},
		"Material Type": {"t4": "Stone"}
	}`

	catalog, err := ParseCatalog(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 3, catalog.Len())

	cats := catalog.Categories()
	assert.Equal(t, "Site Type", cats[0].Name)
	assert.Equal(t, "Site", cats[1].Name)
	assert.Equal(t, "Material Type", cats[2].Name)
}

func TestParseCatalogMappingForm(t *testing.T) {
	doc := `{"Material Type": {"b": "Bone", "a": "Stone", "c": "Ceramic"}}`

	catalog, err := ParseCatalog(strings.NewReader(doc))
	require.NoError(t, err)

	cat, ok := catalog.Get("Material Type")
	require.True(t, ok)
	// Term order follows sorted term ids for determinism.
	assert.Equal(t, []string{"Stone", "Bone", "Ceramic"}, cat.Terms)
}

func TestParseCatalogListForm(t *testing.T) {
	doc := `{"Material Type": ["Stone", "Bone"]}`

	catalog, err := ParseCatalog(strings.NewReader(doc))
	require.NoError(t, err)

	cat, ok := catalog.Get("Material Type")
	require.True(t, ok)
	assert.Equal(t, []string{"Stone", "Bone"}, cat.Terms)
}

func TestParseCatalogRejectsNonObject(t *testing.T) {
	_, err := ParseCatalog(strings.NewReader(`["not", "an", "object"]`))
	assert.Error(t, err)
}

func TestParseCatalogRejectsScalarTerms(t *testing.T) {
	_, err := ParseCatalog(strings.NewReader(`{"Material Type": 42}`))
	assert.Error(t, err)
}

func TestCatalogGetMissing(t *testing.T) {
	catalog := NewCatalog(nil)
	_, ok := catalog.Get("anything")
	assert.False(t, ok)
	assert.Zero(t, catalog.Len())
}

func TestCatalogDuplicateNamesKeepFirst(t *testing.T) {
	catalog := NewCatalog([]Category{
		{Name: "Period", Terms: []string{"first"}},
		{Name: "Period", Terms: []string{"second"}},
	})

	cat, ok := catalog.Get("Period")
	require.True(t, ok)
	assert.Equal(t, []string{"first"}, cat.Terms)
}
