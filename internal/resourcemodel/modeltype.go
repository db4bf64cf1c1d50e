package resourcemodel

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ModelType names one of the known resource models.
type ModelType string

// Known resource model types.
const (
	ModelActor          ModelType = "actor"
	ModelAdministrative ModelType = "administrative_model"
	ModelChronology     ModelType = "chronology"
	ModelInformation    ModelType = "information"
	ModelGrid           ModelType = "maeasam_grid"
	ModelRemoteSensing  ModelType = "remote_sensing"
	ModelSite           ModelType = "site"
)

// ModelTypes returns all known resource model types.
func ModelTypes() []ModelType {
	return []ModelType{
		ModelActor,
		ModelAdministrative,
		ModelChronology,
		ModelInformation,
		ModelGrid,
		ModelRemoteSensing,
		ModelSite,
	}
}

// ParseModelType validates a model type name.
func ParseModelType(s string) (ModelType, error) {
	m := ModelType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range ModelTypes() {
		if m == known {
			return m, nil
		}
	}
	return "", eris.Errorf("resourcemodel: unknown model type %q", s)
}

var titleCaser = cases.Title(language.English)

// Title returns the display form of the model type, e.g. "maeasam_grid"
// becomes "Maeasam Grid". Reference file names use this form.
func (m ModelType) Title() string {
	return titleCaser.String(strings.ReplaceAll(string(m), "_", " "))
}

// GraphFile returns the default graph description path under dir.
func (m ModelType) GraphFile(dir string) string {
	return filepath.Join(dir, m.Title()+".json")
}

// ConceptsFile returns the default category catalog path under dir.
func (m ModelType) ConceptsFile(dir string) string {
	return filepath.Join(dir, m.Title()+"_concepts.json")
}
