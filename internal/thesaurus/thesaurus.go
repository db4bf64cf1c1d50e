// Package thesaurus indexes a SKOS collections document into a lookup from
// collection identifier to its English label. Only flat collection membership
// is modeled; broader/narrower term hierarchies are out of scope.
package thesaurus

import (
	"encoding/xml"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/htmlindex"
)

var (
	// ErrUnavailable reports that the thesaurus document does not exist.
	// Callers are expected to continue with an empty Index.
	ErrUnavailable = eris.New("thesaurus: document not found")
	// ErrMalformed reports that the document exists but is not parseable as
	// the expected RDF/SKOS dialect.
	ErrMalformed = eris.New("thesaurus: document not parseable")
)

// Entry is one thesaurus collection with a parseable English label.
type Entry struct {
	CollectionID string // final path segment of the collection's rdf:about URI
	LabelID      string // "id" sub-field embedded in the label payload
	Label        string // "value" sub-field embedded in the label payload
}

// Index maps collection identifiers to their entries.
type Index map[string]Entry

// The English prefLabel text embeds a JSON-object-like payload, but it is not
// guaranteed to be valid JSON and may carry extra surrounding content. The
// two fields of interest are pulled out with independent pattern searches so
// that one failing never blocks the other.
var (
	labelIDPattern    = regexp.MustCompile(`"id"\s*:\s*"([^"]*)"`)
	labelValuePattern = regexp.MustCompile(`"value"\s*:\s*"([^"]*)"`)
)

type collection struct {
	About  string      `xml:"about,attr"`
	Labels []prefLabel `xml:"prefLabel"`
}

type prefLabel struct {
	Lang string `xml:"lang,attr"`
	Text string `xml:",chardata"`
}

// Load builds an Index from the document at path. A missing file fails with
// ErrUnavailable; a structurally malformed document fails with ErrMalformed.
func Load(path string) (Index, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, eris.Wrapf(ErrUnavailable, "%s", path)
		}
		return nil, eris.Wrapf(err, "thesaurus: open %s", path)
	}
	defer f.Close() //nolint:errcheck
	return Parse(f)
}

// Parse builds an Index from an RDF/SKOS document. Collections whose label
// fails extraction are skipped; a document-level parse failure aborts the
// whole build with ErrMalformed.
func Parse(r io.Reader) (Index, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		enc, err := htmlindex.Get(charset)
		if err != nil {
			return nil, eris.Wrapf(err, "thesaurus: unsupported charset %q", charset)
		}
		return enc.NewDecoder().Reader(input), nil
	}

	idx := Index{}
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			return idx, nil
		}
		if err != nil {
			return nil, eris.Wrapf(ErrMalformed, "%v", err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Collection" {
			continue
		}

		var coll collection
		if err := decoder.DecodeElement(&coll, &se); err != nil {
			return nil, eris.Wrapf(ErrMalformed, "%v", err)
		}

		entry, ok := buildEntry(coll)
		if !ok {
			continue
		}
		idx[entry.CollectionID] = entry
	}
}

// buildEntry extracts an Entry from a decoded collection. It reports false
// when the collection exposes no parseable English label.
func buildEntry(coll collection) (Entry, bool) {
	id := collectionID(coll.About)
	if id == "" {
		return Entry{}, false
	}

	text, ok := englishLabel(coll.Labels)
	if !ok {
		return Entry{}, false
	}

	value := labelValuePattern.FindStringSubmatch(text)
	if value == nil || value[1] == "" {
		return Entry{}, false
	}

	entry := Entry{CollectionID: id, Label: value[1]}
	if m := labelIDPattern.FindStringSubmatch(text); m != nil {
		entry.LabelID = m[1]
	}
	return entry, true
}

// englishLabel returns the text of the first English-tagged prefLabel whose
// payload looks like an embedded JSON object.
func englishLabel(labels []prefLabel) (string, bool) {
	for _, l := range labels {
		if !strings.EqualFold(l.Lang, "en") {
			continue
		}
		text := strings.TrimSpace(l.Text)
		if strings.HasPrefix(text, "{") {
			return text, true
		}
	}
	return "", false
}

// collectionID extracts the final path segment of a collection URI.
func collectionID(about string) string {
	about = strings.TrimRight(strings.TrimSpace(about), "/")
	if i := strings.LastIndexAny(about, "/#"); i >= 0 {
		return about[i+1:]
	}
	return about
}
