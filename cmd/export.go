package main

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"

	"github.com/maeasam/shataba/internal/vocab"
)

// writeMappingsCSV writes the concept mapping summary rows to a CSV file.
func writeMappingsCSV(path string, mappings []vocab.Mapping) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return eris.Wrap(err, "mappings export: create dir")
	}
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "mappings export: create file")
	}
	defer f.Close() //nolint:errcheck

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(vocab.SummaryHeader); err != nil {
		return eris.Wrap(err, "mappings export: write header")
	}
	for _, row := range vocab.SummaryRows(mappings) {
		if err := w.Write(row); err != nil {
			return eris.Wrap(err, "mappings export: write row")
		}
	}

	w.Flush()
	return eris.Wrap(w.Error(), "mappings export: flush")
}
