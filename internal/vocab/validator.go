package vocab

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"golang.org/x/sync/errgroup"

	"github.com/maeasam/shataba/internal/table"
)

const (
	defaultWorkers    = 4
	defaultSampleSize = 5
)

// ColumnDetail reports the validation outcome for one checked column.
type ColumnDetail struct {
	Column           string
	Category         string
	OffendingCount   int
	OffendingSample  []string // first distinct offending raw values, bounded
	AcceptableCount  int
	AcceptableSample []string // first acceptable term labels, bounded
}

// Report aggregates the outcome of one validation run. It is the only audit
// trail for removed values; cleaning blanks offending cells in place.
type Report struct {
	RunID            string
	GeneratedAt      time.Time
	TotalRows        int
	ColumnsChecked   []string
	OffendingFound   int
	OffendingRemoved int
	Columns          []ColumnDetail
}

// Validator validates and cleans table columns against resolved term sets.
type Validator struct {
	// Workers bounds the number of columns validated concurrently.
	Workers int
	// SampleSize bounds the offending and acceptable value samples.
	SampleSize int
}

// Validate scans every table column bound to a resolved category, blanks
// offending cells in place, and returns the aggregate report. Columns whose
// mapping is unresolved, and fields with no matching column, are untouched.
// Each column owns a disjoint slice of the table, so columns validate in
// parallel and reduce into the report after all workers finish.
func (v *Validator) Validate(ctx context.Context, tbl *table.Table, mappings []Mapping) (*Report, error) {
	workers := v.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	sampleSize := v.SampleSize
	if sampleSize <= 0 {
		sampleSize = defaultSampleSize
	}

	report := &Report{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		TotalRows:   tbl.RowCount(),
	}

	type target struct {
		colIdx  int
		mapping Mapping
	}
	var targets []target
	claimed := make(map[int]bool)
	for _, m := range mappings {
		if !m.Resolved() {
			continue
		}
		idx, ok := tbl.ColumnIndex(m.FieldName)
		if !ok || claimed[idx] {
			continue
		}
		claimed[idx] = true
		targets = append(targets, target{colIdx: idx, mapping: m})
		report.ColumnsChecked = append(report.ColumnsChecked, tbl.Headers[idx])
	}

	details := make([]ColumnDetail, len(targets))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, tgt := range targets {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return eris.Wrap(err, "vocab: validation cancelled")
			}
			details[i] = validateColumn(tbl, tgt.colIdx, tgt.mapping, sampleSize)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, d := range details {
		report.OffendingFound += d.OffendingCount
	}
	report.OffendingRemoved = report.OffendingFound
	report.Columns = details
	return report, nil
}

// validateColumn scans a single column, blanking offending cells in place.
func validateColumn(tbl *table.Table, colIdx int, m Mapping, sampleSize int) ColumnDetail {
	accepted := make(map[string]bool, len(m.AcceptableTerms))
	for _, term := range m.AcceptableTerms {
		if n := Normalize(term); n != "" {
			accepted[n] = true
		}
	}

	detail := ColumnDetail{
		Column:          tbl.Headers[colIdx],
		Category:        m.CategoryName,
		AcceptableCount: len(m.AcceptableTerms),
	}
	for i, term := range m.AcceptableTerms {
		if i == sampleSize {
			break
		}
		detail.AcceptableSample = append(detail.AcceptableSample, term)
	}

	sampled := make(map[string]bool)
	for _, row := range tbl.Rows {
		raw := row[colIdx]
		norm := Normalize(raw)
		if norm == "" || accepted[norm] {
			continue
		}

		detail.OffendingCount++
		if len(detail.OffendingSample) < sampleSize && !sampled[raw] {
			sampled[raw] = true
			detail.OffendingSample = append(detail.OffendingSample, raw)
		}
		row[colIdx] = ""
	}
	return detail
}

// Normalize reduces a value to its comparison form: every character that is
// not an ASCII letter or digit is dropped, the rest lowercased. Empty and
// missing values normalize to the empty string and are never flagged.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c + 'a' - 'A')
		}
	}
	return b.String()
}
