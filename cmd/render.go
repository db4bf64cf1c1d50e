package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/maeasam/shataba/internal/vocab"
)

// renderReport writes the validation report as a metric table.
func renderReport(out io.Writer, r *vocab.Report) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "METRIC\tCOUNT")
	_, _ = fmt.Fprintln(w, "------\t-----")
	_, _ = fmt.Fprintf(w, "Total Rows Processed\t%d\n", r.TotalRows)
	_, _ = fmt.Fprintf(w, "Columns Checked\t%d\n", len(r.ColumnsChecked))
	_, _ = fmt.Fprintf(w, "Offending Values Found\t%d\n", r.OffendingFound)
	_, _ = fmt.Fprintf(w, "Offending Values Removed\t%d\n", r.OffendingRemoved)
	_ = w.Flush()
	_, _ = fmt.Fprintln(out)
}

// renderOffendingDetail writes the per-column offending value breakdown.
func renderOffendingDetail(out io.Writer, r *vocab.Report) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "COLUMN\tCATEGORY\tOFFENDING\tSAMPLE\tACCEPTABLE\tEXAMPLES")
	_, _ = fmt.Fprintln(w, "------\t--------\t---------\t------\t----------\t--------")

	for _, d := range r.Columns {
		if d.OffendingCount == 0 {
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%d\t%s\n",
			d.Column,
			d.Category,
			d.OffendingCount,
			truncate(strings.Join(d.OffendingSample, ", "), 60),
			d.AcceptableCount,
			truncate(strings.Join(d.AcceptableSample, ", "), 60),
		)
	}
	_ = w.Flush()
	_, _ = fmt.Fprintln(out)
}

// renderMappings writes the concept mapping summary rows.
func renderMappings(out io.Writer, mappings []vocab.Mapping) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, strings.ToUpper(strings.Join(vocab.SummaryHeader, "\t")))

	for _, row := range vocab.SummaryRows(mappings) {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = truncate(cell, 40)
		}
		_, _ = fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	_ = w.Flush()
	_, _ = fmt.Fprintln(out)
}

// renderNodeSummary writes resolution coverage totals plus a per-field
// resolution status table.
func renderNodeSummary(out io.Writer, s vocab.NodeSummary, mappings []vocab.Mapping) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "METRIC\tCOUNT\tPERCENTAGE")
	_, _ = fmt.Fprintln(w, "------\t-----\t----------")
	_, _ = fmt.Fprintf(w, "Total Concept Nodes\t%d\t100%%\n", s.TotalConceptNodes)
	_, _ = fmt.Fprintf(w, "Nodes with Collections\t%d\t%s\n", s.NodesWithCollections, percent(s.NodesWithCollections, s.TotalConceptNodes))
	_, _ = fmt.Fprintf(w, "Nodes with Labels\t%d\t%s\n", s.NodesWithLabels, percent(s.NodesWithLabels, s.TotalConceptNodes))
	_, _ = fmt.Fprintf(w, "Nodes with Categories\t%d\t%s\n", s.NodesWithCategories, percent(s.NodesWithCategories, s.TotalConceptNodes))
	_ = w.Flush()
	_, _ = fmt.Fprintln(out)

	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NODE\tCOLLECTION\tLABEL\tCATEGORY\tTERMS")
	_, _ = fmt.Fprintln(w, "----\t----------\t-----\t--------\t-----")
	for _, m := range mappings {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			m.FieldName,
			yesNo(m.CollectionRef != ""),
			yesNo(m.CollectionLabel != ""),
			yesNo(m.CategoryName != ""),
			len(m.AcceptableTerms),
		)
	}
	_ = w.Flush()
	_, _ = fmt.Fprintln(out)
}

func percent(n, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return strconv.FormatFloat(float64(n)/float64(total)*100, 'f', 1, 64) + "%"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// truncate shortens s to max characters, appending "..." when cut.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
