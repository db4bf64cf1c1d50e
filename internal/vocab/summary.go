package vocab

import "strconv"

// NotAvailable marks an absent value in summary output.
const NotAvailable = "N/A"

// SummaryHeader names the columns of the mapping summary, in output order.
var SummaryHeader = []string{
	"node_name",
	"node_id",
	"rdm_collection",
	"collection_label",
	"label_id",
	"concept_category",
	"available_concepts",
}

// SummaryRows projects mappings into tabular summary rows, one per mapping in
// insertion order. Absent values render as the NotAvailable marker.
func SummaryRows(mappings []Mapping) [][]string {
	rows := make([][]string, 0, len(mappings))
	for _, m := range mappings {
		rows = append(rows, []string{
			m.FieldName,
			orNA(m.FieldID),
			orNA(m.CollectionRef),
			orNA(m.CollectionLabel),
			orNA(m.LabelID),
			orNA(m.CategoryName),
			strconv.Itoa(len(m.AcceptableTerms)),
		})
	}
	return rows
}

// NodeSummary counts how far each concept field got through resolution.
type NodeSummary struct {
	TotalConceptNodes    int
	NodesWithCollections int
	NodesWithLabels      int
	NodesWithCategories  int
}

// Summarize tallies resolution coverage over all mappings.
func Summarize(mappings []Mapping) NodeSummary {
	var s NodeSummary
	s.TotalConceptNodes = len(mappings)
	for _, m := range mappings {
		if m.CollectionRef != "" {
			s.NodesWithCollections++
		}
		if m.CollectionLabel != "" {
			s.NodesWithLabels++
		}
		if m.CategoryName != "" {
			s.NodesWithCategories++
		}
	}
	return s
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
