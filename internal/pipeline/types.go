package pipeline

// ValidatedQuery is a query that passed validation. Text holds the
// trimmed form; ID is unique and lexicographically sortable by creation
// time, used for correlating logs and responses.
type ValidatedQuery struct {
	ID   string
	Text string
}

// Metadata carries diagnostic fields attached to an Outcome. Extra is an
// extension point for future fields and stays nil in normal operation.
type Metadata struct {
	SourcesCount int            `json:"sources_count"`
	HasContext   bool           `json:"has_context"`
	Extra        map[string]any `json:"extra,omitempty"`
}

// Outcome is the complete pipeline response for one query.
type Outcome struct {
	QueryID          string   `json:"query_id"`
	Query            string   `json:"query"`
	Answer           string   `json:"answer"`
	Sources          []string `json:"sources"`
	ProcessingTimeMS float64  `json:"processing_time_ms"`
	Metadata         Metadata `json:"metadata"`
}
