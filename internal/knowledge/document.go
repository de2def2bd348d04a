package knowledge

// Document is a single knowledge base entry. Text is the only field the
// retriever looks at; any other fields from the source JSONL are carried
// in Meta untouched.
type Document struct {
	Text string
	Meta map[string]any
}
