package knowledge

import (
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Retriever ranks corpus documents against a query by lexical word
// overlap. It is a deliberate keyword baseline, not a placeholder for
// semantic search: scoring counts the distinct case-insensitive words a
// query and a document share.
type Retriever struct {
	corpus  []Document
	topK    int
	enabled bool
	logger  *zap.Logger
}

// NewRetriever creates a retriever over an immutable corpus. When
// enabled is false, Retrieve always returns nothing.
func NewRetriever(corpus []Document, topK int, enabled bool, logger *zap.Logger) *Retriever {
	return &Retriever{
		corpus:  corpus,
		topK:    topK,
		enabled: enabled,
		logger:  logger,
	}
}

// Retrieve returns the texts of the topK highest-scoring documents for
// the query, best first. Documents sharing no words with the query are
// never returned. Ties keep corpus order (stable sort), so results are
// deterministic for a fixed corpus and query.
func (r *Retriever) Retrieve(query string) []string {
	if !r.enabled || len(r.corpus) == 0 {
		return nil
	}

	queryWords := tokenize(query)

	type scoredDoc struct {
		score int
		text  string
	}

	var scored []scoredDoc
	for _, doc := range r.corpus {
		score := overlap(queryWords, tokenize(doc.Text))
		if score > 0 {
			scored = append(scored, scoredDoc{score: score, text: doc.Text})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	n := len(scored)
	if n > r.topK {
		n = r.topK
	}

	results := make([]string, 0, n)
	for _, s := range scored[:n] {
		results = append(results, s.text)
	}

	r.logger.Debug("context retrieved",
		zap.Int("documents_found", len(results)),
		zap.String("query", truncate(query, 50)))

	return results
}

// tokenize splits text into a set of lowercase whitespace-delimited words.
func tokenize(text string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(text)) {
		words[w] = struct{}{}
	}
	return words
}

// overlap counts words present in both sets.
func overlap(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for w := range a {
		if _, ok := b[w]; ok {
			n++
		}
	}
	return n
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
