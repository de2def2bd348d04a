package prompt

import "time"

// Spec is a versioned system prompt with its provenance metadata.
type Spec struct {
	Name             string
	Version          string
	Body             string
	CompatibleModels []string
	Author           string
	Description      string
	LastModified     time.Time
}

// CompatibleWith reports whether the given model is on the spec's
// tested-model list.
func (s Spec) CompatibleWith(model string) bool {
	for _, m := range s.CompatibleModels {
		if m == model {
			return true
		}
	}
	return false
}

// Direct is the system prompt used when retrieval is disabled.
var Direct = Spec{
	Name:    "system",
	Version: "1.0.0",
	Body: "You are a helpful AI assistant. Answer the user's question clearly and " +
		"concisely. If you are not sure about something, say so rather than guessing.",
	CompatibleModels: []string{"gpt-4o-mini", "gpt-4o", "llama3"},
	Author:           "ragline",
	Description:      "General Q&A",
	LastModified:     time.Date(2026, time.January, 22, 0, 0, 0, 0, time.UTC),
}

// ContextAugmented is the system prompt used when retrieval is enabled.
var ContextAugmented = Spec{
	Name:    "system_rag",
	Version: "1.0.0",
	Body: "You are a helpful AI assistant. The user message may include reference " +
		"context retrieved from a knowledge base. Ground your answer in that context " +
		"when it is relevant, and state explicitly when it is not sufficient to answer.",
	CompatibleModels: []string{"gpt-4o-mini"},
	Author:           "ragline",
	Description:      "Retrieval-augmented Q&A",
	LastModified:     time.Date(2026, time.January, 22, 0, 0, 0, 0, time.UTC),
}

// ForRetrieval returns the prompt variant matching the retrieval switch.
// The choice is made once at processor construction, never per request.
func ForRetrieval(enabled bool) Spec {
	if enabled {
		return ContextAugmented
	}
	return Direct
}
