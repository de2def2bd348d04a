package prompt

import "strings"

// Composer builds the system and user texts for one completion request
// from a fixed prompt spec.
type Composer struct {
	spec Spec
}

// NewComposer creates a composer bound to a prompt spec.
func NewComposer(spec Spec) *Composer {
	return &Composer{spec: spec}
}

// Spec returns the prompt spec this composer was built with.
func (c *Composer) Spec() Spec { return c.spec }

// Compose returns the system and user message texts. With no context the
// query passes through verbatim; with context the user text embeds every
// context entry followed by the query and a grounding instruction.
func (c *Composer) Compose(query string, context []string) (system, user string) {
	system = c.spec.Body

	if len(context) == 0 {
		return system, query
	}

	var b strings.Builder
	b.WriteString("Context information:\n")
	b.WriteString(strings.Join(context, "\n\n"))
	b.WriteString("\n\nQuestion: ")
	b.WriteString(query)
	b.WriteString("\n\nAnswer based on the context above. If the context doesn't contain relevant information, say so.")

	return system, b.String()
}
