package narrative

import (
	"fmt"
	"strings"
)

// ============================================================================
// PROMPT BUILDER
// ============================================================================

// BuildCaptionPrompt wraps a visualization title and plain-language
// description into the caption instruction. The model sees metadata about
// the chart, never raw records.
func BuildCaptionPrompt(title, description string) string {
	var b strings.Builder
	b.WriteString("You write one-sentence captions for charts on a public building energy dashboard.\n\n")
	b.WriteString(fmt.Sprintf("CHART TITLE: %s\n", title))
	if description != "" {
		b.WriteString(fmt.Sprintf("CHART DESCRIPTION: %s\n", description))
	}
	b.WriteString("\nWrite a single short sentence a non-technical reader would find helpful. ")
	b.WriteString("Plain text only: no markdown, no quotes, no preamble.")
	return b.String()
}
