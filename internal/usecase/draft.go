package usecase

import (
	"fmt"
	"strings"

	"portfolio-api/pkg/ai/formatters"
)

const (
	draftTitlePrefix   = "AI Draft: "
	draftTitleMaxRunes = 80
)

// LocalDraft builds a deterministic draft from the prompt alone. It stands
// in for provider output when the provider is missing or fails.
func LocalDraft(prompt string) *formatters.PostDraft {
	topic := collapseSpace(prompt, draftTitleMaxRunes)
	full := strings.Join(strings.Fields(prompt), " ")

	paragraphs := []string{
		fmt.Sprintf("This draft was prepared from the prompt: %q.", full),
		fmt.Sprintf("%s is worth a closer look. Start with the problem it solves, then walk through a small working example before covering trade-offs.", topic),
		"Expand each section with concrete code, measurements and links before publishing.",
	}

	sections := []formatters.Section{
		{Kind: formatters.SectionParagraph, Text: paragraphs[0]},
		{Kind: formatters.SectionHeading, Text: "Outline", Level: 2},
		{Kind: formatters.SectionParagraph, Text: paragraphs[1]},
		{Kind: formatters.SectionParagraph, Text: paragraphs[2]},
	}

	return &formatters.PostDraft{
		Title:    draftTitlePrefix + topic,
		Markdown: paragraphs[0] + "\n\n## Outline\n\n" + paragraphs[1] + "\n\n" + paragraphs[2],
		Sections: sections,
	}
}
