package formatters

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

const (
	SectionParagraph = "paragraph"
	SectionHeading   = "heading"
	SectionCode      = "code"
)

const (
	DefaultTitle = "Latest Web Development Technologies and Trends"
	DefaultBody  = "Exploring the latest web development technologies and their impact on modern software development."
)

var ErrEmptyOutput = errors.New("generator returned no text")

var (
	headingLine = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	htmlBlock   = regexp.MustCompile(`(?i)<(p|h[1-6]|ul|ol|pre|div|article)[\s>]`)
)

// Section is one structural piece of a generated post body.
type Section struct {
	Kind     string
	Text     string
	Level    int
	Language string
}

// PostDraft is a generated post split into a title and body.
type PostDraft struct {
	Title    string
	Markdown string
	Sections []Section
}

// PostFormatter turns raw generated text into a PostDraft. The text is
// expected to carry a "Title: ..." line followed by the body in markdown;
// HTML bodies are converted to markdown first.
type PostFormatter struct{}

func NewPostFormatter() *PostFormatter {
	return &PostFormatter{}
}

func (f *PostFormatter) Format(generated string, prompt string) (*PostDraft, error) {
	text := strings.TrimSpace(generated)
	// providers configured to return full text echo the prompt first
	if prompt != "" {
		text = strings.TrimSpace(strings.TrimPrefix(text, strings.TrimSpace(prompt)))
	}
	if text == "" {
		return nil, ErrEmptyOutput
	}

	if htmlBlock.MatchString(text) {
		converted, err := htmltomarkdown.ConvertString(text)
		if err != nil {
			return nil, fmt.Errorf("convert html output: %w", err)
		}
		text = strings.TrimSpace(converted)
	}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	title, bodyStart := findTitle(lines)
	if title == "" {
		title = DefaultTitle
	}

	body := strings.TrimSpace(strings.Join(lines[bodyStart:], "\n"))
	if body == "" {
		body = DefaultBody
	}

	return &PostDraft{
		Title:    title,
		Markdown: body,
		Sections: SplitSections(body),
	}, nil
}

// findTitle returns the title and the index of the first body line.
func findTitle(lines []string) (string, int) {
	for i, line := range lines {
		trimmed := strings.Trim(strings.TrimSpace(line), "*# ")
		if strings.HasPrefix(trimmed, "Title:") {
			return cleanTitle(strings.TrimPrefix(trimmed, "Title:")), i + 1
		}
	}
	for i, line := range lines {
		if m := headingLine.FindStringSubmatch(strings.TrimSpace(line)); m != nil && len(m[1]) == 1 {
			return cleanTitle(m[2]), i + 1
		}
	}
	return "", 0
}

func cleanTitle(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), `"*[]`))
}

// SplitSections breaks markdown into headings, fenced code and paragraphs.
func SplitSections(body string) []Section {
	var (
		out       []Section
		paragraph []string
		code      []string
		inCode    bool
		language  string
	)

	flush := func() {
		if len(paragraph) == 0 {
			return
		}
		out = append(out, Section{Kind: SectionParagraph, Text: strings.Join(paragraph, "\n")})
		paragraph = nil
	}

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			if inCode {
				out = append(out, Section{Kind: SectionCode, Text: strings.Join(code, "\n"), Language: language})
				code, language, inCode = nil, "", false
				continue
			}
			flush()
			inCode = true
			language = strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
			continue
		}
		if inCode {
			code = append(code, line)
			continue
		}
		if trimmed == "" {
			flush()
			continue
		}
		if m := headingLine.FindStringSubmatch(trimmed); m != nil {
			flush()
			out = append(out, Section{Kind: SectionHeading, Text: strings.TrimSpace(m[2]), Level: len(m[1])})
			continue
		}
		paragraph = append(paragraph, trimmed)
	}

	// unterminated fence
	if inCode && len(code) > 0 {
		out = append(out, Section{Kind: SectionCode, Text: strings.Join(code, "\n"), Language: language})
	}
	flush()

	return out
}
