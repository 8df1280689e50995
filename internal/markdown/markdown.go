// Package markdown renders skill write-ups and post bodies to HTML and
// plain-text excerpts.
package markdown

import (
	stdhtml "html"
	"io"
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	md "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

type Options struct {
	// SiteURL makes absolute links to the site itself relative.
	SiteURL string
}

const lastGoodBreakRatio = 0.8

var (
	codeFencePattern      = regexp.MustCompile("(?s)```.*?```")
	imagePattern          = regexp.MustCompile(`!\[.*?\]\(.*?\)`)
	horizontalRulePattern = regexp.MustCompile(`(?m)^---+$`)
	boldPattern           = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern         = regexp.MustCompile(`\*(.*?)\*`)
	underscorePattern     = regexp.MustCompile(`_(.*?)_`)
	headingPattern        = regexp.MustCompile(`(?m)^#{1,6}\s+(.*?)$`)
	inlineCodePattern     = regexp.MustCompile("`(.*?)`")
	linkPattern           = regexp.MustCompile(`\[(.*?)\]\(.*?\)`)
	blockquotePattern     = regexp.MustCompile(`(?m)^\s*>\s*(.*?)$`)
	listMarkerPattern     = regexp.MustCompile(`(?m)^\s*(?:[-*+]|\d+\.)\s+`)
	htmlTagPattern        = regexp.MustCompile(`<[^>]*>`)
)

func ToHTML(input string, opts Options) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse([]byte(input))
	normalizeLinks(doc, strings.TrimRight(opts.SiteURL, "/"))

	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Flags:          mdhtml.CommonFlags | mdhtml.SkipHTML,
		RenderNodeHook: renderNodeHook,
	})

	return string(md.Render(doc, renderer))
}

// Excerpt returns at most maxChars runes of plain text, cut at a word
// boundary when one is close to the limit.
func Excerpt(input string, maxChars int) string {
	if maxChars < 1 {
		return ""
	}

	clean := PlainText(input)
	if utf8.RuneCountInString(clean) <= maxChars {
		return clean
	}

	return truncateRunes(clean, maxChars)
}

func PlainText(markdown string) string {
	text := codeFencePattern.ReplaceAllString(markdown, " ")
	text = imagePattern.ReplaceAllString(text, " ")
	text = horizontalRulePattern.ReplaceAllString(text, " ")
	text = boldPattern.ReplaceAllString(text, "$1")
	text = italicPattern.ReplaceAllString(text, "$1")
	text = underscorePattern.ReplaceAllString(text, "$1")
	text = headingPattern.ReplaceAllString(text, "\n$1\n")
	text = inlineCodePattern.ReplaceAllString(text, "$1")
	text = linkPattern.ReplaceAllString(text, "$1")
	text = blockquotePattern.ReplaceAllString(text, "$1")
	text = listMarkerPattern.ReplaceAllString(text, "")
	text = htmlTagPattern.ReplaceAllString(text, "")

	return strings.Join(strings.Fields(text), " ")
}

func truncateRunes(text string, maxChars int) string {
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}

	cut := maxChars
	minBreak := int(float64(maxChars) * lastGoodBreakRatio)
	for idx := maxChars - 1; idx >= minBreak; idx-- {
		if unicode.IsSpace(runes[idx]) {
			cut = idx
			break
		}
	}

	truncated := strings.TrimSpace(string(runes[:cut]))
	if truncated == "" {
		truncated = strings.TrimSpace(string(runes[:maxChars]))
	}

	return truncated + "..."
}

func normalizeLinks(doc ast.Node, siteURL string) {
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}

		link, ok := node.(*ast.Link)
		if !ok {
			return ast.GoToNext
		}

		href, internal := relativeToSite(string(link.Destination), siteURL)
		link.Destination = []byte(href)
		if !internal && isAbsolute(href) {
			link.AdditionalAttributes = append(link.AdditionalAttributes, `target="_blank"`, `rel="noopener noreferrer"`)
		}

		return ast.GoToNext
	})
}

func relativeToSite(href string, siteURL string) (string, bool) {
	if siteURL == "" || !strings.HasPrefix(href, siteURL) {
		return href, strings.HasPrefix(href, "/")
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return href, true
	}

	out := parsed.Path
	if out == "" {
		out = "/"
	}
	if parsed.RawQuery != "" {
		out += "?" + parsed.RawQuery
	}
	if parsed.Fragment != "" {
		out += "#" + parsed.Fragment
	}

	return out, true
}

func isAbsolute(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}

func renderNodeHook(w io.Writer, node ast.Node, entering bool) (ast.WalkStatus, bool) {
	if !entering {
		return ast.GoToNext, false
	}

	switch n := node.(type) {
	case *ast.CodeBlock:
		renderCodeBlock(w, n)
		return ast.SkipChildren, true
	case *ast.Code:
		_, _ = io.WriteString(w, `<code class="inline-code">`)
		_, _ = io.WriteString(w, stdhtml.EscapeString(string(n.Literal)))
		_, _ = io.WriteString(w, `</code>`)
		return ast.SkipChildren, true
	default:
		return ast.GoToNext, false
	}
}

// HighlightCode renders a code snippet with chroma classes.
func HighlightCode(w io.Writer, code string, language string) {
	lexer := pickLexer(language, code)
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		renderPlainCode(w, code)
		return
	}

	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.Format(w, styles.Fallback, iterator); err != nil {
		renderPlainCode(w, code)
	}
}

func renderCodeBlock(w io.Writer, block *ast.CodeBlock) {
	HighlightCode(w, string(block.Literal), codeLanguage(block.Info))
}

func renderPlainCode(w io.Writer, code string) {
	_, _ = io.WriteString(w, `<pre class="chroma"><code>`)
	_, _ = io.WriteString(w, stdhtml.EscapeString(code))
	_, _ = io.WriteString(w, `</code></pre>`)
}

func pickLexer(language string, code string) chroma.Lexer {
	if language != "" {
		if lexer := lexers.Get(language); lexer != nil {
			return lexer
		}
	}

	if lexer := lexers.Analyse(code); lexer != nil {
		return lexer
	}

	return lexers.Fallback
}

func codeLanguage(info []byte) string {
	fields := strings.Fields(string(info))
	if len(fields) == 0 {
		return ""
	}

	return strings.ToLower(fields[0])
}
