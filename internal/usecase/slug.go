package usecase

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxSlugLength = 100
	fallbackSlug  = "post"
)

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s, joins alphanumeric runs with single dashes and
// caps the result at 100 characters. Slugify(Slugify(s)) == Slugify(s).
func Slugify(s string) string {
	slug := nonSlugRun.ReplaceAllString(strings.ToLower(s), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > maxSlugLength {
		slug = strings.TrimRight(slug[:maxSlugLength], "-")
	}
	return slug
}

// PostID is Slugify with a non-empty result.
func PostID(title string) string {
	if id := Slugify(title); id != "" {
		return id
	}
	return fallbackSlug
}

// collapseSpace joins whitespace runs with a single space and caps s at max runes.
func collapseSpace(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:max]))
}
