package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello, World! 2024":         "hello-world-2024",
		"  Leading and trailing  ":   "leading-and-trailing",
		"Vue 3 + TypeScript = ❤":     "vue-3-typescript",
		"already-a-slug":             "already-a-slug",
		"Crème brûlée --- recipes":   "cr-me-br-l-e-recipes",
		"!!!":                        "",
		"":                           "",
		"MiXeD_CaSe__with__snake":    "mixed-case-with-snake",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "Slugify(%q)", in)
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	inputs := []string{"Hello, World! 2024", "a--b", strings.Repeat("word ", 40), "  x  "}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "input %q", in)
	}
}

func TestSlugify_TruncatesWithoutTrailingDash(t *testing.T) {
	// 99 letters then a separator lands the cut right after a dash
	in := strings.Repeat("a", 99) + " " + strings.Repeat("b", 20)
	got := Slugify(in)
	assert.Equal(t, strings.Repeat("a", 99), got)
	assert.LessOrEqual(t, len(Slugify(strings.Repeat("abc ", 60))), 100)
}

func TestPostID_FallsBack(t *testing.T) {
	assert.Equal(t, "post", PostID("???"))
	assert.Equal(t, "go-tips", PostID("Go tips"))
}
