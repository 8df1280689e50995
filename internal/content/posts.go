package content

import (
	"time"

	"portfolio-api/internal/domain"
)

// Posts are the seed posts served next to any persisted ones.
func Posts(author string) []domain.Post {
	return []domain.Post{
		{
			ID:       "getting-started-with-vue-3-and-typescript",
			Title:    "Getting Started with Vue 3 and TypeScript",
			Author:   author,
			Date:     time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
			Category: "Web Development",
			Tags:     []string{"Vue", "TypeScript", "Web Development"},
			Excerpt:  "Learn how to set up a new Vue 3 project with TypeScript and best practices.",
			Content: domain.Body{
				{Type: domain.BlockHeading, Content: "Project setup", Level: 2},
				{Type: domain.BlockParagraph, Content: "Scaffold the project with the official tooling and enable strict mode from day one."},
				{Type: domain.BlockImage, Src: "/images/blog/getting-started-with-vue-3-and-typescript/hero.webp", Alt: "Vue and TypeScript logos", Caption: "Vue 3 with TypeScript"},
				{Type: domain.BlockCode, Content: "npm create vue@latest"},
			},
			CoverImage: "/images/blog/getting-started-with-vue-3-and-typescript/hero.webp",
		},
		{
			ID:       "understanding-nuxt-3-server-routes",
			Title:    "Understanding Nuxt 3 Server Routes",
			Author:   author,
			Date:     time.Date(2024, 3, 19, 0, 0, 0, 0, time.UTC),
			Category: "Web Development",
			Tags:     []string{"Nuxt", "Server", "API"},
			Excerpt:  "Deep dive into Nuxt 3's server routes and API handling.",
			Content: domain.Body{
				{Type: domain.BlockParagraph, Content: "Server routes live next to your pages and can be cached with stale-while-revalidate."},
			},
			CoverImage: "https://placehold.co/600x400/7c3aed/ffffff?text=Future+Tech",
		},
	}
}
