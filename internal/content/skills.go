package content

import "portfolio-api/internal/domain"

func Skills() []domain.Skill {
	return []domain.Skill{
		{
			ID:          "nuxtjs",
			Name:        "Nuxt.js",
			Icon:        "devicon-nuxtjs-plain",
			URL:         "https://nuxtjs.org/",
			Category:    "framework",
			Proficiency: domain.ProficiencyExpert,
			Description: "My framework of choice for building modern web applications with Vue.js.",
			Preferred:   true,
			YearStarted: 2021,
			Features:    []string{"Automatic routing", "Server-side rendering", "Static site generation"},
			RelatedTech: []domain.RelatedTech{{ID: "vuejs", Name: "Vue.js"}, {ID: "typescript", Name: "TypeScript"}},
			Resources: []domain.LearningResource{
				{Title: "Nuxt documentation", Type: "docs", URL: "https://nuxt.com/docs"},
			},
			Examples: []domain.CodeExample{
				{
					Title:       "Cached server route",
					Description: "A server handler cached for five minutes.",
					Code:        "export default defineCachedEventHandler(() => listSkills(), { maxAge: 300, swr: true })",
				},
			},
			Content: "## Why I Choose Nuxt.js\n\nNuxt.js provides an incredible developer experience:\n\n- Automatic routing\n- Server-side rendering\n- Static site generation\n- Easy API integration\n\n### My Experience with Nuxt\n\nI've been working with Nuxt.js for years, building everything from small personal projects to large enterprise applications.\n",
		},
		{
			ID:          "vuejs",
			Name:        "Vue.js",
			Icon:        "devicon-vuejs-plain",
			URL:         "https://vuejs.org/",
			Category:    "framework",
			Proficiency: domain.ProficiencyExpert,
			Description: "Component-driven UIs with the Composition API.",
			Preferred:   true,
			YearStarted: 2019,
		},
		{
			ID:          "typescript",
			Name:        "TypeScript",
			Icon:        "devicon-typescript-plain",
			URL:         "https://www.typescriptlang.org/",
			Category:    "language",
			Proficiency: domain.ProficiencyAdvanced,
			Description: "Typed JavaScript for large codebases.",
			Preferred:   true,
			YearStarted: 2020,
			Content:     "Typed APIs make refactors safe:\n\n```ts\ninterface Skill { id: string; name: string }\n```\n",
		},
		{
			ID:          "tailwindcss",
			Name:        "Tailwind CSS",
			Icon:        "devicon-tailwindcss-plain",
			URL:         "https://tailwindcss.com/",
			Category:    "styling",
			Proficiency: domain.ProficiencyAdvanced,
			Description: "Utility-first styling for consistent design systems.",
			Preferred:   true,
		},
		{
			ID:          "bootstrap",
			Name:        "Bootstrap",
			Icon:        "devicon-bootstrap-plain",
			URL:         "https://getbootstrap.com/",
			Category:    "styling",
			Proficiency: domain.ProficiencyAdvanced,
			Description: "Responsive layouts on client projects.",
		},
		{
			ID:          "postgresql",
			Name:        "PostgreSQL",
			Icon:        "devicon-postgresql-plain",
			URL:         "https://www.postgresql.org/",
			Category:    "database",
			Proficiency: domain.ProficiencyIntermediate,
			Description: "Relational storage for product backends.",
		},
		{
			ID:          "mongodb",
			Name:        "MongoDB",
			Icon:        "devicon-mongodb-plain",
			URL:         "https://www.mongodb.com/",
			Category:    "database",
			Proficiency: domain.ProficiencyIntermediate,
			Description: "Document storage for content and blog data.",
		},
	}
}
