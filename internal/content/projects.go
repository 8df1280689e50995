// Package content holds the static datasets the site is built from.
package content

import "portfolio-api/internal/domain"

func TechStack() map[string]domain.TechStackEntry {
	return map[string]domain.TechStackEntry{
		"Nuxt.js":      {Icon: "devicon-nuxtjs-plain", URL: "https://nuxtjs.org/"},
		"Vue.js":       {Icon: "devicon-vuejs-plain", URL: "https://vuejs.org/"},
		"TypeScript":   {Icon: "devicon-typescript-plain", URL: "https://www.typescriptlang.org/"},
		"Bootstrap":    {Icon: "devicon-bootstrap-plain", URL: "https://getbootstrap.com/"},
		"JavaScript":   {Icon: "devicon-javascript-plain", URL: "https://developer.mozilla.org/en-US/docs/Web/JavaScript"},
		"Tailwind CSS": {Icon: "devicon-tailwindcss-plain", URL: "https://tailwindcss.com/"},
		"PostgreSQL":   {Icon: "devicon-postgresql-plain", URL: "https://www.postgresql.org/"},
		"MongoDB":      {Icon: "devicon-mongodb-plain", URL: "https://www.mongodb.com/"},
	}
}

// Projects returns featured and other projects in display order.
func Projects() []domain.Project {
	return []domain.Project{
		{
			Slug:        "gausscms",
			Title:       "GaussCMS",
			Description: "A Content Management System for creating, editing, and publishing content on websites and e-commerce platforms, with SEO tooling, multisite management and multilingual support.",
			Link:        "https://gaussbox.com/modules-cms",
			Tags: []domain.ProjectTag{
				{Name: "Vue.js", Icon: "devicon-vuejs-plain"},
				{Name: "Nuxt.js", Icon: "devicon-nuxtjs-plain"},
				{Name: "TypeScript", Icon: "devicon-typescript-plain"},
				{Name: "Tailwind CSS", Icon: "devicon-tailwindcss-plain"},
				{Name: "AdonisJS", Icon: "devicon-adonisjs-original"},
			},
			Categories: []string{"frontend"},
			Status:     "Completed",
			Year:       "2023",
			Featured:   true,

			LongDescription:  "GaussCMS powers content teams across several storefronts. I worked on the editor experience, page builder blocks and the multisite routing layer.",
			Features:         []string{"Block-based page builder", "Multisite and multilingual routing", "SEO metadata editor"},
			Metrics:          []domain.Metric{{Label: "Sites served", Value: "40+"}, {Label: "Languages", Value: "12"}},
			Roles:            []string{"Frontend Developer"},
			Responsibilities: []string{"Page builder components", "Editor performance", "Design system maintenance"},
			Company:          "Gauss",
			Timeline:         "2021 - 2023",
		},
		{
			Slug:        "celeroone",
			Title:       "CeleroOne",
			Description: "A workforce management solution for mobile teams with real-time planning, process management, team coordination and integrated communication for office and field workers.",
			Link:        "https://gauss.hr/en/celero-one",
			Tags: []domain.ProjectTag{
				{Name: "Nuxt.js", Icon: "devicon-nuxtjs-plain"},
				{Name: "Bootstrap", Icon: "devicon-bootstrap-plain"},
				{Name: "PostgreSQL", Icon: "devicon-postgresql-plain"},
				{Name: "MongoDB", Icon: "devicon-mongodb-plain"},
				{Name: "PHP", Icon: "devicon-php-plain"},
			},
			Categories: []string{"fullstack"},
			Status:     "Completed",
			Year:       "2023",
			Featured:   true,

			LongDescription:  "CeleroOne coordinates field crews and dispatchers. I built planning boards and the offline-capable task views used on the road.",
			Metrics:          []domain.Metric{{Label: "Active users", Value: "5k"}},
			Responsibilities: []string{"Planning board UI", "API integration", "Offline task sync"},
			Company:          "Gauss",
		},
		{
			Slug:        "delmerion-webshop",
			Title:       "Delmerion Webshop",
			Description: "CMS webshop built with GaussCMS featuring product catalog, brand highlights, promotions, and a responsive UI.",
			Link:        "https://www.delmerion.hr/",
			Tags: []domain.ProjectTag{
				{Name: "GaussCMS", Color: "#00C2A8"},
				{Name: "Nuxt.js", Icon: "devicon-nuxtjs-plain"},
				{Name: "Tailwind CSS"},
				{Name: "JavaScript"},
			},
			Categories: []string{"frontend"},
			Status:     "Completed",
			Year:       "2023",
		},
		{
			Slug:        "invest-in-croatia",
			Title:       "Invest in Croatia",
			Description: "A government-backed platform for investors to explore business opportunities in Croatia, with economic insights, legal frameworks, and available investment projects.",
			Link:        "https://investincroatia.hr/",
			Tags: []domain.ProjectTag{
				{Name: "Nuxt.js", Icon: "devicon-nuxtjs-plain"},
				{Name: "Bootstrap", Icon: "devicon-bootstrap-plain"},
				{Name: "JavaScript", Icon: "devicon-javascript-plain"},
			},
			Categories: []string{"frontend"},
			Status:     "Completed",
			Year:       "2022",
		},
		{
			Slug:        "wine-yard",
			Title:       "Wine Yard",
			Description: "An expert system that measures humidity, pressure, temperature, and CO2 and manages air conditioning devices in the wine cellar without the winemaker on site.",
			Link:        "https://wine-yard.net/en/homepage",
			Tags: []domain.ProjectTag{
				{Name: "Nuxt.js", Icon: "devicon-nuxtjs-plain"},
				{Name: "Bootstrap", Icon: "devicon-bootstrap-plain"},
				{Name: "JavaScript", Icon: "devicon-javascript-plain"},
			},
			Categories: []string{"frontend"},
			Status:     "Completed",
			Year:       "2022",
		},
	}
}
