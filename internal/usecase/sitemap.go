package usecase

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"time"

	"portfolio-api/internal/domain"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"-"`
}

type sitemapURLXML struct {
	SitemapURL
	PriorityText string `xml:"priority"`
}

type urlset struct {
	XMLName xml.Name        `xml:"urlset"`
	Xmlns   string          `xml:"xmlns,attr"`
	URLs    []sitemapURLXML `xml:"url"`
}

var staticRoutes = []SitemapURL{
	{Loc: "/", ChangeFreq: "weekly", Priority: 1.0},
	{Loc: "/projects", ChangeFreq: "weekly", Priority: 0.8},
	{Loc: "/skills", ChangeFreq: "weekly", Priority: 0.8},
	{Loc: "/blog", ChangeFreq: "weekly", Priority: 0.7},
}

// BuildSitemap lists the static pages, every post and every distinct
// project slug under baseURL.
func BuildSitemap(baseURL string, posts []domain.Post, projectSlugs []string) []SitemapURL {
	out := make([]SitemapURL, 0, len(staticRoutes)+len(posts)+len(projectSlugs))
	for _, r := range staticRoutes {
		r.Loc = baseURL + r.Loc
		out = append(out, r)
	}

	for _, p := range posts {
		if p.ID == "" {
			continue
		}
		u := SitemapURL{Loc: baseURL + "/blog/" + p.ID, ChangeFreq: "monthly", Priority: 0.6}
		if !p.Date.IsZero() {
			u.LastMod = p.Date.UTC().Format(time.RFC3339)
		}
		out = append(out, u)
	}

	seen := make(map[string]bool, len(projectSlugs))
	for _, slug := range projectSlugs {
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true
		out = append(out, SitemapURL{Loc: baseURL + "/projects/" + slug, ChangeFreq: "monthly", Priority: 0.7})
	}
	return out
}

func RenderSitemap(urls []SitemapURL) ([]byte, error) {
	set := urlset{Xmlns: sitemapNamespace, URLs: make([]sitemapURLXML, 0, len(urls))}
	for _, u := range urls {
		set.URLs = append(set.URLs, sitemapURLXML{
			SitemapURL:   u,
			PriorityText: strconv.FormatFloat(u.Priority, 'f', 1, 64),
		})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func RenderRobots(baseURL string) string {
	return "User-agent: *\nAllow: /\n\nSitemap: " + baseURL + "/sitemap.xml\n"
}
