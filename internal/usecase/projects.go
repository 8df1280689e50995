package usecase

import (
	"fmt"
	"net/url"
	"strings"

	"portfolio-api/internal/domain"

	"golang.org/x/net/publicsuffix"
)

type ProjectResolver struct {
	projects  []domain.Project
	techStack map[string]domain.TechStackEntry
}

// NewProjectResolver decorates tags from the tech stack lookup and derives
// link labels once; the inputs are not modified.
func NewProjectResolver(projects []domain.Project, techStack map[string]domain.TechStackEntry) *ProjectResolver {
	decorated := make([]domain.Project, len(projects))
	for i, p := range projects {
		tags := make([]domain.ProjectTag, len(p.Tags))
		for j, tag := range p.Tags {
			if entry, ok := techStack[tag.Name]; ok {
				if tag.Icon == "" {
					tag.Icon = entry.Icon
				}
				if tag.URL == "" {
					tag.URL = entry.URL
				}
			}
			tags[j] = tag
		}
		p.Tags = tags
		if p.LinkLabel == "" {
			p.LinkLabel = linkLabel(p.Link)
		}
		decorated[i] = p
	}
	if techStack == nil {
		techStack = map[string]domain.TechStackEntry{}
	}
	return &ProjectResolver{projects: decorated, techStack: techStack}
}

func (r *ProjectResolver) List() domain.ProjectListing {
	out := domain.ProjectListing{
		TechStackData: r.techStack,
		Projects:      []domain.ProjectSummary{},
		AllProjects:   []domain.ProjectSummary{},
	}
	for _, p := range r.projects {
		if p.Featured {
			out.Projects = append(out.Projects, p.Summary())
		} else {
			out.AllProjects = append(out.AllProjects, p.Summary())
		}
	}
	return out
}

// Get matches the slug case-insensitively.
func (r *ProjectResolver) Get(slug string) (*domain.Project, error) {
	for i := range r.projects {
		if strings.EqualFold(r.projects[i].Slug, slug) {
			p := r.projects[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("project %q: %w", slug, domain.ErrNotFound)
}

func (r *ProjectResolver) Slugs() []string {
	out := make([]string, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, p.Slug)
	}
	return out
}

// linkLabel returns the registrable domain of link, e.g. "gauss.hr".
func linkLabel(link string) string {
	parsed, err := url.Parse(strings.TrimSpace(link))
	if err != nil || parsed.Hostname() == "" {
		return ""
	}
	host := parsed.Hostname()
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return etld
	}
	return strings.TrimPrefix(host, "www.")
}
