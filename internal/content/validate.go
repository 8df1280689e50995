package content

import (
	"fmt"
	"strings"

	"portfolio-api/internal/domain"
)

// Validate checks the static datasets for identifier collisions and
// out-of-range values. It runs once at startup.
func Validate(projects []domain.Project, skills []domain.Skill, posts []domain.Post) error {
	slugs := map[string]string{}
	for _, p := range projects {
		if strings.TrimSpace(p.Slug) == "" {
			return fmt.Errorf("project %q has no slug", p.Title)
		}
		key := strings.ToLower(p.Slug)
		if other, ok := slugs[key]; ok {
			return fmt.Errorf("project slug %q used by %q and %q", p.Slug, other, p.Title)
		}
		slugs[key] = p.Title
	}

	ids := map[string]bool{}
	for _, s := range skills {
		if s.ID == "" {
			return fmt.Errorf("skill %q has no id", s.Name)
		}
		if ids[s.ID] {
			return fmt.Errorf("duplicate skill id %q", s.ID)
		}
		ids[s.ID] = true
		if !s.Proficiency.Valid() {
			return fmt.Errorf("skill %q has unknown proficiency %q", s.ID, s.Proficiency)
		}
	}

	postIDs := map[string]bool{}
	for _, p := range posts {
		if p.ID == "" {
			return fmt.Errorf("post %q has no id", p.Title)
		}
		if postIDs[p.ID] {
			return fmt.Errorf("duplicate post id %q", p.ID)
		}
		postIDs[p.ID] = true
	}

	return nil
}
