package usecase

import (
	"fmt"
	"strings"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/markdown"
)

type SkillResolver struct {
	skills []domain.Skill
	mdOpts markdown.Options
}

func NewSkillResolver(skills []domain.Skill, mdOpts markdown.Options) *SkillResolver {
	return &SkillResolver{skills: skills, mdOpts: mdOpts}
}

// List keeps source order inside each group; Skills is the flat union.
func (r *SkillResolver) List() domain.SkillListing {
	out := domain.SkillListing{
		PreferredSkills:   []domain.SkillSummary{},
		ExperiencedSkills: []domain.SkillSummary{},
		Skills:            make([]domain.SkillSummary, 0, len(r.skills)),
	}
	for _, s := range r.skills {
		summary := s.Summary()
		if s.Preferred {
			out.PreferredSkills = append(out.PreferredSkills, summary)
		} else {
			out.ExperiencedSkills = append(out.ExperiencedSkills, summary)
		}
		out.Skills = append(out.Skills, summary)
	}
	return out
}

// Get matches the id case-sensitively.
func (r *SkillResolver) Get(id string) (*domain.SkillDetail, error) {
	for _, s := range r.skills {
		if s.ID != id {
			continue
		}
		detail := domain.SkillDetail{
			ID:          s.ID,
			Name:        s.Name,
			Icon:        s.Icon,
			URL:         s.URL,
			Category:    s.Category,
			Level:       s.Proficiency,
			Description: s.Description,
			YearStarted: s.YearStarted,
			Details:     s.Details,
			Features:    s.Features,
			RelatedTech: s.RelatedTech,
			Resources:   s.Resources,
			Examples:    s.Examples,
		}
		if strings.TrimSpace(s.Content) != "" {
			detail.ContentHTML = markdown.ToHTML(s.Content, r.mdOpts)
		}
		return &detail, nil
	}
	return nil, fmt.Errorf("skill %q: %w", id, domain.ErrNotFound)
}
